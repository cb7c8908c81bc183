package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/api"
	"github.com/gravitrone/vlist/internal/cmd"
	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/items"
	"github.com/gravitrone/vlist/internal/ui"
	"github.com/gravitrone/vlist/internal/window"
)

const demoItems = 10000

type rootFlags struct {
	url        string
	generate   int
	markdown   bool
	overscan   int
	gap        int
	itemHeight int
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "vlist [file]",
		Short: "vlist - virtualized list viewer",
		Long: "vlist browses large item lists in the terminal, rendering only the items\n" +
			"inside the viewport plus a small overscan margin.\n\n" +
			"Items come from a YAML/JSON/text file, an HTTP API (--url) or a generated\n" +
			"demo catalog (--generate).",
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupStderrLogging(flags.debug)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runTUI(c, flags, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.Flags()
	f.StringVar(&flags.url, "url", "", "load items from this API URL")
	f.IntVar(&flags.generate, "generate", 0, "show N generated demo items")
	f.BoolVar(&flags.markdown, "markdown", false, "render item bodies as markdown")
	f.IntVar(&flags.overscan, "overscan", 0, "items rendered beyond each viewport edge (negative for the default)")
	f.IntVar(&flags.gap, "gap", 0, "blank rows between items")
	f.IntVar(&flags.itemHeight, "item-height", 0, "rows per item (0 measures each item, 1 is one row per item)")
	f.StringVar(&flags.logFile, "log-file", "", "write logs to this file while the viewer runs")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(cmd.WindowCmd())
	root.AddCommand(cmd.InitCmd())
	root.AddCommand(cmd.FetchCmd())
	return root
}

func setupStderrLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// applyFlags overlays explicitly set flags onto the loaded config.
func applyFlags(c *cobra.Command, cfg *config.Config, flags *rootFlags) error {
	f := c.Flags()
	if f.Changed("markdown") {
		cfg.Markdown = flags.markdown
	}
	if f.Changed("overscan") {
		// Negative selects the default, as in `vlist window`.
		cfg.Overscan = flags.overscan
		if cfg.Overscan < 0 {
			cfg.Overscan = window.DefaultOverscan
		}
	}
	if f.Changed("gap") {
		cfg.Gap = flags.gap
	}
	if f.Changed("item-height") {
		cfg.ItemHeight = flags.itemHeight
	}
	if f.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	return cfg.Validate()
}

// itemSource picks where items come from: a file argument, then --url,
// then --generate, then a demo catalog.
func itemSource(cfg *config.Config, flags *rootFlags, args []string) (ui.Loader, string, error) {
	switch {
	case len(args) == 1:
		path := args[0]
		return func() ([]items.Item, error) {
			return items.LoadFile(path)
		}, filepath.Base(path), nil

	case flags.url != "":
		u, err := url.Parse(flags.url)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, "", fmt.Errorf("invalid --url %q", flags.url)
		}
		client := api.NewClient(u.Scheme+"://"+u.Host, cfg.APIKey)
		path := u.EscapedPath()
		if u.RawQuery != "" {
			path += "?" + u.RawQuery
		}
		return func() ([]items.Item, error) {
			return client.FetchItems(path, nil)
		}, u.Host + u.Path, nil

	case flags.generate < 0:
		return nil, "", fmt.Errorf("--generate must not be negative, got %d", flags.generate)
	}

	n := flags.generate
	if n == 0 {
		n = demoItems
	}
	return func() ([]items.Item, error) {
		return items.Generate(n), nil
	}, fmt.Sprintf("demo catalog (%d)", n), nil
}

// tuiLogger returns the logger used while the viewer owns the terminal. It
// writes to the configured log file, or nowhere.
func tuiLogger(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), f, nil
}

func runTUI(c *cobra.Command, flags *rootFlags, args []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	if err := applyFlags(c, cfg, flags); err != nil {
		return err
	}
	load, source, err := itemSource(cfg, flags, args)
	if err != nil {
		return err
	}

	logger, closer, err := tuiLogger(cfg.LogFile, flags.debug)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck

	start := time.Now()
	logger.Info("starting viewer", "source", source, "overscan", cfg.Overscan, "item_height", cfg.ItemHeight)

	app := ui.NewApp(ui.Options{
		Config: cfg,
		Source: source,
		Load:   load,
		Logger: logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	logger.Info("viewer closed", "uptime", time.Since(start))
	return nil
}
