package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/ui/components"
	"github.com/gravitrone/vlist/internal/window"
)

const windowTableWidth = 56

// WindowOptions describes a list and viewport for a one-off window
// computation.
type WindowOptions struct {
	Count    int
	Height   float64
	Heights  []float64
	Viewport float64
	Offset   float64
	Overscan int
	Gap      float64
	Table    bool
}

func (o WindowOptions) heighter() window.Heighter {
	if len(o.Heights) == 0 {
		return window.FixedHeight(o.Height)
	}
	heights := o.Heights
	return window.HeightFunc(func(i int) float64 {
		return heights[i%len(heights)]
	})
}

// RunWindow builds the position table, resolves the window and writes the
// result to out.
func RunWindow(out io.Writer, opts WindowOptions) error {
	t, err := window.Build(opts.Count, opts.heighter(), opts.Gap)
	if err != nil {
		return fmt.Errorf("build positions: %w", err)
	}
	win, err := window.Resolve(t, window.Viewport{Offset: opts.Offset, Height: opts.Viewport}, opts.Overscan)
	if err != nil {
		return fmt.Errorf("resolve window: %w", err)
	}

	fmt.Fprintf(out, "visible: %s\n", win.Visible)
	fmt.Fprintf(out, "render:  %s\n", win.Render)
	fmt.Fprintf(out, "total:   %s\n", formatRows(t.TotalHeight()))
	if !opts.Table || win.Render.Empty() {
		return nil
	}

	cols := []components.TableColumn{
		{Header: "Index", Width: 7, Align: lipgloss.Right},
		{Header: "Top", Width: 10, Align: lipgloss.Right},
		{Header: "Height", Width: 8, Align: lipgloss.Right},
		{Header: "State", Width: 10},
	}
	rows := make([][]string, 0, win.Render.Len())
	for i := win.Render.Start; i <= win.Render.End; i++ {
		state := "overscan"
		if win.Visible.Contains(i) {
			state = "visible"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			formatRows(t.Position(i)),
			formatRows(t.ItemHeight(i)),
			state,
		})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, components.TableGrid(cols, rows, windowTableWidth, -1))
	return nil
}

func formatRows(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WindowCmd returns the `vlist window` command.
func WindowCmd() *cobra.Command {
	opts := WindowOptions{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Compute the visible and render ranges for a list",
		Long: "Builds the item position table and resolves which items a viewport shows.\n" +
			"Ranges are inclusive item indices; the render range adds overscan on both sides.",
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunWindow(c.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Count, "count", 1000, "number of items")
	f.Float64Var(&opts.Height, "height", 50, "height of every item")
	f.Float64SliceVar(&opts.Heights, "heights", nil, "item heights, repeated cyclically (overrides --height)")
	f.Float64Var(&opts.Viewport, "viewport", 500, "viewport height")
	f.Float64Var(&opts.Offset, "offset", 0, "scroll offset")
	f.IntVar(&opts.Overscan, "overscan", window.DefaultOverscan, "items rendered beyond each viewport edge")
	f.Float64Var(&opts.Gap, "gap", 0, "space between items")
	f.BoolVar(&opts.Table, "table", false, "print a table of rendered items")
	return cmd
}
