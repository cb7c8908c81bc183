package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/api"
	"github.com/gravitrone/vlist/internal/config"
	"github.com/gravitrone/vlist/internal/ui/components"
)

// NewClient builds an API client from config, with baseURL overriding the
// configured server when set.
func NewClient(cfg *config.Config, baseURL string, timeout time.Duration) *api.Client {
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	return api.NewDefaultClient(baseURL, cfg.APIKey, timeout)
}

// FetchCmd returns the `vlist fetch` command.
func FetchCmd() *cobra.Command {
	var (
		baseURL string
		params  map[string]string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "fetch <path>",
		Short: "Fetch items from the API and print their titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}
			client := NewClient(cfg, baseURL, timeout)

			start := time.Now()
			list, err := client.FetchItems(args[0], api.QueryParams(params))
			if err != nil {
				return fmt.Errorf("fetch items: %w", err)
			}
			slog.Debug("fetched items", "url", client.BaseURL()+args[0], "count", len(list), "took", time.Since(start))

			out := c.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "no items found")
				return nil
			}
			for _, it := range list {
				fmt.Fprintf(out, "  %s  %s\n", components.SanitizeOneLine(it.ID), components.SanitizeOneLine(it.Title))
			}
			fmt.Fprintf(out, "%d items\n", len(list))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "", "API server (defaults to the configured base_url)")
	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "query parameter key=value (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}
