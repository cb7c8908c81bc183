package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/api"
	"github.com/gravitrone/vlist/internal/config"
)

// RunInteractiveInit prompts for the API server and key, checks the server
// and persists config. An unreachable server is reported but not fatal.
func RunInteractiveInit(in io.Reader, out io.Writer) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	reader := bufio.NewReader(in)

	current := cfg.BaseURL
	if current == "" {
		current = api.DefaultBaseURL
	}
	fmt.Fprintf(out, "base url [%s]: ", current)
	baseURL, _ := reader.ReadString('\n')
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = current
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return fmt.Errorf("base url must start with http:// or https://")
	}

	fmt.Fprint(out, "api key (empty for none): ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)

	client := api.NewClient(baseURL, apiKey)
	if status, err := client.Health(); err != nil {
		fmt.Fprintf(out, "warning: server check failed: %v\n", err)
	} else {
		fmt.Fprintf(out, "server status: %s\n", status)
	}

	cfg.BaseURL = client.BaseURL()
	cfg.APIKey = apiKey
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// InitCmd returns the `vlist init` command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Configure the item API server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveInit(os.Stdin, c.OutOrStdout())
		},
	}
}
