// Package cli implements the waylist command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/waylist/internal/config"
	"github.com/rshade/waylist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the waylist CLI.
// It loads configuration, wires up logging and tracing, and registers the
// browse, render and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "waylist",
		Short:         "Browse a paginated diagram catalog",
		Long:          "waylist: an incrementally loaded list of diagrams that fetches the next page as you scroll",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg.Logging)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.waylist/config.yaml)")
	cmd.AddCommand(NewBrowseCmd(), NewRenderCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse the configured catalog
  waylist browse

  # Browse one collection with smaller pages
  waylist browse --collection Leaks --page-size 10

  # Print the first 50 diagrams without a terminal UI
  waylist render --limit 50

  # Use a catalog file
  WAYLIST_CATALOG=diagrams.yaml waylist render`
