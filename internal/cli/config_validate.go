package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/waylist/internal/config"
)

// NewConfigValidateCmd creates the config validate command. The root command
// has already loaded and validated the file by the time it runs.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Example: `  # Validate current configuration
  waylist config validate

  # Show the effective configuration
  waylist config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Configuration is valid")
			if verbose {
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("encoding configuration: %w", err)
				}
				_, _ = fmt.Fprintf(out, "\n%s", data)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the effective configuration")

	return cmd
}
