package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the waylist version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := semver.NewVersion(ver)
			if err != nil {
				return fmt.Errorf("invalid build version %q: %w", ver, err)
			}
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.String())
				return nil
			}
			kind := "release"
			if v.Prerelease() != "" {
				kind = "pre-release " + v.Prerelease()
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "waylist v%s (%s)\n", v.String(), kind)
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}
