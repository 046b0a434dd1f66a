package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/waylist/internal/config"
	"github.com/rshade/waylist/internal/logging"
	"github.com/rshade/waylist/internal/source"
	"github.com/rshade/waylist/internal/tui"
)

// NewBrowseCmd creates the interactive list command. Without a terminal on
// stdout it behaves like render.
func NewBrowseCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse diagrams, loading more as you scroll",
		Example: `  # Browse everything
  waylist browse

  # Browse a single collection without the simulated delay
  waylist browse --collection Sanctions --no-latency`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				log := logging.FromContext(cmd.Context())
				log.Debug().Ctx(cmd.Context()).Msg("stdout is not a terminal, rendering plain output")
				return runRender(cmd, &flags)
			}
			return runBrowse(cmd, &flags)
		},
	}
	bindListFlags(cmd, &flags)

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *listFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	pager, err := openPager(cmd, flags)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	model := tui.NewListModel(ctx, pager,
		tui.WithQuery(source.Query{Collection: flags.collection}),
		tui.WithShowCollection(resolveShowCollection(cmd, flags, cfg)),
		tui.WithPageSize(pager.Params().PageSize),
		tui.WithLogger(logging.ComponentLogger(log, "tui")),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running list: %w", err)
	}

	if m, ok := final.(tui.ListModel); ok {
		res := m.Result()
		log.Info().Ctx(ctx).
			Int("loaded", len(res.Items)).
			Int("total", res.Total).
			Int("requests", m.Requests()).
			Int64("fetches", pager.Fetches()).
			Msg("list closed")
	}
	return nil
}
