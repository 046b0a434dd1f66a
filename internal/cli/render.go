package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/waylist/internal/config"
	"github.com/rshade/waylist/internal/listing"
	"github.com/rshade/waylist/internal/logging"
	"github.com/rshade/waylist/internal/pagination"
	"github.com/rshade/waylist/internal/source"
	"github.com/rshade/waylist/internal/tui"
)

// NewRenderCmd creates the non-interactive list command.
func NewRenderCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print diagrams page by page without a terminal UI",
		Example: `  # Print the first 100 diagrams
  waylist render --limit 100

  # Print one collection, 10 per fetch
  waylist render --collection Leaks --page-size 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, &flags)
		},
	}
	bindListFlags(cmd, &flags)

	return cmd
}

func runRender(cmd *cobra.Command, flags *listFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	pager, err := openPager(cmd, flags)
	if err != nil {
		return err
	}

	query := source.Query{Collection: flags.collection}
	result := listing.ResultSet[source.Diagram]{IsPending: true}
	cursor := ""
	for {
		page, fetchErr := pager.FetchPage(ctx, query, cursor)
		if errors.Is(fetchErr, source.ErrEndOfResults) {
			break
		}
		if fetchErr != nil {
			log.Error().Ctx(ctx).Err(fetchErr).Str("cursor", cursor).Msg("page fetch failed")
			return fmt.Errorf("fetching page: %w", fetchErr)
		}

		result.Items = append(result.Items, page.Items...)
		result.Total = page.Total
		if !page.HasMore() {
			break
		}
		cursor = page.NextCursor
	}
	result.IsPending = false

	log.Debug().Ctx(ctx).
		Int("loaded", len(result.Items)).
		Int("total", result.Total).
		Int64("fetches", pager.Fetches()).
		Msg("render complete")

	showCollection := resolveShowCollection(cmd, flags, config.GetGlobalConfig())
	layout := listing.Plan(result, showCollection)
	progress := pagination.NewProgress(len(result.Items), result.Total, pager.Params().PageSize)
	return tui.WritePlain(cmd.OutOrStdout(), layout, progress)
}
