package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/waylist/internal/cache"
	"github.com/rshade/waylist/internal/config"
	"github.com/rshade/waylist/internal/logging"
	"github.com/rshade/waylist/internal/pagination"
	"github.com/rshade/waylist/internal/source"
)

// listFlags are the flags shared by browse and render.
type listFlags struct {
	params         pagination.Params
	collection     string
	showCollection bool
	noCache        bool
	noLatency      bool
}

// bindListFlags registers the shared list flags on cmd.
func bindListFlags(cmd *cobra.Command, f *listFlags) {
	f.params = pagination.NewParams()
	f.params.BindFlags(cmd)
	cmd.Flags().StringVar(&f.collection, "collection", "", "only list diagrams in this collection")
	cmd.Flags().BoolVar(&f.showCollection, "show-collection", true, "show the collection column")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "bypass the page cache")
	cmd.Flags().BoolVar(&f.noLatency, "no-latency", false, "disable the simulated fetch delay")
}

// resolveParams layers explicitly set flags over the configured pagination.
func resolveParams(cmd *cobra.Command, f *listFlags, cfg *config.Config) (pagination.Params, error) {
	params := cfg.List.Pagination
	if cmd.Flags().Changed(pagination.FlagPageSize) {
		params.PageSize = f.params.PageSize
	}
	if cmd.Flags().Changed(pagination.FlagLimit) {
		params.Limit = f.params.Limit
	}
	if err := params.Validate(); err != nil {
		return pagination.Params{}, err
	}
	return params, nil
}

// resolveShowCollection prefers the flag when set, else the configured value.
func resolveShowCollection(cmd *cobra.Command, f *listFlags, cfg *config.Config) bool {
	if cmd.Flags().Changed("show-collection") {
		return f.showCollection
	}
	return cfg.List.ShowCollection
}

// loadCatalog opens the configured catalog file or generates a synthetic one.
func loadCatalog(ctx context.Context, cfg *config.Config) (*source.Catalog, error) {
	log := logging.FromContext(ctx)

	if cfg.Catalog.Path == "" {
		log.Debug().Ctx(ctx).Int("items", cfg.Catalog.Synthetic).Msg("using synthetic catalog")
		return source.SyntheticCatalog(cfg.Catalog.Synthetic), nil
	}

	catalog, err := source.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("catalog_path", cfg.Catalog.Path).Msg("failed to load catalog")
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	log.Debug().Ctx(ctx).Int("items", catalog.Len()).Str("catalog_path", cfg.Catalog.Path).Msg("catalog loaded")
	return catalog, nil
}

// openPager builds the pager behind a list session from configuration and flags.
func openPager(cmd *cobra.Command, f *listFlags) (*source.Pager, error) {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	log := logging.FromContext(ctx)

	params, err := resolveParams(cmd, f, cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := []source.PagerOption{source.WithLogger(logging.ComponentLogger(log, "source"))}
	if !f.noLatency && cfg.List.Latency > 0 {
		opts = append(opts, source.WithLatency(cfg.List.Latency))
	}

	if !f.noCache {
		enabled := cache.EnabledFromEnv(cfg.Cache.Enabled)
		if enabled {
			store, storeErr := cache.NewFileStore(
				cache.DirFromEnv(cfg.Cache.Dir), enabled, cache.TTLFromEnv(cfg.Cache.TTL))
			if storeErr != nil {
				log.Warn().Ctx(ctx).Err(storeErr).Msg("page cache unavailable, continuing without it")
			} else {
				opts = append(opts, source.WithCache(store))
			}
		}
	}

	return source.NewPager(catalog, params, opts...)
}
