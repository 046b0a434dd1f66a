package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/waylist/internal/cache"
	"github.com/rshade/waylist/internal/pagination"
)

// Pager errors.
var (
	ErrEndOfResults  = errors.New("no more results")
	ErrInvalidCursor = errors.New("invalid cursor")
)

// Query selects which diagrams a session pages through.
type Query struct {
	Collection string
}

// Page is one fetch result.
type Page struct {
	Items      []Diagram `json:"items"`
	Total      int       `json:"total"`
	NextCursor string    `json:"next_cursor"`
}

// HasMore reports whether another page can be fetched.
func (p Page) HasMore() bool {
	return p.NextCursor != ""
}

// PageCache is the subset of cache.FileStore used by Pager.
type PageCache interface {
	Get(key string) (*cache.Entry, error)
	Set(key string, v any) error
}

// PagerOption configures a Pager.
type PagerOption func(*Pager)

// WithLatency delays every uncached fetch by d.
func WithLatency(d time.Duration) PagerOption {
	return func(p *Pager) {
		p.latency = d
	}
}

// WithCache stores fetched pages in c.
func WithCache(c PageCache) PagerOption {
	return func(p *Pager) {
		p.cache = c
	}
}

// WithLogger sets the pager's logger.
func WithLogger(l zerolog.Logger) PagerOption {
	return func(p *Pager) {
		p.logger = l
	}
}

// Pager serves a Catalog page by page.
type Pager struct {
	catalog *Catalog
	params  pagination.Params
	latency time.Duration
	cache   PageCache
	logger  zerolog.Logger

	group   singleflight.Group
	fetches atomic.Int64
}

// NewPager creates a pager over catalog.
func NewPager(catalog *Catalog, params pagination.Params, opts ...PagerOption) (*Pager, error) {
	if catalog == nil {
		return nil, errors.New("pager requires a catalog")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	p := &Pager{
		catalog: catalog,
		params:  params,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Params returns the pager's pagination parameters.
func (p *Pager) Params() pagination.Params {
	return p.params
}

// Fetches returns how many pages were loaded from the catalog, excluding
// shared and cached results.
func (p *Pager) Fetches() int64 {
	return p.fetches.Load()
}

// FetchPage returns the page starting at cursor ("" for the first page).
// Concurrent calls for the same query and cursor share a single load.
func (p *Pager) FetchPage(ctx context.Context, q Query, cursor string) (Page, error) {
	offset, err := parseCursor(cursor)
	if err != nil {
		return Page{}, err
	}

	key := cache.Key("diagrams", p.catalog.Fingerprint(), q.Collection, strconv.Itoa(offset),
		strconv.Itoa(p.params.PageSize), strconv.Itoa(p.params.Limit))

	v, err, shared := p.group.Do(key, func() (any, error) {
		return p.load(ctx, key, q, offset)
	})
	if err != nil {
		return Page{}, err
	}
	if shared {
		p.logger.Debug().Str("cursor", cursor).Msg("joined in-flight page fetch")
	}
	return v.(Page), nil
}

func (p *Pager) load(ctx context.Context, key string, q Query, offset int) (Page, error) {
	if p.cache != nil {
		if entry, err := p.cache.Get(key); err == nil {
			var page Page
			if decodeErr := entry.Decode(&page); decodeErr == nil {
				p.logger.Debug().Int("offset", offset).Msg("page served from cache")
				return page, nil
			}
		}
	}

	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Page{}, ctx.Err()
		case <-timer.C:
		}
	}

	matches := p.catalog.Filter(q.Collection)
	start, end, ok, err := p.params.Window(offset, len(matches))
	if err != nil {
		return Page{}, err
	}
	if !ok && offset > 0 {
		return Page{}, ErrEndOfResults
	}

	page := Page{
		Items: append([]Diagram(nil), matches[start:end]...),
		Total: p.params.EffectiveTotal(len(matches)),
	}
	if end < page.Total {
		page.NextCursor = strconv.Itoa(end)
	}
	p.fetches.Add(1)

	p.logger.Debug().
		Str("collection", q.Collection).
		Int("offset", offset).
		Int("count", len(page.Items)).
		Int("total", page.Total).
		Msg("page loaded")

	if p.cache != nil {
		if setErr := p.cache.Set(key, page); setErr != nil {
			p.logger.Warn().Err(setErr).Msg("could not cache page")
		}
	}
	return page, nil
}

func parseCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}
	return offset, nil
}
