// Package pagination holds page-size parameters and load-progress metadata
// shared by the page source, the CLI and the terminal UI.
package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Pagination defaults and validation limits.
const (
	DefaultPageSize = 25
	MinPageSize     = 1
	MaxPageSize     = 1000
	DefaultLimit    = 0
	MaxLimit        = 100000
)

// Flag names bound by BindFlags.
const (
	FlagPageSize = "page-size"
	FlagLimit    = "limit"
)

// Common validation errors.
var (
	ErrInvalidPageSize = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidLimit    = fmt.Errorf("limit must be between 0 and %d", MaxLimit)
	ErrInvalidOffset   = errors.New("offset must be non-negative")
)

// Params controls how results are fetched.
type Params struct {
	// PageSize is the number of items requested per fetch.
	PageSize int `yaml:"page_size"`

	// Limit caps the number of items loaded in a session (0 = no cap).
	Limit int `yaml:"limit"`
}

// NewParams returns Params with default values.
func NewParams() Params {
	return Params{
		PageSize: DefaultPageSize,
		Limit:    DefaultLimit,
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	return nil
}

// BindFlags registers --page-size and --limit on cmd, writing into p.
func (p *Params) BindFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.PageSize, FlagPageSize, p.PageSize, "number of items fetched per page")
	cmd.Flags().IntVar(&p.Limit, FlagLimit, p.Limit, "maximum number of items to load (0 = no limit)")
}

// Window returns the [start, end) slice bounds of the page starting at offset
// within total items, honouring Limit. ok is false when offset is past the end.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Window(offset, total int) (start, end int, ok bool, err error) {
	if offset < 0 {
		return 0, 0, false, ErrInvalidOffset
	}

	ceiling := total
	if p.Limit > 0 && p.Limit < ceiling {
		ceiling = p.Limit
	}
	if offset >= ceiling {
		return ceiling, ceiling, false, nil
	}

	end = offset + p.PageSize
	if end > ceiling {
		end = ceiling
	}
	return offset, end, true, nil
}

// EffectiveTotal returns total capped by Limit.
func (p Params) EffectiveTotal(total int) int {
	if p.Limit > 0 && p.Limit < total {
		return p.Limit
	}
	return total
}
