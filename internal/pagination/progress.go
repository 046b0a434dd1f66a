package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // Shared number formatter.

// Progress describes how much of a query session has loaded.
type Progress struct {
	Loaded   int `json:"loaded"    yaml:"loaded"`
	Total    int `json:"total"     yaml:"total"`
	PageSize int `json:"page_size" yaml:"page_size"`
}

// NewProgress builds progress metadata for loaded of total items.
func NewProgress(loaded, total, pageSize int) Progress {
	return Progress{Loaded: loaded, Total: total, PageSize: pageSize}
}

// HasMore reports whether more items remain. An unknown total (0) with
// nothing loaded counts as more remaining.
func (p Progress) HasMore() bool {
	if p.Total == 0 {
		return p.Loaded == 0
	}
	return p.Loaded < p.Total
}

// PagesLoaded returns the number of full or partial pages loaded.
func (p Progress) PagesLoaded() int {
	if p.PageSize <= 0 || p.Loaded == 0 {
		return 0
	}
	return (p.Loaded + p.PageSize - 1) / p.PageSize
}

// TotalPages returns the number of pages in the session, or 0 if unknown.
func (p Progress) TotalPages() int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// Percent returns the loaded percentage, 0 when the total is unknown.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Loaded * 100) / p.Total //nolint:mnd // Percentage calculation.
}

// String renders e.g. "Loaded 1,250 of 5,000 (25%)".
func (p Progress) String() string {
	if p.Total <= 0 {
		return printer.Sprintf("Loaded %d", p.Loaded)
	}
	return printer.Sprintf("Loaded %d of %d (%d%%)", p.Loaded, p.Total, p.Percent())
}
