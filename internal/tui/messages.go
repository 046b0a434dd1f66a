package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/waylist/internal/source"
)

// PageFetcher loads one page of a query session.
type PageFetcher interface {
	FetchPage(ctx context.Context, q source.Query, cursor string) (source.Page, error)
}

// PageLoadedMsg carries a page for session Gen.
type PageLoadedMsg struct {
	Gen  int
	Page source.Page
}

// PageFailedMsg reports a failed fetch for session Gen.
type PageFailedMsg struct {
	Gen int
	Err error
}

// SessionResetMsg starts a new query session for Collection.
type SessionResetMsg struct {
	Collection string
}

// fetchPageCmd runs one fetch off the event loop.
func fetchPageCmd(ctx context.Context, f PageFetcher, gen int, q source.Query, cursor string) tea.Cmd {
	return func() tea.Msg {
		page, err := f.FetchPage(ctx, q, cursor)
		if err != nil {
			return PageFailedMsg{Gen: gen, Err: err}
		}
		return PageLoadedMsg{Gen: gen, Page: page}
	}
}

// outbox collects commands produced by callbacks fired during Update.
type outbox struct {
	cmds []tea.Cmd
}

func (o *outbox) push(cmd tea.Cmd) {
	if cmd != nil {
		o.cmds = append(o.cmds, cmd)
	}
}

func (o *outbox) drain() []tea.Cmd {
	cmds := o.cmds
	o.cmds = nil
	return cmds
}
