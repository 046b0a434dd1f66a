package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/waylist/internal/listing"
	"github.com/rshade/waylist/internal/pagination"
	"github.com/rshade/waylist/internal/scrollview"
	"github.com/rshade/waylist/internal/source"
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyUp       = "up"
	keyK        = "k"
	keyDown     = "down"
	keyJ        = "j"
	keyPgUp     = "pgup"
	keyPgDown   = "pgdown"
	keyHome     = "home"
	keyG        = "g"
	keyEnd      = "end"
	keyShiftG   = "G"
	keyC        = "c"
	keyR        = "r"
	keySlash    = "/"
	keyEnter    = "enter"
	keyEsc      = "esc"
	wheelStride = 3
)

// Default dimensions before the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeHeight is the rows taken by the header and status bar.
	chromeHeight = 2
)

// session is the state of one query session. It lives behind a pointer so
// the sentinel callback and every copy of the model see the same values.
type session struct {
	gen       int
	query     source.Query
	result    listing.ResultSet[source.Diagram]
	cursor    string
	exhausted bool
	err       error
}

// ListModel is the Bubble Tea model for the diagram list.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ListModel struct {
	ctx     context.Context
	fetcher PageFetcher
	logger  zerolog.Logger

	sess     *session
	ctrl     *listing.Controller[source.Diagram]
	pane     *scrollview.Pane
	outbox   *outbox
	pageSize int

	showCollection bool
	showFilter     bool
	filter         textinput.Model
	spinner        spinner.Model

	width  int
	height int
}

// ListOption configures a ListModel.
type ListOption func(*ListModel)

// WithShowCollection sets whether rows show their collection.
func WithShowCollection(show bool) ListOption {
	return func(m *ListModel) {
		m.showCollection = show
	}
}

// WithLogger sets the model's logger.
func WithLogger(l zerolog.Logger) ListOption {
	return func(m *ListModel) {
		m.logger = l
	}
}

// WithQuery sets the initial query.
func WithQuery(q source.Query) ListOption {
	return func(m *ListModel) {
		m.sess.query = q
	}
}

// WithPageSize records the page size for progress display.
func WithPageSize(n int) ListOption {
	return func(m *ListModel) {
		m.pageSize = n
	}
}

// NewListModel creates a list over fetcher. The first page is requested by Init.
func NewListModel(ctx context.Context, fetcher PageFetcher, opts ...ListOption) ListModel {
	ti := textinput.New()
	ti.Placeholder = "collection"
	ti.CharLimit = 64

	m := ListModel{
		ctx:      ctx,
		fetcher:  fetcher,
		logger:   zerolog.Nop(),
		sess:     &session{result: listing.ResultSet[source.Diagram]{IsPending: true}},
		pane:     scrollview.NewPane(defaultHeight - chromeHeight),
		outbox:   &outbox{},
		pageSize: pagination.DefaultPageSize,
		filter:   ti,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SubtleStyle)),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}

	sess, out, fetcher, logger := m.sess, m.outbox, m.fetcher, m.logger
	getMoreItems := func() {
		requestMore(ctx, sess, out, fetcher, logger)
	}
	m.ctrl = listing.NewController[source.Diagram](getMoreItems, m.pane, listing.WithLogger(logger))
	m.relayout()
	if err := m.ctrl.Mount(func() (scrollview.Rect, bool) {
		return scrollview.Rect{Top: sentinelRow(sess), Height: 1}, true
	}); err != nil {
		logger.Warn().Err(err).Msg("could not mount sentinel")
	}
	return m
}

// Init starts the spinner and requests the first page.
func (m ListModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.startFetch()}
	cmds = append(cmds, m.outbox.drain()...)
	return tea.Batch(cmds...)
}

// Update handles messages (Bubble Tea interface).
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = msg.Width - len(m.filter.Prompt) - 10 //nolint:mnd // Label margin.
		m.pane.Resize(m.bodyHeight())
	case PageLoadedMsg:
		m.handlePageLoaded(msg)
	case PageFailedMsg:
		m.handlePageFailed(msg)
	case SessionResetMsg:
		cmd = m.resetSession(msg.Collection)
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.showFilter {
			cmd = m.handleFilterInput(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}

	cmds := append([]tea.Cmd{cmd}, m.outbox.drain()...)
	return m, tea.Batch(cmds...)
}

func (m *ListModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.ctrl.Unmount()
		return tea.Quit
	case keyUp, keyK:
		m.pane.ScrollBy(-1)
	case keyDown, keyJ:
		m.pane.ScrollBy(1)
	case keyPgUp:
		m.pane.ScrollBy(-m.pane.Height())
	case keyPgDown:
		m.pane.ScrollBy(m.pane.Height())
	case keyHome, keyG:
		m.pane.SetOffset(0)
	case keyEnd, keyShiftG:
		m.pane.ScrollToBottom()
	case keyC:
		m.showCollection = !m.showCollection
	case keyR:
		m.sess.err = nil
		requestMore(m.ctx, m.sess, m.outbox, m.fetcher, m.logger)
		m.relayout()
	case keySlash:
		m.showFilter = true
		m.pane.Resize(m.bodyHeight())
		m.filter.SetValue(m.sess.query.Collection)
		m.filter.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *ListModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button { //nolint:exhaustive // Only wheel events scroll the list.
	case tea.MouseButtonWheelUp:
		m.pane.ScrollBy(-wheelStride)
	case tea.MouseButtonWheelDown:
		m.pane.ScrollBy(wheelStride)
	}
}

func (m *ListModel) handleFilterInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case keyEnter:
		m.showFilter = false
		m.filter.Blur()
		m.pane.Resize(m.bodyHeight())
		collection := m.filter.Value()
		return func() tea.Msg { return SessionResetMsg{Collection: collection} }
	case keyEsc:
		m.showFilter = false
		m.filter.Blur()
		m.pane.Resize(m.bodyHeight())
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return cmd
}

func (m *ListModel) handlePageLoaded(msg PageLoadedMsg) {
	if msg.Gen != m.sess.gen {
		m.logger.Debug().Int("gen", msg.Gen).Msg("dropping page from previous session")
		return
	}

	s := m.sess
	s.result = listing.ResultSet[source.Diagram]{
		Items:     append(s.result.Items, msg.Page.Items...),
		Total:     msg.Page.Total,
		IsPending: false,
	}
	s.cursor = msg.Page.NextCursor
	s.exhausted = !msg.Page.HasMore()
	s.err = nil

	m.logger.Debug().
		Int("loaded", len(s.result.Items)).
		Int("total", s.result.Total).
		Bool("exhausted", s.exhausted).
		Msg("page applied")

	m.relayout()
	m.fillViewport()
}

// fillViewport requests the next page when the loaded rows do not reach the
// bottom of the pane. The sentinel stays visible in that case, so no new
// visibility edge would ever arrive.
func (m *ListModel) fillViewport() {
	if m.sess.exhausted || !m.ctrl.Mounted() {
		return
	}
	if sentinelRow(m.sess) < m.pane.Bounds().Bottom() {
		m.logger.Debug().Msg("pane not filled, requesting next page")
		requestMore(m.ctx, m.sess, m.outbox, m.fetcher, m.logger)
	}
}

func (m *ListModel) handlePageFailed(msg PageFailedMsg) {
	if msg.Gen != m.sess.gen {
		return
	}
	m.sess.result.IsPending = false
	if errors.Is(msg.Err, source.ErrEndOfResults) {
		m.sess.exhausted = true
	} else {
		m.sess.err = msg.Err
		m.logger.Warn().Err(msg.Err).Msg("page fetch failed")
	}
	m.relayout()
}

// resetSession discards the current results and starts a new query session.
func (m *ListModel) resetSession(collection string) tea.Cmd {
	s := m.sess
	s.gen++
	s.query = source.Query{Collection: collection}
	s.result = listing.ResultSet[source.Diagram]{IsPending: true}
	s.cursor = ""
	s.exhausted = false
	s.err = nil

	m.logger.Info().Str("collection", collection).Int("gen", s.gen).Msg("new query session")

	m.pane.SetOffset(0)
	m.relayout()
	return m.startFetch()
}

// startFetch issues the first-page fetch of the current session, which is
// already marked pending.
func (m ListModel) startFetch() tea.Cmd {
	s := m.sess
	if s.cursor != "" || len(s.result.Items) > 0 {
		return nil
	}
	return fetchPageCmd(m.ctx, m.fetcher, s.gen, s.query, "")
}

// requestMore is the caller-owned "fetch next page" capability handed to the
// controller. It ignores requests while a fetch is in flight or once the
// session is exhausted.
func requestMore(ctx context.Context, s *session, out *outbox, f PageFetcher, logger zerolog.Logger) {
	switch {
	case s.result.IsPending:
		logger.Debug().Msg("fetch already in flight")
		return
	case s.exhausted:
		logger.Debug().Msg("no more pages")
		return
	}
	s.result.IsPending = true
	out.push(fetchPageCmd(ctx, f, s.gen, s.query, s.cursor))
}

// layout plans the current entries.
func (m ListModel) layout() listing.Layout[source.Diagram] {
	return m.ctrl.Render(m.sess.result, m.showCollection)
}

// relayout updates the pane's content height: one row per entry plus the sentinel.
func (m ListModel) relayout() {
	m.pane.SetContentHeight(sentinelRow(m.sess) + 1)
}

// sentinelRow is the content row of the sentinel, directly below the last entry.
// showCollection does not change the entry count.
func sentinelRow(s *session) int {
	return len(listing.Plan(s.result, false).Entries)
}

func (m ListModel) bodyHeight() int {
	h := m.height - chromeHeight
	if m.showFilter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// Result returns the current result set snapshot.
func (m ListModel) Result() listing.ResultSet[source.Diagram] {
	return m.sess.result
}

// Progress returns load progress for the current session.
func (m ListModel) Progress() pagination.Progress {
	return pagination.NewProgress(len(m.sess.result.Items), m.sess.result.Total, m.pageSize)
}

// Err returns the last fetch error, if any.
func (m ListModel) Err() error {
	return m.sess.err
}

// Pane exposes the scroll container.
func (m ListModel) Pane() *scrollview.Pane {
	return m.pane
}

// Mounted reports whether the sentinel is observing the pane.
func (m ListModel) Mounted() bool {
	return m.ctrl.Mounted()
}

// Requests returns how many times the sentinel asked for more items.
func (m ListModel) Requests() int {
	return m.ctrl.Requests()
}
