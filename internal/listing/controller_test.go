package listing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/waylist/internal/scrollview"
)

// listFixture places one row per entry and the sentinel right after them.
type listFixture struct {
	pane   *scrollview.Pane
	ctrl   *Controller[item]
	result ResultSet[item]
	calls  int
}

func newListFixture(t *testing.T, height int) *listFixture {
	t.Helper()
	f := &listFixture{pane: scrollview.NewPane(height)}
	f.ctrl = NewController[item](func() { f.calls++ }, f.pane)
	return f
}

func (f *listFixture) render() Layout[item] {
	layout := f.ctrl.Render(f.result, false)
	f.pane.SetContentHeight(len(layout.Entries) + 1)
	return layout
}

func (f *listFixture) measure() (scrollview.Rect, bool) {
	rows := len(Plan(f.result, false).Entries)
	return scrollview.Rect{Top: rows, Height: 1}, true
}

func TestController_SingleFirePerTransition(t *testing.T) {
	f := newListFixture(t, 10)
	f.result = ResultSet[item]{Items: items(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20), Total: 100}
	f.render()
	require.NoError(t, f.ctrl.Mount(f.measure))
	assert.Equal(t, 0, f.calls)

	f.pane.ScrollToBottom()
	assert.Equal(t, 1, f.calls)

	// Scroll ticks and recomputation while the sentinel stays visible.
	for i := 0; i < 3; i++ {
		f.pane.ScrollBy(5)
		f.ctrl.Notify()
	}
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 1, f.ctrl.Requests())
}

// Requests may be read from outside the goroutine that scrolls the pane.
func TestController_RequestsReadConcurrently(t *testing.T) {
	f := newListFixture(t, 10)
	f.result = ResultSet[item]{Items: items(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20), Total: 100}
	f.render()
	require.NoError(t, f.ctrl.Mount(f.measure))

	const edges = 50
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < edges; i++ {
			f.pane.ScrollToBottom()
			f.pane.SetOffset(0)
		}
	}()

	last := 0
	for seen := 0; seen < edges; {
		seen = f.ctrl.Requests()
		assert.GreaterOrEqual(t, seen, last)
		last = seen
	}
	wg.Wait()

	assert.Equal(t, edges, f.calls)
	assert.Equal(t, edges, f.ctrl.Requests())
}

func TestController_ForwardsEveryTransitionWithoutDedup(t *testing.T) {
	f := newListFixture(t, 10)
	f.result = ResultSet[item]{Items: items(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12), Total: 2, IsPending: true}
	f.render()
	require.NoError(t, f.ctrl.Mount(f.measure))

	// The caller's fetch is still pending, but each edge is forwarded.
	for i := 0; i < 3; i++ {
		f.pane.ScrollToBottom()
		f.pane.SetOffset(0)
	}
	assert.Equal(t, 3, f.calls)
}

func TestController_InitialPlaceholdersFillViewport(t *testing.T) {
	f := newListFixture(t, 20)
	f.result = ResultSet[item]{IsPending: true}
	layout := f.render()
	assert.Len(t, layout.Placeholders(), PlaceholderCount)

	// The sentinel sits right under the placeholders and is on screen at mount.
	require.NoError(t, f.ctrl.Mount(f.measure))
	assert.Equal(t, 1, f.calls)
}

func TestController_ScenarioScrollAfterFirstPage(t *testing.T) {
	f := newListFixture(t, 2)
	f.result = ResultSet[item]{Items: items(1, 2), Total: 2}
	f.render()
	require.NoError(t, f.ctrl.Mount(f.measure))
	assert.Equal(t, 0, f.calls)

	f.pane.ScrollToBottom()
	assert.Equal(t, 1, f.calls)

	// The caller marks the next page pending.
	f.result = ResultSet[item]{Items: items(1, 2), Total: 2, IsPending: true}
	layout := f.render()
	assert.Equal(t, []string{"1", "2"}, layout.Keys())
	assert.Equal(t, 1, f.calls)
}

func TestController_MountUnmountReleasesObservation(t *testing.T) {
	f := newListFixture(t, 5)
	f.render()

	for i := 0; i < 10; i++ {
		require.NoError(t, f.ctrl.Mount(f.measure))
		assert.True(t, f.ctrl.Mounted())
		f.ctrl.Unmount()
		assert.False(t, f.ctrl.Mounted())
	}
	assert.Equal(t, 0, f.pane.Observers())
}

func TestController_NotifyAfterContentShrink(t *testing.T) {
	f := newListFixture(t, 5)
	f.result = ResultSet[item]{Items: items(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), Total: 10}
	f.render()
	require.NoError(t, f.ctrl.Mount(f.measure))
	assert.Equal(t, 0, f.calls)

	// A new query session starts with fewer rows; the content change alone
	// brings the sentinel on screen.
	f.result = ResultSet[item]{Items: items(1), Total: 1}
	f.render()
	assert.Equal(t, 1, f.calls)

	f.ctrl.Notify()
	assert.Equal(t, 1, f.calls)
}

func TestController_NilFetchMore(t *testing.T) {
	pane := scrollview.NewPane(5)
	ctrl := NewController[item](nil, pane)
	assert.NotPanics(t, func() {
		require.NoError(t, ctrl.Mount(func() (scrollview.Rect, bool) { return scrollview.Rect{Top: 0, Height: 1}, true }))
	})
	assert.Equal(t, 0, ctrl.Requests())
}
