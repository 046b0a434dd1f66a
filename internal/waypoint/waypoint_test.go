package waypoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/waylist/internal/scrollview"
)

// sentinelAt returns a MeasureFunc for a one-row sentinel at row.
func sentinelAt(row *int) MeasureFunc {
	return func() (scrollview.Rect, bool) {
		return scrollview.Rect{Top: *row, Height: 1}, true
	}
}

func newFixture(t *testing.T, paneHeight, content int, opts ...Option) (*scrollview.Pane, *Waypoint, *int) {
	t.Helper()
	pane := scrollview.NewPane(paneHeight)
	pane.SetContentHeight(content)
	fired := 0
	opts = append([]Option{WithScrollableAncestor(pane)}, opts...)
	return pane, New(func() { fired++ }, opts...), &fired
}

func TestWaypoint_FiresOncePerTransition(t *testing.T) {
	pane, wp, fired := newFixture(t, 10, 60)
	row := 50
	require.NoError(t, wp.Attach(sentinelAt(&row)))
	assert.Equal(t, 0, *fired)
	assert.False(t, wp.Visible())

	pane.SetOffset(45)
	assert.Equal(t, 1, *fired)
	assert.True(t, wp.Visible())

	// Further scroll ticks while still visible do not fire again.
	pane.ScrollBy(-1)
	pane.ScrollBy(1)
	pane.Resize(11)
	assert.Equal(t, 1, *fired)

	// Leaving is silent.
	pane.SetOffset(0)
	assert.Equal(t, 1, *fired)
	assert.False(t, wp.Visible())

	// Re-entering fires again.
	pane.ScrollToBottom()
	assert.Equal(t, 2, *fired)
}

func TestWaypoint_FiresOnAttachWhenAlreadyVisible(t *testing.T) {
	_, wp, fired := newFixture(t, 10, 3)
	row := 2
	require.NoError(t, wp.Attach(sentinelAt(&row)))
	assert.Equal(t, 1, *fired)
}

func TestWaypoint_InertWhenUnmeasurable(t *testing.T) {
	tests := []struct {
		name    string
		measure MeasureFunc
	}{
		{
			name:    "detached sentinel",
			measure: func() (scrollview.Rect, bool) { return scrollview.Rect{}, false },
		},
		{
			name:    "zero height",
			measure: func() (scrollview.Rect, bool) { return scrollview.Rect{Top: 0, Height: 0}, true },
		},
		{
			name:    "nil measure",
			measure: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pane, wp, fired := newFixture(t, 10, 5)
			require.NoError(t, wp.Attach(tt.measure))
			pane.Resize(4)
			pane.Resize(10)
			assert.Equal(t, 0, *fired)
			assert.False(t, wp.Visible())
		})
	}
}

func TestWaypoint_ZeroHeightViewportNeverFires(t *testing.T) {
	_, wp, fired := newFixture(t, 0, 0)
	row := 0
	require.NoError(t, wp.Attach(sentinelAt(&row)))
	assert.Equal(t, 0, *fired)
}

func TestWaypoint_BottomOffset(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		sentinel  int
		wantFired int
	}{
		{name: "zero offset below edge", offset: 0, sentinel: 10, wantFired: 0},
		{name: "zero offset on last row", offset: 0, sentinel: 9, wantFired: 1},
		{name: "offset reaches sentinel", offset: 3, sentinel: 12, wantFired: 1},
		{name: "offset short of sentinel", offset: 3, sentinel: 13, wantFired: 0},
		{name: "negative offset hides last row", offset: -1, sentinel: 9, wantFired: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, wp, fired := newFixture(t, 10, 100, WithBottomOffset(tt.offset))
			row := tt.sentinel
			require.NoError(t, wp.Attach(sentinelAt(&row)))
			assert.Equal(t, tt.wantFired, *fired)
		})
	}
}

func TestWaypoint_SentinelMovesAway(t *testing.T) {
	pane, wp, fired := newFixture(t, 10, 5)
	row := 4
	require.NoError(t, wp.Attach(sentinelAt(&row)))
	assert.Equal(t, 1, *fired)

	// A page arrives and pushes the sentinel below the fold.
	row = 30
	pane.SetContentHeight(31)
	assert.False(t, wp.Visible())
	assert.Equal(t, 1, *fired)

	pane.ScrollToBottom()
	assert.Equal(t, 2, *fired)
}

func TestWaypoint_AttachDetachLifecycle(t *testing.T) {
	pane, wp, fired := newFixture(t, 10, 100)
	row := 50

	for i := 0; i < 5; i++ {
		require.NoError(t, wp.Attach(sentinelAt(&row)))
		assert.True(t, wp.Attached())
		assert.Equal(t, 1, pane.Observers())

		assert.ErrorIs(t, wp.Attach(sentinelAt(&row)), ErrAlreadyAttached)

		wp.Detach()
		wp.Detach()
		assert.False(t, wp.Attached())
		assert.Equal(t, 0, pane.Observers())
	}

	// Detached waypoints ignore geometry changes.
	pane.SetOffset(45)
	wp.Check()
	assert.Equal(t, 0, *fired)
}

func TestWaypoint_NoViewport(t *testing.T) {
	wp := New(func() {})
	assert.ErrorIs(t, wp.Attach(func() (scrollview.Rect, bool) { return scrollview.Rect{}, true }), ErrNoViewport)
}

func TestWaypoint_NilCallback(t *testing.T) {
	pane := scrollview.NewPane(10)
	wp := New(nil, WithScrollableAncestor(pane))
	row := 0
	assert.NotPanics(t, func() {
		require.NoError(t, wp.Attach(sentinelAt(&row)))
	})
	assert.True(t, wp.Visible())
}
