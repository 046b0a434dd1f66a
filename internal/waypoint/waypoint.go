// Package waypoint fires a callback when a sentinel row scrolls into view.
//
// A Waypoint observes a scrollview.Viewport and calls its onEnter callback on
// every transition of the sentinel from hidden to visible. It stays silent
// while the sentinel remains visible and when it leaves. The observation is
// acquired by Attach and released by Detach, so the waypoint's lifetime is
// bounded by the sentinel's presence in the rendered tree.
package waypoint

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/waylist/internal/scrollview"
)

// Attachment errors.
var (
	ErrAlreadyAttached = errors.New("waypoint already attached")
	ErrNoViewport      = errors.New("waypoint has no scrollable ancestor")
)

// MeasureFunc reports the sentinel's position in the ancestor's content
// coordinates. ok is false when the sentinel is detached or cannot be measured.
type MeasureFunc func() (rect scrollview.Rect, ok bool)

// Option configures a Waypoint.
type Option func(*Waypoint)

// WithBottomOffset extends the trigger boundary past the bottom edge of the
// viewport by rows. Negative values pull the boundary inward.
func WithBottomOffset(rows int) Option {
	return func(w *Waypoint) {
		w.bottomOffset = rows
	}
}

// WithScrollableAncestor sets the container whose scroll position is observed.
func WithScrollableAncestor(v scrollview.Viewport) Option {
	return func(w *Waypoint) {
		w.ancestor = v
	}
}

// WithLogger sets the logger used for trigger events.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Waypoint) {
		w.logger = l
	}
}

// Waypoint is a visibility-edge trigger.
type Waypoint struct {
	onEnter      func()
	bottomOffset int
	ancestor     scrollview.Viewport
	logger       zerolog.Logger

	mu      sync.Mutex
	measure MeasureFunc
	sub     scrollview.Subscription
	visible bool
}

// New creates a detached waypoint.
func New(onEnter func(), opts ...Option) *Waypoint {
	w := &Waypoint{
		onEnter: onEnter,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Attach starts observing the scrollable ancestor and evaluates visibility
// once, so a sentinel that is already on screen fires immediately.
func (w *Waypoint) Attach(measure MeasureFunc) error {
	if w.ancestor == nil {
		return ErrNoViewport
	}

	w.mu.Lock()
	if w.sub != nil {
		w.mu.Unlock()
		return ErrAlreadyAttached
	}
	w.measure = measure
	w.visible = false
	w.mu.Unlock()

	sub := w.ancestor.Observe(w.Check)

	w.mu.Lock()
	w.sub = sub
	w.mu.Unlock()

	w.logger.Debug().Int("bottom_offset", w.bottomOffset).Msg("waypoint attached")
	w.Check()
	return nil
}

// Detach releases the observation. It is safe to call more than once.
func (w *Waypoint) Detach() {
	w.mu.Lock()
	sub := w.sub
	w.sub = nil
	w.measure = nil
	w.visible = false
	w.mu.Unlock()

	if sub != nil {
		sub.Release()
		w.logger.Debug().Msg("waypoint detached")
	}
}

// Attached reports whether the waypoint holds an observation.
func (w *Waypoint) Attached() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sub != nil
}

// Visible reports the last computed visibility.
func (w *Waypoint) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Check recomputes visibility and fires onEnter on a hidden-to-visible edge.
func (w *Waypoint) Check() {
	w.mu.Lock()
	if w.sub == nil && w.measure == nil {
		w.mu.Unlock()
		return
	}
	measure := w.measure
	w.mu.Unlock()

	now := false
	if measure != nil {
		if rect, ok := measure(); ok && !rect.Empty() {
			now = intersects(rect, w.ancestor.Bounds(), w.bottomOffset)
		}
	}

	w.mu.Lock()
	entered := now && !w.visible
	w.visible = now
	w.mu.Unlock()

	if entered {
		w.logger.Debug().Msg("waypoint entered")
		if w.onEnter != nil {
			w.onEnter()
		}
	}
}

// intersects reports whether sentinel overlaps view extended downward by bottomOffset.
func intersects(sentinel, view scrollview.Rect, bottomOffset int) bool {
	top := view.Top
	bottom := view.Bottom() + bottomOffset
	if bottom <= top {
		return false
	}
	return sentinel.Top < bottom && sentinel.Bottom() > top
}
