package listing

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/rshade/waylist/internal/scrollview"
	"github.com/rshade/waylist/internal/waypoint"
)

// sentinelBottomOffset is the waypoint boundary extension used by the list.
const sentinelBottomOffset = 0

// Controller renders a ResultSet and forwards sentinel visibility edges to
// the caller's fetch function.
type Controller[T Keyed] struct {
	fetchMore func()
	waypoint  *waypoint.Waypoint
	logger    zerolog.Logger
	requested atomic.Int64
}

// ControllerOption configures a Controller.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) ControllerOption {
	return func(o *controllerOptions) {
		o.logger = l
	}
}

// NewController creates a controller whose sentinel observes viewport.
// fetchMore may be nil, in which case visibility edges are ignored.
func NewController[T Keyed](fetchMore func(), viewport scrollview.Viewport, opts ...ControllerOption) *Controller[T] {
	o := controllerOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		fetchMore: fetchMore,
		logger:    o.logger,
	}
	c.waypoint = waypoint.New(c.onEnter,
		waypoint.WithBottomOffset(sentinelBottomOffset),
		waypoint.WithScrollableAncestor(viewport),
		waypoint.WithLogger(o.logger),
	)
	return c
}

// Render plans the entries for result.
func (c *Controller[T]) Render(result ResultSet[T], showCollection bool) Layout[T] {
	return Plan(result, showCollection)
}

// Mount attaches the sentinel. measure locates the sentinel row in the
// viewport's content coordinates.
func (c *Controller[T]) Mount(measure waypoint.MeasureFunc) error {
	return c.waypoint.Attach(measure)
}

// Unmount releases the sentinel's observation.
func (c *Controller[T]) Unmount() {
	c.waypoint.Detach()
}

// Mounted reports whether the sentinel is attached.
func (c *Controller[T]) Mounted() bool {
	return c.waypoint.Attached()
}

// Notify re-evaluates sentinel visibility after the host changed layout
// without moving the viewport.
func (c *Controller[T]) Notify() {
	c.waypoint.Check()
}

// Requests returns how many times fetchMore has been invoked.
func (c *Controller[T]) Requests() int {
	return int(c.requested.Load())
}

func (c *Controller[T]) onEnter() {
	if c.fetchMore == nil {
		return
	}
	n := c.requested.Add(1)
	c.logger.Debug().Int64("request", n).Msg("sentinel entered, requesting more items")
	c.fetchMore()
}
