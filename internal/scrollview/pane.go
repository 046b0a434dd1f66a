package scrollview

import (
	"sort"
	"sync"
)

// Rect is a vertical span in content rows.
type Rect struct {
	Top    int
	Height int
}

// Bottom returns the first row below the span.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Empty reports whether the span has no rows.
func (r Rect) Empty() bool {
	return r.Height <= 0
}

// Viewport is a scrollable container whose visible region can be measured and observed.
type Viewport interface {
	// Bounds returns the visible region in content coordinates.
	Bounds() Rect

	// Observe registers fn to be called after every scroll or resize.
	Observe(fn func()) Subscription
}

// Subscription is a registered observation. Release is idempotent.
type Subscription interface {
	Release()
}

// Pane is a Viewport over a column of content rows.
// Observers are notified synchronously, in registration order, whenever the
// visible region changes.
type Pane struct {
	mu            sync.Mutex
	offset        int
	height        int
	contentHeight int

	nextID    int
	observers map[int]func()
}

// NewPane creates a pane showing height rows.
func NewPane(height int) *Pane {
	if height < 0 {
		height = 0
	}
	return &Pane{
		height:    height,
		observers: make(map[int]func()),
	}
}

// Bounds returns the visible region.
func (p *Pane) Bounds() Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Rect{Top: p.offset, Height: p.height}
}

// Offset returns the current scroll offset.
func (p *Pane) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Height returns the number of visible rows.
func (p *Pane) Height() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.height
}

// ContentHeight returns the number of content rows.
func (p *Pane) ContentHeight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contentHeight
}

// Observe registers fn and returns the handle that removes it.
func (p *Pane) Observe(fn func()) Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	return &paneSubscription{pane: p, id: id}
}

// Observers returns the number of live subscriptions.
func (p *Pane) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.observers)
}

// SetOffset scrolls to offset, clamped to the content.
func (p *Pane) SetOffset(offset int) {
	p.update(func() {
		p.offset = offset
	})
}

// ScrollBy scrolls by delta rows, clamped to the content.
func (p *Pane) ScrollBy(delta int) {
	p.update(func() {
		p.offset += delta
	})
}

// ScrollToBottom scrolls so the last content row is visible.
func (p *Pane) ScrollToBottom() {
	p.update(func() {
		p.offset = p.contentHeight
	})
}

// Resize changes the number of visible rows.
func (p *Pane) Resize(height int) {
	if height < 0 {
		height = 0
	}
	p.update(func() {
		p.height = height
	})
}

// SetContentHeight records how many rows the content occupies.
// Observers are notified even when only the content changed, because a
// fixed offset can reveal or hide rows that moved.
func (p *Pane) SetContentHeight(rows int) {
	if rows < 0 {
		rows = 0
	}
	p.mu.Lock()
	changed := p.contentHeight != rows
	p.contentHeight = rows
	p.clampLocked()
	observers := p.snapshotLocked()
	p.mu.Unlock()

	if changed {
		notify(observers)
	}
}

// update applies mutate and notifies observers if the visible region moved.
func (p *Pane) update(mutate func()) {
	p.mu.Lock()
	before := Rect{Top: p.offset, Height: p.height}
	mutate()
	p.clampLocked()
	after := Rect{Top: p.offset, Height: p.height}
	observers := p.snapshotLocked()
	p.mu.Unlock()

	if before != after {
		notify(observers)
	}
}

// clampLocked keeps the offset within [0, contentHeight-height]. Must be called with mu held.
func (p *Pane) clampLocked() {
	maxOffset := p.contentHeight - p.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// snapshotLocked copies observers in registration order. Must be called with mu held.
func (p *Pane) snapshotLocked() []func() {
	ids := make([]int, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, p.observers[id])
	}
	return fns
}

func (p *Pane) release(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.observers, id)
}

// notify runs observers outside the lock so they may read Bounds.
func notify(observers []func()) {
	for _, fn := range observers {
		fn()
	}
}

type paneSubscription struct {
	once sync.Once
	pane *Pane
	id   int
}

func (s *paneSubscription) Release() {
	s.once.Do(func() {
		s.pane.release(s.id)
	})
}
