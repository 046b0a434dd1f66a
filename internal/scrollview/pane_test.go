package scrollview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPane_Clamping(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		content int
		offset  int
		want    int
	}{
		{name: "within range", height: 10, content: 50, offset: 5, want: 5},
		{name: "negative offset", height: 10, content: 50, offset: -3, want: 0},
		{name: "past end", height: 10, content: 50, offset: 100, want: 40},
		{name: "content shorter than pane", height: 10, content: 4, offset: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPane(tt.height)
			p.SetContentHeight(tt.content)
			p.SetOffset(tt.offset)
			assert.Equal(t, tt.want, p.Offset())
			assert.Equal(t, Rect{Top: tt.want, Height: tt.height}, p.Bounds())
		})
	}
}

func TestPane_NotifiesOnChange(t *testing.T) {
	p := NewPane(10)
	p.SetContentHeight(100)

	calls := 0
	sub := p.Observe(func() { calls++ })

	p.ScrollBy(5)
	assert.Equal(t, 1, calls)

	// No movement, no notification.
	p.SetOffset(5)
	assert.Equal(t, 1, calls)

	p.Resize(20)
	assert.Equal(t, 2, calls)

	p.SetContentHeight(120)
	assert.Equal(t, 3, calls)

	p.SetContentHeight(120)
	assert.Equal(t, 3, calls)

	sub.Release()
	p.ScrollBy(1)
	assert.Equal(t, 3, calls)
}

func TestPane_ObserversCanReadBounds(t *testing.T) {
	p := NewPane(5)
	p.SetContentHeight(30)

	var seen Rect
	p.Observe(func() { seen = p.Bounds() })
	p.ScrollToBottom()

	assert.Equal(t, Rect{Top: 25, Height: 5}, seen)
}

func TestPane_ReleaseIsIdempotent(t *testing.T) {
	p := NewPane(5)
	a := p.Observe(func() {})
	b := p.Observe(func() {})
	assert.Equal(t, 2, p.Observers())

	a.Release()
	a.Release()
	assert.Equal(t, 1, p.Observers())

	b.Release()
	assert.Equal(t, 0, p.Observers())
}

func TestRect(t *testing.T) {
	r := Rect{Top: 4, Height: 3}
	assert.Equal(t, 7, r.Bottom())
	assert.False(t, r.Empty())
	assert.True(t, Rect{Top: 4}.Empty())
}
