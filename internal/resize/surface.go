package resize

import (
	"sync"
	"sync/atomic"
)

// Cursor names a pointer shape.
type Cursor string

// Cursors used by the grid.
const (
	CursorDefault   Cursor = "default"
	CursorColResize Cursor = "col-resize"
)

// Surface is the process-wide visual state a drag takes over: the pointer
// shape and whether incidental text selection is allowed.
type Surface interface {
	Cursor() Cursor
	SetCursor(Cursor)
	TextSelection() bool
	SetTextSelection(bool)
}

// Screen is an in-memory Surface, safe for concurrent use. Hosts that render
// the cursor state read it back when drawing.
type Screen struct {
	mu            sync.Mutex
	cursor        Cursor
	textSelection bool
}

// NewScreen returns a Screen with the default cursor and text selection
// enabled.
func NewScreen() *Screen {
	return &Screen{cursor: CursorDefault, textSelection: true}
}

// Cursor returns the current pointer shape.
func (s *Screen) Cursor() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SetCursor changes the pointer shape.
func (s *Screen) SetCursor(c Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = c
}

// TextSelection reports whether text selection is allowed.
func (s *Screen) TextSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textSelection
}

// SetTextSelection allows or suppresses text selection.
func (s *Screen) SetTextSelection(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textSelection = enabled
}

// Lease holds a Surface in the resize state until released.
type Lease struct {
	surface    Surface
	prevCursor Cursor
	prevText   bool
	once       sync.Once
	released   atomic.Bool
}

// Acquire records the surface's current state, then switches it to the
// resize cursor with text selection suppressed.
func Acquire(s Surface) *Lease {
	l := &Lease{
		surface:    s,
		prevCursor: s.Cursor(),
		prevText:   s.TextSelection(),
	}
	s.SetCursor(CursorColResize)
	s.SetTextSelection(false)
	return l
}

// Release restores the state recorded by Acquire. Only the first call has
// an effect.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.surface.SetCursor(l.prevCursor)
		l.surface.SetTextSelection(l.prevText)
		l.released.Store(true)
	})
}

// Released reports whether Release has run.
func (l *Lease) Released() bool {
	return l.released.Load()
}
