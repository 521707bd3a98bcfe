package resize

import "testing"

func TestLease_RestoresOnce(t *testing.T) {
	screen := NewScreen()
	screen.SetCursor("text")
	screen.SetTextSelection(false)

	lease := Acquire(screen)
	if screen.Cursor() != CursorColResize {
		t.Errorf("cursor = %q during lease", screen.Cursor())
	}

	lease.Release()
	if screen.Cursor() != "text" || screen.TextSelection() {
		t.Errorf("after release: cursor=%q text=%v", screen.Cursor(), screen.TextSelection())
	}
	if !lease.Released() {
		t.Error("Released() = false after Release")
	}

	screen.SetCursor("other")
	lease.Release()
	if screen.Cursor() != "other" {
		t.Error("second Release touched the surface")
	}
}

func TestNewScreen_Defaults(t *testing.T) {
	screen := NewScreen()
	if screen.Cursor() != CursorDefault || !screen.TextSelection() {
		t.Errorf("NewScreen() = cursor %q text %v", screen.Cursor(), screen.TextSelection())
	}
}

func TestScreen_Setters(t *testing.T) {
	screen := NewScreen()
	screen.SetCursor(CursorColResize)
	screen.SetTextSelection(false)
	if screen.Cursor() != CursorColResize {
		t.Errorf("Cursor() = %q, want %q", screen.Cursor(), CursorColResize)
	}
	if screen.TextSelection() {
		t.Error("TextSelection() = true after SetTextSelection(false)")
	}
}
