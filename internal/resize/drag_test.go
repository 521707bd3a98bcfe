package resize

import (
	"testing"

	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

func TestDrag_Scenario(t *testing.T) {
	bus := event.NewBus()
	c := NewController(oneColumn(), bus)

	d := c.StartResize(0, 200)
	if d == nil {
		t.Fatal("StartResize returned nil")
	}

	bus.Publish(event.NewPointerMoveEvent(250, 0))
	if got := width(c, 0); got != 150 {
		t.Errorf("after move to 250: width = %d, want 150", got)
	}

	bus.Publish(event.NewPointerMoveEvent(120, 0))
	if got := width(c, 0); got != 50 {
		t.Errorf("after move to 120: width = %d, want 50", got)
	}

	bus.Publish(event.NewPointerUpEvent(120, 0))
	if d.Active() {
		t.Error("drag still active after pointer up")
	}

	bus.Publish(event.NewPointerMoveEvent(400, 0))
	if got := width(c, 0); got != 50 {
		t.Errorf("move after pointer up changed width to %d", got)
	}
	if bus.SubscriptionCount() != 0 {
		t.Errorf("%d handlers left after pointer up", bus.SubscriptionCount())
	}
}

func TestDrag_WidthIsRelativeToStart(t *testing.T) {
	bus := event.NewBus()
	c := NewController(threeColumns(), bus)
	c.StartResize(2, 1000)

	for _, x := range []int{1010, 1100, 990, 1040} {
		bus.Publish(event.NewPointerMoveEvent(x, 0))
		if want := 200 + x - 1000; width(c, 2) != want {
			t.Errorf("move to %d: width = %d, want %d", x, width(c, 2), want)
		}
	}
	if width(c, 0) != 60 || width(c, 1) != 120 {
		t.Error("drag changed another column")
	}
}

func TestDrag_FloorIsInclusive(t *testing.T) {
	bus := event.NewBus()
	c := NewController(oneColumn(), bus)
	c.StartResize(0, 0)

	bus.Publish(event.NewPointerMoveEvent(-50, 0))
	if got := width(c, 0); got != grid.MinWidth {
		t.Errorf("width = %d, want %d", got, grid.MinWidth)
	}

	bus.Publish(event.NewPointerMoveEvent(-1000, 0))
	if got := width(c, 0); got != grid.MinWidth {
		t.Errorf("width = %d, want floor %d", got, grid.MinWidth)
	}
}

func TestStartResize_OutOfRange(t *testing.T) {
	bus := event.NewBus()
	screen := NewScreen()
	c := NewController(oneColumn(), bus, WithSurface(screen))

	for _, idx := range []int{-1, 1, 5} {
		if d := c.StartResize(idx, 0); d != nil {
			t.Errorf("StartResize(%d) returned a drag", idx)
		}
	}
	if bus.SubscriptionCount() != 0 {
		t.Error("out-of-range StartResize installed handlers")
	}
	if screen.Cursor() != CursorDefault {
		t.Error("out-of-range StartResize took the surface")
	}
}

func TestStartResize_CancelsInFlightDrag(t *testing.T) {
	bus := event.NewBus()
	screen := NewScreen()
	c := NewController(threeColumns(), bus, WithSurface(screen))

	first := c.StartResize(0, 100)
	second := c.StartResize(1, 300)

	if first.Active() {
		t.Error("first drag should be cancelled")
	}
	if c.Active() != second {
		t.Error("controller should track the second drag")
	}
	if got := bus.HandlerCount(event.TypePointerMove); got != 1 {
		t.Errorf("pointer.move handlers = %d, want 1", got)
	}
	if got := bus.HandlerCount(event.TypePointerUp); got != 1 {
		t.Errorf("pointer.up handlers = %d, want 1", got)
	}

	bus.Publish(event.NewPointerMoveEvent(350, 0))
	if width(c, 0) != 60 {
		t.Errorf("cancelled drag still resizing: width = %d", width(c, 0))
	}
	if width(c, 1) != 170 {
		t.Errorf("second drag width = %d, want 170", width(c, 1))
	}

	bus.Publish(event.NewPointerUpEvent(350, 0))
	if second.Active() || bus.SubscriptionCount() != 0 {
		t.Error("single pointer up should end the only drag")
	}
	if screen.Cursor() != CursorDefault || !screen.TextSelection() {
		t.Error("surface not restored after both drags")
	}
}

func TestDrag_SurfaceLease(t *testing.T) {
	bus := event.NewBus()
	screen := NewScreen()
	screen.SetCursor("pointer")
	c := NewController(oneColumn(), bus, WithSurface(screen))

	c.StartResize(0, 0)
	if screen.Cursor() != CursorColResize || screen.TextSelection() {
		t.Errorf("during drag: cursor=%q text=%v", screen.Cursor(), screen.TextSelection())
	}

	bus.Publish(event.NewPointerUpEvent(0, 0))
	if screen.Cursor() != "pointer" || !screen.TextSelection() {
		t.Errorf("after drag: cursor=%q text=%v", screen.Cursor(), screen.TextSelection())
	}
}

func TestDrag_CancelAndClose(t *testing.T) {
	tests := []struct {
		name   string
		stop   func(c *Controller, d *Drag)
		reason string
	}{
		{"cancel", func(c *Controller, d *Drag) { d.Cancel() }, event.EndCancelled},
		{"close", func(c *Controller, d *Drag) { c.Close() }, event.EndClosed},
		{"release", func(c *Controller, d *Drag) {}, event.EndReleased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := event.NewBus()
			events := event.NewBus()
			var ended []event.ResizeEndedEvent
			events.Subscribe(event.TypeResizeEnded, func(e event.Event) {
				ended = append(ended, e.(event.ResizeEndedEvent))
			})

			screen := NewScreen()
			c := NewController(oneColumn(), input, WithSurface(screen), WithPublisher(events))
			d := c.StartResize(0, 0)
			input.Publish(event.NewPointerMoveEvent(30, 0))

			tt.stop(c, d)
			input.Publish(event.NewPointerUpEvent(30, 0))
			d.Cancel()
			c.Close()

			if len(ended) != 1 {
				t.Fatalf("got %d end events, want 1", len(ended))
			}
			if ended[0].Reason != tt.reason || ended[0].Width != 130 || ended[0].Field != "a" {
				t.Errorf("end event = %+v", ended[0])
			}
			if input.SubscriptionCount() != 0 {
				t.Error("handlers left installed")
			}
			if screen.Cursor() != CursorDefault {
				t.Error("surface not restored")
			}
		})
	}
}

func TestDrag_EventSequence(t *testing.T) {
	bus := event.NewBus()
	var types []string
	var resized []event.ColumnResizedEvent
	bus.SubscribeAll(func(e event.Event) {
		if e.EventType() == event.TypePointerMove || e.EventType() == event.TypePointerUp {
			return
		}
		types = append(types, e.EventType())
		if r, ok := e.(event.ColumnResizedEvent); ok {
			resized = append(resized, r)
		}
	})

	c := NewController(oneColumn(), bus, WithPublisher(bus))
	c.StartResize(0, 10)
	bus.Publish(event.NewPointerMoveEvent(20, 0))
	bus.Publish(event.NewPointerMoveEvent(40, 0))
	bus.Publish(event.NewPointerUpEvent(40, 0))

	want := []string{
		event.TypeResizeStarted,
		event.TypeColumnResized,
		event.TypeColumnResized,
		event.TypeColumnResized,
		event.TypeResizeEnded,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, types[i], want[i])
		}
	}

	if resized[0].Finished || resized[0].Column.Width != 110 || resized[0].Source != event.SourceDrag {
		t.Errorf("first move event = %+v", resized[0])
	}
	if !resized[2].Finished || resized[2].Column.Width != 130 {
		t.Errorf("final event = %+v", resized[2])
	}
}

func TestDrag_IgnoresForeignEvents(t *testing.T) {
	bus := event.NewBus()
	c := NewController(oneColumn(), bus)
	d := c.StartResize(0, 0)

	// A handler receiving the wrong payload type must not panic or resize.
	d.onMove(event.NewPointerUpEvent(500, 0))
	if width(c, 0) != 100 {
		t.Errorf("width = %d after foreign event", width(c, 0))
	}
	if d.Index() != 0 || d.StartWidth() != 100 {
		t.Errorf("Index=%d StartWidth=%d", d.Index(), d.StartWidth())
	}
}
