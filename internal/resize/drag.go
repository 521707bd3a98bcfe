package resize

import (
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// Drag is one resize interaction, from pointer down to pointer up.
type Drag struct {
	c          *Controller
	index      int
	field      string
	startX     int
	startWidth int

	moveSub string
	upSub   string
	lease   *Lease
	ended   bool
}

// Index returns the index of the column being resized.
func (d *Drag) Index() int {
	return d.index
}

// StartWidth returns the column width when the drag began.
func (d *Drag) StartWidth() int {
	return d.startWidth
}

// Active reports whether the drag is still listening for pointer input.
func (d *Drag) Active() bool {
	return !d.ended
}

// Cancel ends the drag without waiting for pointer up. Widths already
// applied are kept.
func (d *Drag) Cancel() {
	d.end(event.EndCancelled)
}

func (d *Drag) onMove(e event.Event) {
	if d.ended {
		return
	}
	move, ok := e.(event.PointerMoveEvent)
	if !ok {
		return
	}
	width := max(grid.MinWidth, d.startWidth+move.X-d.startX)
	d.c.setWidth(d.index, width, event.SourceDrag, false)
}

func (d *Drag) onUp(e event.Event) {
	d.end(event.EndReleased)
}

// end removes both pointer handlers and releases the lease. Only the first
// call has an effect.
func (d *Drag) end(reason string) {
	if d.ended {
		return
	}
	d.ended = true

	d.c.input.Unsubscribe(d.moveSub)
	d.c.input.Unsubscribe(d.upSub)
	d.lease.Release()
	if d.c.active == d {
		d.c.active = nil
	}

	width := 0
	if d.index < len(d.c.columns) {
		width = d.c.columns[d.index].Width
	}
	d.c.logger.Debug("drag ended", "index", d.index, "field", d.field, "width", width, "reason", reason)
	d.c.publish(event.NewColumnResizedEvent(d.index, d.c.columns, true, event.SourceDrag))
	d.c.publish(event.NewResizeEndedEvent(d.index, d.field, width, reason))
}
