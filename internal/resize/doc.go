// Package resize owns column widths and the drag-to-resize protocol.
//
// [Controller.ResizeColumn] sets a width directly and ignores widths at or
// below [grid.MinWidth]. [Controller.StartResize] begins a [Drag]: it
// subscribes to "pointer.move" and "pointer.up" on the controller's input
// source, takes a [Lease] on the [Surface] (resize cursor, no text
// selection), and on every move sets the width to
// max(MinWidth, startWidth + x - startX). A pointer up anywhere ends the
// drag, removes both handlers, and releases the lease.
//
// At most one drag is active. Starting a drag cancels the one in flight, and
// [Controller.Close] ends any active drag so a host can defer it to release
// the surface on every exit path.
package resize
