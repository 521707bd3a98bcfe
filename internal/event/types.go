// Package event defines the notifications exchanged between the grid
// controllers, the input layer, and the host.
package event

import (
	"time"

	"github.com/Iron-Ham/datagrid/internal/grid"
)

// Event is the interface that all events must implement.
// It provides a common way to identify and timestamp events.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "selection.changed", "pointer.up")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeSelectionChanged     = "selection.changed"
	TypeCellSelectionChanged = "cells.changed"
	TypeResizeStarted        = "resize.started"
	TypeColumnResized        = "column.resized"
	TypeResizeEnded          = "resize.ended"
	TypePointerMove          = "pointer.move"
	TypePointerUp            = "pointer.up"
	TypeDatasetReloaded      = "dataset.reloaded"
	TypeDatasetError         = "dataset.error"
)

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Selection Events
// -----------------------------------------------------------------------------

// Row selection operations reported in SelectionChangedEvent.Operation.
const (
	OpToggle    = "toggle"
	OpSelectAll = "select_all"
	OpClear     = "clear"
	OpSelect    = "select"
	OpPrune     = "prune"
)

// SelectionChangedEvent is emitted after every row selection operation with
// a snapshot of the selected set. SelectedRowData holds the full rows for the
// selected ids, in the order of the row list passed to the operation; it is
// empty when the operation was not given rows.
type SelectionChangedEvent struct {
	baseEvent
	Operation       string       `json:"operation"`
	SelectedRows    []grid.RowID `json:"selectedRows"`
	SelectedRowData []grid.Row   `json:"selectedRowData"`
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(op string, ids []grid.RowID, rows []grid.Row) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent:       newBaseEvent(TypeSelectionChanged),
		Operation:       op,
		SelectedRows:    ids,
		SelectedRowData: rows,
	}
}

// CellSelectionChangedEvent is emitted after every cell selection operation.
// SelectedCells holds encoded cell keys; Positions holds the same cells as
// structured addresses, index for index.
type CellSelectionChangedEvent struct {
	baseEvent
	Operation     string             `json:"operation"`
	SelectedCells []string           `json:"selectedCells"`
	Positions     []grid.CellAddress `json:"positions"`
}

// NewCellSelectionChangedEvent creates a CellSelectionChangedEvent.
func NewCellSelectionChangedEvent(op string, cells []grid.CellAddress) CellSelectionChangedEvent {
	keys := make([]string, len(cells))
	for i, c := range cells {
		keys[i] = c.Key()
	}
	return CellSelectionChangedEvent{
		baseEvent:     newBaseEvent(TypeCellSelectionChanged),
		Operation:     op,
		SelectedCells: keys,
		Positions:     cells,
	}
}

// -----------------------------------------------------------------------------
// Resize Events
// -----------------------------------------------------------------------------

// Sources reported in ColumnResizedEvent.Source.
const (
	SourceAPI  = "api"
	SourceDrag = "drag"
)

// Reasons reported in ResizeEndedEvent.Reason.
const (
	EndReleased  = "released"
	EndCancelled = "cancelled"
	EndClosed    = "closed"
)

// ResizeStartedEvent is emitted when a drag begins on a column border.
type ResizeStartedEvent struct {
	baseEvent
	Index      int    `json:"index"`
	Field      string `json:"field"`
	StartX     int    `json:"startX"`
	StartWidth int    `json:"startWidth"`
}

// NewResizeStartedEvent creates a ResizeStartedEvent.
func NewResizeStartedEvent(index int, field string, startX, startWidth int) ResizeStartedEvent {
	return ResizeStartedEvent{
		baseEvent:  newBaseEvent(TypeResizeStarted),
		Index:      index,
		Field:      field,
		StartX:     startX,
		StartWidth: startWidth,
	}
}

// ColumnResizedEvent is emitted whenever a column width changes.
// Columns is a copy of the full column list after the change.
type ColumnResizedEvent struct {
	baseEvent
	Index    int           `json:"index"`
	Column   grid.Column   `json:"column"`
	Columns  []grid.Column `json:"columns"`
	Finished bool          `json:"finished"`
	Source   string        `json:"source"`
}

// NewColumnResizedEvent creates a ColumnResizedEvent.
func NewColumnResizedEvent(index int, columns []grid.Column, finished bool, source string) ColumnResizedEvent {
	cols := grid.CloneColumns(columns)
	var col grid.Column
	if index >= 0 && index < len(cols) {
		col = cols[index]
	}
	return ColumnResizedEvent{
		baseEvent: newBaseEvent(TypeColumnResized),
		Index:     index,
		Column:    col,
		Columns:   cols,
		Finished:  finished,
		Source:    source,
	}
}

// ResizeEndedEvent is emitted once per drag when it stops listening.
type ResizeEndedEvent struct {
	baseEvent
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Width  int    `json:"width"`
	Reason string `json:"reason"`
}

// NewResizeEndedEvent creates a ResizeEndedEvent.
func NewResizeEndedEvent(index int, field string, width int, reason string) ResizeEndedEvent {
	return ResizeEndedEvent{
		baseEvent: newBaseEvent(TypeResizeEnded),
		Index:     index,
		Field:     field,
		Width:     width,
		Reason:    reason,
	}
}

// -----------------------------------------------------------------------------
// Pointer Events
// -----------------------------------------------------------------------------

// PointerMoveEvent reports a global pointer movement. X and Y are in
// logical pixels.
type PointerMoveEvent struct {
	baseEvent
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointerMoveEvent creates a PointerMoveEvent.
func NewPointerMoveEvent(x, y int) PointerMoveEvent {
	return PointerMoveEvent{baseEvent: newBaseEvent(TypePointerMove), X: x, Y: y}
}

// PointerUpEvent reports a global pointer release.
type PointerUpEvent struct {
	baseEvent
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointerUpEvent creates a PointerUpEvent.
func NewPointerUpEvent(x, y int) PointerUpEvent {
	return PointerUpEvent{baseEvent: newBaseEvent(TypePointerUp), X: x, Y: y}
}

// -----------------------------------------------------------------------------
// Dataset Events
// -----------------------------------------------------------------------------

// DatasetReloadedEvent is emitted after a watched dataset file was reloaded.
type DatasetReloadedEvent struct {
	baseEvent
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// NewDatasetReloadedEvent creates a DatasetReloadedEvent.
func NewDatasetReloadedEvent(path string, rows, columns int) DatasetReloadedEvent {
	return DatasetReloadedEvent{
		baseEvent: newBaseEvent(TypeDatasetReloaded),
		Path:      path,
		Rows:      rows,
		Columns:   columns,
	}
}

// DatasetErrorEvent is emitted when reloading a watched dataset fails.
type DatasetErrorEvent struct {
	baseEvent
	Path  string `json:"path"`
	Error string `json:"error"`
}

// NewDatasetErrorEvent creates a DatasetErrorEvent.
func NewDatasetErrorEvent(path string, err error) DatasetErrorEvent {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return DatasetErrorEvent{
		baseEvent: newBaseEvent(TypeDatasetError),
		Path:      path,
		Error:     msg,
	}
}
