package selection

import (
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// CellChangeEvent is the cell selection snapshot returned by every mutating
// call.
type CellChangeEvent struct {
	// SelectedCells holds the encoded key of every selected cell.
	SelectedCells map[string]struct{}
	// Positions holds the selected cells decoded from SelectedCells, in
	// insertion order.
	Positions []grid.CellAddress
}

// CellSelection tracks which cells are selected. It is always multi-select;
// SelectCell gives exclusive single-cell selection.
type CellSelection struct {
	selected *orderedSet[grid.CellAddress]
	opts     options
}

// NewCellSelection returns an empty cell selection.
func NewCellSelection(opts ...Option) *CellSelection {
	return &CellSelection{
		selected: newOrderedSet[grid.CellAddress](),
		opts:     buildOptions("cells", opts),
	}
}

// IsSelected reports whether the cell at (row, field) is selected.
func (s *CellSelection) IsSelected(row grid.RowID, field string) bool {
	return s.selected.has(grid.Cell(row, field))
}

// Selected returns the selected cells in insertion order.
func (s *CellSelection) Selected() []grid.CellAddress {
	return s.selected.snapshot()
}

// Len returns the number of selected cells.
func (s *CellSelection) Len() int {
	return s.selected.len()
}

// ToggleCell flips the selection of one cell, keeping every other cell.
func (s *CellSelection) ToggleCell(row grid.RowID, field string) CellChangeEvent {
	addr := grid.Cell(row, field)
	if !s.selected.remove(addr) {
		s.selected.add(addr)
	}
	s.opts.logger.Debug("cell toggled", "cell", addr.String(), "selected", s.selected.has(addr))
	return s.emit(event.OpToggle)
}

// SelectCell makes the cell at (row, field) the only selected cell.
func (s *CellSelection) SelectCell(row grid.RowID, field string) CellChangeEvent {
	addr := grid.Cell(row, field)
	s.selected.clear()
	s.selected.add(addr)
	s.opts.logger.Debug("cell selected", "cell", addr.String())
	return s.emit(event.OpSelect)
}

// Clear deselects every cell.
func (s *CellSelection) Clear() CellChangeEvent {
	s.selected.clear()
	s.opts.logger.Debug("cell selection cleared")
	return s.emit(event.OpClear)
}

// Prune deselects cells whose row is not in rows or whose field is not in
// columns.
func (s *CellSelection) Prune(rows []grid.Row, columns []grid.Column) CellChangeEvent {
	rowSet := make(map[grid.RowID]struct{}, len(rows))
	for _, r := range rows {
		rowSet[r.ID] = struct{}{}
	}
	fieldSet := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		fieldSet[c.Field] = struct{}{}
	}

	before := s.selected.len()
	s.selected.retain(func(a grid.CellAddress) bool {
		_, rowOK := rowSet[a.Row]
		_, fieldOK := fieldSet[a.Field]
		return rowOK && fieldOK
	})
	if dropped := before - s.selected.len(); dropped > 0 {
		s.opts.logger.Debug("stale cells pruned", "dropped", dropped)
	}
	return s.emit(event.OpPrune)
}

// emit builds the snapshot for the current state and publishes it. Positions
// are decoded from the encoded keys.
func (s *CellSelection) emit(op string) CellChangeEvent {
	items := s.selected.snapshot()
	ev := CellChangeEvent{
		SelectedCells: make(map[string]struct{}, len(items)),
		Positions:     make([]grid.CellAddress, 0, len(items)),
	}
	for _, addr := range items {
		key := addr.Key()
		ev.SelectedCells[key] = struct{}{}
		pos, err := grid.ParseCellKey(key)
		if err != nil {
			s.opts.logger.Error("cell key did not decode", "key", key, "error", err)
			pos = addr
		}
		ev.Positions = append(ev.Positions, pos)
	}
	if s.opts.publisher != nil {
		s.opts.publish(event.NewCellSelectionChangedEvent(op, s.selected.snapshot()))
	}
	return ev
}
