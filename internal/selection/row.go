package selection

import (
	"slices"

	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// ChangeEvent is the row selection snapshot returned by every mutating call.
type ChangeEvent struct {
	// SelectedRows is a copy of the selected ids in insertion order.
	SelectedRows []grid.RowID
	// SelectedRowData holds the rows passed to the call whose ids are
	// selected, in the order they were passed. Empty when no rows were
	// passed.
	SelectedRowData []grid.Row
}

// Contains reports whether id is in the snapshot.
func (e ChangeEvent) Contains(id grid.RowID) bool {
	for _, s := range e.SelectedRows {
		if s == id {
			return true
		}
	}
	return false
}

// RowSelection tracks which rows are selected.
type RowSelection struct {
	mode     grid.SelectionMode
	selected *orderedSet[grid.RowID]
	opts     options
}

// NewRowSelection returns an empty selection. An invalid mode falls back to
// single selection.
func NewRowSelection(mode grid.SelectionMode, opts ...Option) *RowSelection {
	if !mode.Valid() {
		mode = grid.SingleSelection
	}
	return &RowSelection{
		mode:     mode,
		selected: newOrderedSet[grid.RowID](),
		opts:     buildOptions("selection", opts),
	}
}

// Mode returns the selection mode.
func (s *RowSelection) Mode() grid.SelectionMode {
	return s.mode
}

// IsSelected reports whether id is selected.
func (s *RowSelection) IsSelected(id grid.RowID) bool {
	return s.selected.has(id)
}

// Selected returns the selected ids in insertion order.
func (s *RowSelection) Selected() []grid.RowID {
	return s.selected.snapshot()
}

// Len returns the number of selected rows.
func (s *RowSelection) Len() int {
	return s.selected.len()
}

// Toggle flips the selection of id.
//
// In single mode, toggling the only selected row clears the selection and
// toggling any other row replaces the selection with it. In multiple mode
// only id's membership changes.
func (s *RowSelection) Toggle(id grid.RowID, allRows ...grid.Row) ChangeEvent {
	switch s.mode {
	case grid.MultipleSelection:
		if !s.selected.remove(id) {
			s.selected.add(id)
		}
	default:
		wasSole := s.selected.len() == 1 && s.selected.has(id)
		s.selected.clear()
		if !wasSole {
			s.selected.add(id)
		}
	}
	s.opts.logger.Debug("row toggled", "row", id.String(), "selected", s.selected.has(id))
	return s.emit(event.OpToggle, allRows)
}

// SelectAll selects every row in allRows. In single mode the selection is
// left unchanged.
func (s *RowSelection) SelectAll(allRows []grid.Row) ChangeEvent {
	if s.mode == grid.MultipleSelection {
		s.selected.clear()
		for _, r := range allRows {
			s.selected.add(r.ID)
		}
		s.opts.logger.Debug("all rows selected", "count", s.selected.len())
	}
	return s.emit(event.OpSelectAll, allRows)
}

// Clear deselects every row.
func (s *RowSelection) Clear(allRows ...grid.Row) ChangeEvent {
	s.selected.clear()
	s.opts.logger.Debug("row selection cleared")
	return s.emit(event.OpClear, allRows)
}

// IsAllSelected reports whether allRows is non-empty and every row in it is
// selected. It is always false in single mode.
func (s *RowSelection) IsAllSelected(allRows []grid.Row) bool {
	if s.mode != grid.MultipleSelection || len(allRows) == 0 {
		return false
	}
	for _, r := range allRows {
		if !s.selected.has(r.ID) {
			return false
		}
	}
	return true
}

// Prune deselects ids that no longer appear in allRows, such as after the
// host reloads its data.
func (s *RowSelection) Prune(allRows []grid.Row) ChangeEvent {
	present := make(map[grid.RowID]struct{}, len(allRows))
	for _, r := range allRows {
		present[r.ID] = struct{}{}
	}
	before := s.selected.len()
	s.selected.retain(func(id grid.RowID) bool {
		_, ok := present[id]
		return ok
	})
	if dropped := before - s.selected.len(); dropped > 0 {
		s.opts.logger.Debug("stale rows pruned", "dropped", dropped)
	}
	return s.emit(event.OpPrune, allRows)
}

// emit builds the snapshot for the current state and publishes it.
func (s *RowSelection) emit(op string, allRows []grid.Row) ChangeEvent {
	ev := ChangeEvent{
		SelectedRows:    s.selected.snapshot(),
		SelectedRowData: []grid.Row{},
	}
	for _, r := range allRows {
		if s.selected.has(r.ID) {
			ev.SelectedRowData = append(ev.SelectedRowData, r)
		}
	}
	if s.opts.publisher != nil {
		s.opts.publish(event.NewSelectionChangedEvent(op, s.selected.snapshot(), slices.Clone(ev.SelectedRowData)))
	}
	return ev
}
