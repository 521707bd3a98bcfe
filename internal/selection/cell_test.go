package selection

import (
	"testing"

	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

func TestCellSelection_ToggleRoundTrip(t *testing.T) {
	s := NewCellSelection()
	ev := s.ToggleCell(grid.StringID("r1"), "name")

	if len(ev.Positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(ev.Positions))
	}
	want := grid.Cell(grid.StringID("r1"), "name")
	if ev.Positions[0] != want {
		t.Errorf("Positions[0] = %#v, want %#v", ev.Positions[0], want)
	}
	if _, ok := ev.SelectedCells[want.Key()]; !ok || len(ev.SelectedCells) != 1 {
		t.Errorf("SelectedCells = %v", ev.SelectedCells)
	}
}

func TestCellSelection_DecodingIsLossless(t *testing.T) {
	s := NewCellSelection()
	s.ToggleCell(grid.IntID(5), "qty")
	ev := s.ToggleCell(grid.StringID("a-b"), "c-d")

	want := []grid.CellAddress{
		grid.Cell(grid.IntID(5), "qty"),
		grid.Cell(grid.StringID("a-b"), "c-d"),
	}
	if len(ev.Positions) != len(want) {
		t.Fatalf("Positions = %v", ev.Positions)
	}
	for i := range want {
		if ev.Positions[i] != want[i] {
			t.Errorf("Positions[%d] = %#v, want %#v", i, ev.Positions[i], want[i])
		}
	}
	if !ev.Positions[0].Row.IsNumeric() {
		t.Error("numeric row id decoded as string")
	}
}

func TestCellSelection_ToggleKeepsOthers(t *testing.T) {
	s := NewCellSelection()
	s.ToggleCell(grid.IntID(1), "a")
	s.ToggleCell(grid.IntID(1), "b")
	s.ToggleCell(grid.IntID(2), "a")

	ev := s.ToggleCell(grid.IntID(1), "b")
	if len(ev.Positions) != 2 {
		t.Fatalf("expected 2 cells left, got %v", ev.Positions)
	}
	if s.IsSelected(grid.IntID(1), "b") {
		t.Error("toggled-off cell still selected")
	}
	if !s.IsSelected(grid.IntID(1), "a") || !s.IsSelected(grid.IntID(2), "a") {
		t.Error("ToggleCell dropped an unrelated cell")
	}
}

func TestCellSelection_SelectCellIsExclusive(t *testing.T) {
	s := NewCellSelection()
	s.ToggleCell(grid.IntID(1), "a")
	s.ToggleCell(grid.IntID(2), "b")
	s.ToggleCell(grid.IntID(3), "c")

	ev := s.SelectCell(grid.IntID(2), "b")
	if s.Len() != 1 || len(ev.Positions) != 1 {
		t.Fatalf("SelectCell left %d cells", s.Len())
	}
	if ev.Positions[0] != grid.Cell(grid.IntID(2), "b") {
		t.Errorf("Positions[0] = %v", ev.Positions[0])
	}
	if s.IsSelected(grid.IntID(1), "a") || s.IsSelected(grid.IntID(3), "c") {
		t.Error("SelectCell kept earlier cells")
	}
}

func TestCellSelection_Clear(t *testing.T) {
	s := NewCellSelection()
	s.ToggleCell(grid.IntID(1), "a")
	ev := s.Clear()
	if len(ev.Positions) != 0 || len(ev.SelectedCells) != 0 || s.Len() != 0 {
		t.Errorf("Clear left %+v", ev)
	}
	if ev.Positions == nil || ev.SelectedCells == nil {
		t.Error("empty snapshot fields should be non-nil")
	}
}

func TestCellSelection_Prune(t *testing.T) {
	s := NewCellSelection()
	s.ToggleCell(grid.IntID(1), "name")
	s.ToggleCell(grid.IntID(1), "dropped")
	s.ToggleCell(grid.IntID(2), "name")

	rows := []grid.Row{{ID: grid.IntID(1)}}
	cols := []grid.Column{{Field: "name", Width: 100}}
	ev := s.Prune(rows, cols)

	if len(ev.Positions) != 1 || ev.Positions[0] != grid.Cell(grid.IntID(1), "name") {
		t.Errorf("Prune left %v", ev.Positions)
	}
}

func TestCellSelection_Publishes(t *testing.T) {
	bus := event.NewBus()
	var got []event.CellSelectionChangedEvent
	bus.Subscribe(event.TypeCellSelectionChanged, func(e event.Event) {
		got = append(got, e.(event.CellSelectionChangedEvent))
	})

	s := NewCellSelection(WithPublisher(bus))
	s.ToggleCell(grid.StringID("r1"), "name")
	s.SelectCell(grid.IntID(4), "age")
	s.Clear()

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[1].Operation != event.OpSelect || len(got[1].Positions) != 1 {
		t.Errorf("select event = %+v", got[1])
	}
	if got[1].SelectedCells[0] != grid.Cell(grid.IntID(4), "age").Key() {
		t.Errorf("SelectedCells = %v", got[1].SelectedCells)
	}
	if len(got[2].Positions) != 0 {
		t.Errorf("clear event = %+v", got[2])
	}
}
