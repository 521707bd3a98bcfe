package tui

import (
	"testing"

	"github.com/Iron-Ham/datagrid/internal/grid"
)

func testColumns() []grid.Column {
	return []grid.Column{
		{Field: "name", Header: "Name", Width: 80},
		{Field: "age", Width: 56},
	}
}

func TestComputeLayout(t *testing.T) {
	l := computeLayout(testColumns(), nil, false, 8)

	if l.gutter != checkboxWidth {
		t.Errorf("gutter = %d, want %d", l.gutter, checkboxWidth)
	}
	want := []span{
		{start: 4, width: 10, border: 14},
		{start: 15, width: 7, border: 22},
	}
	if len(l.spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(l.spans), len(want))
	}
	for i, s := range want {
		if l.spans[i] != s {
			t.Errorf("span[%d] = %+v, want %+v", i, l.spans[i], s)
		}
	}
	if got := l.totalWidth(); got != 23 {
		t.Errorf("totalWidth() = %d, want 23", got)
	}
}

func TestComputeLayout_RowIDs(t *testing.T) {
	rows := []grid.Row{
		{ID: grid.IntID(1)},
		{ID: grid.StringID("abcde")},
		{ID: grid.StringID("a-very-long-row-identifier")},
	}
	l := computeLayout(testColumns(), rows, true, 8)

	if l.idWidth != maxIDWidth {
		t.Errorf("idWidth = %d, want %d", l.idWidth, maxIDWidth)
	}
	if want := checkboxWidth + maxIDWidth + 1; l.gutter != want {
		t.Errorf("gutter = %d, want %d", l.gutter, want)
	}
	if l.spans[0].start != l.gutter {
		t.Errorf("first column starts at %d, want %d", l.spans[0].start, l.gutter)
	}
}

func TestCellsFor(t *testing.T) {
	tests := []struct {
		px, perCell, want int
	}{
		{80, 8, 10},
		{50, 8, 6},
		{7, 8, 1},
		{0, 8, 1},
	}
	for _, tt := range tests {
		if got := cellsFor(tt.px, tt.perCell); got != tt.want {
			t.Errorf("cellsFor(%d, %d) = %d, want %d", tt.px, tt.perCell, got, tt.want)
		}
	}
}

func TestLayout_HitTesting(t *testing.T) {
	l := computeLayout(testColumns(), nil, false, 8)

	tests := []struct {
		name     string
		x        int
		border   int
		column   int
		gutter   bool
		checkbox bool
	}{
		{name: "checkbox", x: 1, border: -1, column: -1, gutter: true, checkbox: true},
		{name: "gutter space", x: 3, border: -1, column: -1, gutter: true},
		{name: "first cell", x: 4, border: -1, column: 0},
		{name: "last cell of first column", x: 13, border: -1, column: 0},
		{name: "first border", x: 14, border: 0, column: -1},
		{name: "second column", x: 15, border: -1, column: 1},
		{name: "second border", x: 22, border: 1, column: -1},
		{name: "past the grid", x: 40, border: -1, column: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.borderAt(tt.x); got != tt.border {
				t.Errorf("borderAt(%d) = %d, want %d", tt.x, got, tt.border)
			}
			if got := l.columnAt(tt.x); got != tt.column {
				t.Errorf("columnAt(%d) = %d, want %d", tt.x, got, tt.column)
			}
			if got := l.inGutter(tt.x); got != tt.gutter {
				t.Errorf("inGutter(%d) = %v, want %v", tt.x, got, tt.gutter)
			}
			if got := l.inCheckbox(tt.x); got != tt.checkbox {
				t.Errorf("inCheckbox(%d) = %v, want %v", tt.x, got, tt.checkbox)
			}
		})
	}
}
