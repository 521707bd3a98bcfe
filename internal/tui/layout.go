package tui

import "github.com/Iron-Ham/datagrid/internal/grid"

// Layout constants
const (
	checkboxWidth = 4  // "[x] "
	maxIDWidth    = 12 // row id column cap
	headerHeight  = 2  // header line + rule
	statusHeight  = 2  // status line + help line
)

// span is one column's horizontal extent in terminal cells.
type span struct {
	start  int
	width  int
	border int // x of the border cell right of the column
}

// layout maps grid columns to terminal cells.
type layout struct {
	idWidth int
	gutter  int
	spans   []span
}

// cellsFor converts a pixel width to terminal cells. Every column keeps at
// least one cell.
func cellsFor(px, pxPerCell int) int {
	return max(1, px/pxPerCell)
}

func computeLayout(columns []grid.Column, rows []grid.Row, showIDs bool, pxPerCell int) layout {
	l := layout{gutter: checkboxWidth}
	if showIDs {
		l.idWidth = len("id")
		for _, r := range rows {
			l.idWidth = max(l.idWidth, len(r.ID.String()))
		}
		l.idWidth = min(l.idWidth, maxIDWidth)
		l.gutter += l.idWidth + 1
	}

	x := l.gutter
	l.spans = make([]span, len(columns))
	for i, c := range columns {
		w := cellsFor(c.Width, pxPerCell)
		l.spans[i] = span{start: x, width: w, border: x + w}
		x += w + 1
	}
	return l
}

// totalWidth is the width of a full grid line.
func (l layout) totalWidth() int {
	if len(l.spans) == 0 {
		return l.gutter
	}
	return l.spans[len(l.spans)-1].border + 1
}

// borderAt returns the column whose right border is at x, or -1.
func (l layout) borderAt(x int) int {
	for i, s := range l.spans {
		if s.border == x {
			return i
		}
	}
	return -1
}

// columnAt returns the column whose cells contain x, or -1.
func (l layout) columnAt(x int) int {
	for i, s := range l.spans {
		if x >= s.start && x < s.border {
			return i
		}
	}
	return -1
}

// inGutter reports whether x falls in the checkbox or id gutter.
func (l layout) inGutter(x int) bool {
	return x >= 0 && x < l.gutter
}

// inCheckbox reports whether x falls on the checkbox itself.
func (l layout) inCheckbox(x int) bool {
	return x >= 0 && x < checkboxWidth-1
}
