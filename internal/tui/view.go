package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/resize"
	"github.com/Iron-Ham/datagrid/internal/util"
)

// Checkbox glyphs.
const (
	boxChecked   = "[x]"
	boxUnchecked = "[ ]"
	boxPartial   = "[-]"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	l := m.layout()
	columns := m.resizer.Columns()
	dragging := m.resizingColumn()

	lines := make([]string, 0, headerHeight+m.bodyHeight()+statusHeight)
	lines = append(lines, m.renderHeader(l, columns, dragging))
	lines = append(lines, m.renderRule(l, dragging))

	if len(m.rows) == 0 {
		lines = append(lines, m.styles.Muted.Render(util.PadRight("no rows", l.totalWidth())))
	}
	end := min(len(m.rows), m.offset+m.bodyHeight())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(l, columns, i))
	}

	if m.statusBar {
		lines = append(lines, m.renderStatus(columns, dragging))
		lines = append(lines, m.help.View(m.keys))
	}

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = util.Truncate(line, m.width)
		}
	}
	return strings.Join(lines, "\n")
}

// resizingColumn is the column drawn in the resize state, or -1. It follows
// the leased surface, so the highlight clears as soon as the lease is
// released.
func (m Model) resizingColumn() int {
	d := m.resizer.Active()
	if d == nil || m.screen.Cursor() != resize.CursorColResize {
		return -1
	}
	return d.Index()
}

func (m Model) renderHeader(l layout, columns []grid.Column, dragging int) string {
	var b strings.Builder

	box := strings.Repeat(" ", checkboxWidth-1)
	if m.rowSel.Mode() == grid.MultipleSelection {
		switch {
		case m.rowSel.IsAllSelected(m.rows):
			box = boxChecked
		case m.rowSel.Len() > 0:
			box = boxPartial
		default:
			box = boxUnchecked
		}
	}
	b.WriteString(m.styles.Checkbox.Render(box))
	b.WriteString(" ")

	if l.idWidth > 0 {
		b.WriteString(m.styles.RowID.Render(util.Fit("id", l.idWidth)))
		b.WriteString(" ")
	}

	for i, c := range columns {
		style := m.styles.Header
		switch {
		case i == dragging:
			style = m.styles.HeaderResizing
		case i == m.colCursor:
			style = style.Underline(true)
		}
		b.WriteString(style.Render(util.Fit(c.Title(), l.spans[i].width)))
		b.WriteString(m.border(i == dragging))
	}
	return b.String()
}

func (m Model) border(active bool) string {
	if active {
		return m.styles.BorderResizing.Render("│")
	}
	return m.styles.Border.Render("│")
}

func (m Model) renderRule(l layout, dragging int) string {
	var b strings.Builder
	b.WriteString(m.styles.Rule.Render(strings.Repeat("─", l.gutter)))
	for i, s := range l.spans {
		b.WriteString(m.styles.Rule.Render(strings.Repeat("─", s.width)))
		if i == dragging {
			b.WriteString(m.styles.BorderResizing.Render("┼"))
		} else {
			b.WriteString(m.styles.Rule.Render("┼"))
		}
	}
	return b.String()
}

func (m Model) renderRow(l layout, columns []grid.Column, idx int) string {
	row := m.rows[idx]
	selected := m.rowSel.IsSelected(row.ID)

	base := m.styles.Cell
	switch {
	case selected:
		base = m.styles.RowSelected
	case idx == m.cursor:
		base = m.styles.Cursor
	}

	var b strings.Builder
	box := boxUnchecked
	if selected {
		box = boxChecked
	}
	b.WriteString(m.styles.Checkbox.Render(box))
	b.WriteString(" ")

	if l.idWidth > 0 {
		b.WriteString(m.styles.RowID.Render(util.Fit(row.ID.String(), l.idWidth)))
		b.WriteString(" ")
	}

	for i, c := range columns {
		style := base
		if m.cellSel.IsSelected(row.ID, c.Field) {
			style = m.styles.CellSelected
		}
		text := util.SingleLine(row.Value(c.Field))
		b.WriteString(style.Render(util.Fit(text, l.spans[i].width)))
		b.WriteString(m.border(false))
	}
	return b.String()
}

func (m Model) renderStatus(columns []grid.Column, dragging int) string {
	parts := []string{
		m.styles.StatusKey.Render(fmt.Sprintf("%d/%d", m.rowSel.Len(), len(m.rows))) +
			m.styles.StatusBar.Render(" rows selected"),
	}
	if m.cellSelection {
		parts = append(parts, m.styles.StatusBar.Render(fmt.Sprintf("%d cells", m.cellSel.Len())))
	}
	parts = append(parts, m.styles.StatusBar.Render(string(m.rowSel.Mode())))

	if dragging >= 0 && dragging < len(columns) {
		c := columns[dragging]
		parts = append(parts, m.styles.HeaderResizing.Render(fmt.Sprintf("resizing %s %dpx", c.Title(), c.Width)))
	}
	if m.message != "" {
		style := m.styles.Message
		switch {
		case m.messageLevel >= errors.SeverityError:
			style = m.styles.Error
		case m.messageLevel == errors.SeverityWarning:
			style = m.styles.Warning
		}
		parts = append(parts, style.Render(m.message))
	}
	if m.title != "" {
		parts = append(parts, m.styles.Muted.Render(m.title))
	}

	sep := m.styles.StatusBar.Render(" · ")
	line := strings.Join(parts, sep)
	if gap := m.width - lipgloss.Width(line); gap > 0 {
		line += m.styles.StatusBar.Render(strings.Repeat(" ", gap))
	}
	return line
}
