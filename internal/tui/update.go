package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case datasetReloadedMsg:
		return m.applyReload(msg)

	case datasetErrorMsg:
		// A file that is briefly missing mid-save reports a warning; a file
		// that no longer parses is an error.
		level := errors.GetSeverity(msg.err)
		m.logger.Warn("dataset reload failed", "error", msg.err.Error(), "severity", level.String())
		cmd := m.setMessage("reload failed: "+msg.err.Error(), level)
		return m, cmd

	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
			m.messageLevel = errors.SeverityInfo
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.resizer.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		if d := m.resizer.Active(); d != nil {
			d.Cancel()
			return m, nil
		}
		m.rowSel.Clear(m.rows...)
		m.cellSel.Clear()

	case key.Matches(msg, m.keys.SelectAll):
		m.toggleAll()

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.rows) {
			m.rowSel.Toggle(m.rows[m.cursor].ID, m.rows...)
		}

	case key.Matches(msg, m.keys.SelectCell):
		if m.cellSelection && m.cursor < len(m.rows) {
			if cols := m.resizer.Columns(); m.colCursor < len(cols) {
				m.cellSel.SelectCell(m.rows[m.cursor].ID, cols[m.colCursor].Field)
			}
		}

	case key.Matches(msg, m.keys.Widen):
		cmd := m.nudgeWidth(m.pxPerCell)
		return m, cmd
	case key.Matches(msg, m.keys.Narrow):
		cmd := m.nudgeWidth(-m.pxPerCell)
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// toggleAll is the header checkbox: clear when every row is selected,
// otherwise select all.
func (m *Model) toggleAll() {
	if m.rowSel.IsAllSelected(m.rows) {
		m.rowSel.Clear(m.rows...)
		return
	}
	m.rowSel.SelectAll(m.rows)
}

// nudgeWidth resizes the last clicked column through the public resize call, so
// the same floor applies as for any host.
func (m *Model) nudgeWidth(delta int) tea.Cmd {
	cols := m.resizer.Columns()
	if m.colCursor >= len(cols) {
		return nil
	}
	col := cols[m.colCursor]
	target := col.Width + delta
	m.resizer.ResizeColumn(m.colCursor, target)
	if m.resizer.Columns()[m.colCursor].Width == col.Width {
		return m.setMessage(fmt.Sprintf("%s is at its minimum width", col.Title()), errors.SeverityInfo)
	}
	return nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px := msg.X * m.pxPerCell

	switch msg.Action {
	case tea.MouseActionMotion:
		m.input.Publish(event.NewPointerMoveEvent(px, msg.Y))
		return m, nil

	case tea.MouseActionRelease:
		m.input.Publish(event.NewPointerUpEvent(px, msg.Y))
		return m, nil

	case tea.MouseActionPress:
	default:
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll(3)
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	l := m.layout()
	if msg.Y == 0 {
		m.pressHeader(l, msg.X)
		return m, nil
	}

	idx := m.rowAtY(msg.Y)
	if idx < 0 {
		return m, nil
	}
	m.cursor = idx
	id := m.rows[idx].ID

	if l.inGutter(msg.X) {
		m.rowSel.Toggle(id, m.rows...)
		return m, nil
	}

	col := l.columnAt(msg.X)
	if col < 0 {
		return m, nil
	}
	m.colCursor = col
	m.pressCell(id, m.resizer.Columns()[col], msg.Ctrl || msg.Alt)
	return m, nil
}

func (m *Model) pressHeader(l layout, x int) {
	if l.inCheckbox(x) {
		m.toggleAll()
		return
	}
	if i := l.borderAt(x); i >= 0 {
		m.resizer.StartResize(i, x*m.pxPerCell)
		return
	}
	if i := l.columnAt(x); i >= 0 {
		m.colCursor = i
	}
}

func (m *Model) pressCell(id grid.RowID, col grid.Column, additive bool) {
	if !m.cellSelection {
		m.rowSel.Toggle(id, m.rows...)
		return
	}
	if additive {
		m.cellSel.ToggleCell(id, col.Field)
		return
	}
	m.cellSel.SelectCell(id, col.Field)
}

func (m *Model) scroll(delta int) {
	maxOffset := max(0, len(m.rows)-m.bodyHeight())
	m.offset = min(max(0, m.offset+delta), maxOffset)
	if m.cursor < m.offset {
		m.cursor = m.offset
	}
	if h := m.bodyHeight(); m.cursor >= m.offset+h {
		m.cursor = m.offset + h - 1
	}
}

// applyReload swaps in reloaded data. Widths the user changed survive for
// fields that still exist, and selections are pruned to what remains.
func (m Model) applyReload(msg datasetReloadedMsg) (tea.Model, tea.Cmd) {
	ds := msg.ds
	current := m.resizer.Columns()
	columns := grid.CloneColumns(ds.Columns)
	for i, c := range columns {
		if j := grid.ColumnIndex(current, c.Field); j >= 0 {
			columns[i].Width = current[j].Width
		}
	}

	m.rows = ds.Rows
	m.resizer.SetColumns(columns)
	m.rowSel.Prune(m.rows)
	m.cellSel.Prune(m.rows, m.resizer.Columns())

	m.cursor = min(m.cursor, max(0, len(m.rows)-1))
	m.colCursor = min(m.colCursor, max(0, len(columns)-1))
	m.scrollToCursor()

	m.logger.Info("dataset reloaded", "rows", len(m.rows), "columns", len(columns))
	cmd := m.setMessage(fmt.Sprintf("reloaded %d rows", len(m.rows)), errors.SeverityInfo)
	return m, cmd
}
