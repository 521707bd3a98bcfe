package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/logging"
	"github.com/Iron-Ham/datagrid/internal/resize"
	"github.com/Iron-Ham/datagrid/internal/selection"
	"github.com/Iron-Ham/datagrid/internal/tui/styles"
)

// DefaultPixelsPerCell is used when Options.PixelsPerCell is unset.
const DefaultPixelsPerCell = 8

// Options configures a Model.
type Options struct {
	Title         string
	Dataset       *dataset.Dataset
	Mode          grid.SelectionMode
	CellSelection bool
	PixelsPerCell int
	ShowRowIDs    bool
	StatusBar     bool
	Styles        *styles.Styles
	// Bus receives selection and resize notifications. Optional.
	Bus    *event.Bus
	Logger *logging.Logger
}

// Model holds the TUI application state
type Model struct {
	// Core components
	rows    []grid.Row
	rowSel  *selection.RowSelection
	cellSel *selection.CellSelection
	resizer *resize.Controller
	screen  *resize.Screen
	input   *event.Bus
	bus     *event.Bus
	logger  *logging.Logger

	// Presentation
	title         string
	styles        *styles.Styles
	keys          KeyMap
	help          help.Model
	pxPerCell     int
	cellSelection bool
	showRowIDs    bool
	statusBar     bool

	// UI state
	width      int
	height     int
	offset     int // first visible row
	cursor       int // last clicked row
	colCursor    int // last clicked column
	message      string
	messageLevel errors.Severity
	messageSeq   int
	quitting     bool
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("tui")

	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus(event.WithLogger(logger))
	}
	st := opts.Styles
	if st == nil {
		st = styles.New(nil)
	}
	px := opts.PixelsPerCell
	if px <= 0 {
		px = DefaultPixelsPerCell
	}

	var (
		rows    []grid.Row
		columns []grid.Column
	)
	if opts.Dataset != nil {
		rows = opts.Dataset.Rows
		columns = opts.Dataset.Columns
	}

	input := event.NewBus(event.WithLogger(logger))
	screen := resize.NewScreen()
	h := help.New()

	return Model{
		rows:    rows,
		rowSel:  selection.NewRowSelection(opts.Mode, selection.WithPublisher(bus), selection.WithLogger(opts.Logger)),
		cellSel: selection.NewCellSelection(selection.WithPublisher(bus), selection.WithLogger(opts.Logger)),
		resizer: resize.NewController(columns, input,
			resize.WithSurface(screen),
			resize.WithPublisher(bus),
			resize.WithLogger(opts.Logger),
		),
		screen:        screen,
		input:         input,
		bus:           bus,
		logger:        logger,
		title:         opts.Title,
		styles:        st,
		keys:          DefaultKeyMap(),
		help:          h,
		pxPerCell:     px,
		cellSelection: opts.CellSelection,
		showRowIDs:    opts.ShowRowIDs,
		statusBar:     opts.StatusBar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Rows returns the rows currently shown.
func (m Model) Rows() []grid.Row {
	return m.rows
}

// Columns returns the current columns with their widths.
func (m Model) Columns() []grid.Column {
	return m.resizer.Columns()
}

// SelectedRows returns the selected row ids.
func (m Model) SelectedRows() []grid.RowID {
	return m.rowSel.Selected()
}

// SelectedCells returns the selected cells.
func (m Model) SelectedCells() []grid.CellAddress {
	return m.cellSel.Selected()
}

// Dragging reports whether a resize drag is in progress.
func (m Model) Dragging() bool {
	return m.resizer.Active() != nil
}

// Surface returns the cursor surface drags lease.
func (m Model) Surface() resize.Surface {
	return m.screen
}

// Close ends any active drag. The host defers it so the surface is restored
// however the program exits.
func (m Model) Close() {
	m.resizer.Close()
}

func (m Model) layout() layout {
	return computeLayout(m.resizer.Columns(), m.rows, m.showRowIDs, m.pxPerCell)
}

// bodyHeight is the number of row lines that fit on screen.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return len(m.rows)
	}
	h := m.height - headerHeight
	if m.statusBar {
		h -= statusHeight
	}
	return max(1, h)
}

// rowAtY maps a screen line to a row index, or -1.
func (m Model) rowAtY(y int) int {
	if y < headerHeight {
		return -1
	}
	idx := m.offset + y - headerHeight
	if idx >= len(m.rows) || y-headerHeight >= m.bodyHeight() {
		return -1
	}
	return idx
}

// scrollToCursor keeps the cursor row visible.
func (m *Model) scrollToCursor() {
	h := m.bodyHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = max(0, m.offset)
}

// setMessage shows msg in the status bar, styled by level, and schedules its
// removal.
func (m *Model) setMessage(msg string, level errors.Severity) tea.Cmd {
	m.messageSeq++
	m.message = msg
	m.messageLevel = level
	return clearMessageAfter(m.messageSeq)
}
