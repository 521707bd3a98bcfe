package script

import (
	"context"
	"fmt"
	"slices"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/logging"
	"github.com/Iron-Ham/datagrid/internal/resize"
	"github.com/Iron-Ham/datagrid/internal/selection"
)

// Option configures a Runner.
type Option func(*runnerConfig)

type runnerConfig struct {
	rows     []grid.Row
	columns  []grid.Column
	haveData bool
	handler  event.Handler
	logger   *logging.Logger
}

// WithData replaces the script's own rows and columns, typically with a
// loaded dataset.
func WithData(rows []grid.Row, columns []grid.Column) Option {
	return func(c *runnerConfig) {
		c.rows = rows
		c.columns = columns
		c.haveData = true
	}
}

// WithEventHandler receives every event published during the run, pointer
// input included, in publication order.
func WithEventHandler(h event.Handler) Option {
	return func(c *runnerConfig) { c.handler = h }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *runnerConfig) { c.logger = l }
}

// Result summarizes a completed run.
type Result struct {
	Steps         int
	Events        int
	SelectedRows  []grid.RowID
	SelectedCells []grid.CellAddress
	Columns       []grid.Column
}

// Runner drives the grid controllers through a script.
type Runner struct {
	script  *Script
	rows    []grid.Row
	bus     *event.Bus
	input   *event.Bus
	rowSel  *selection.RowSelection
	cellSel *selection.CellSelection
	resizer *resize.Controller
	handler event.Handler
	logger  *logging.Logger
	events  int
}

// NewRunner prepares a run of s.
func NewRunner(s *Script, opts ...Option) (*Runner, error) {
	if s == nil {
		return nil, errors.NewScriptError("script is nil", 0)
	}
	cfg := runnerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}
	if !cfg.haveData {
		cfg.rows = s.GridRows()
		cfg.columns = s.Columns
	}

	mode, err := s.SelectionMode()
	if err != nil {
		return nil, errors.NewScriptError("invalid mode", 0).WithCause(err)
	}

	logger := cfg.logger.WithComponent("script")
	r := &Runner{
		script:  s,
		rows:    slices.Clone(cfg.rows),
		bus:     event.NewBus(event.WithLogger(logger)),
		input:   event.NewBus(event.WithLogger(logger)),
		handler: cfg.handler,
		logger:  logger,
	}
	r.bus.SubscribeAll(r.record)
	r.rowSel = selection.NewRowSelection(mode,
		selection.WithPublisher(r.bus), selection.WithLogger(cfg.logger))
	r.cellSel = selection.NewCellSelection(
		selection.WithPublisher(r.bus), selection.WithLogger(cfg.logger))
	r.resizer = resize.NewController(cfg.columns, r.input,
		resize.WithPublisher(r.bus), resize.WithLogger(cfg.logger))
	return r, nil
}

func (r *Runner) record(e event.Event) {
	r.events++
	if r.handler != nil {
		r.handler(e)
	}
}

// Run executes every step in order. It stops at the first failed step or
// when ctx is done. Any drag still active at the end is closed.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	defer r.resizer.Close()

	name := r.script.Name
	if name == "" {
		name = "unnamed"
	}
	r.logger.Info("replay started", "script", name, "steps", len(r.script.Steps), "rows", len(r.rows))

	for i, step := range r.script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.NewScriptError("replay interrupted", i+1).WithAction(step.Action).WithCause(err)
		}
		if err := r.apply(step); err != nil {
			r.logger.Warn("step failed", "step", i+1, "action", step.Action, "error", err.Error())
			return nil, errors.NewScriptError("step failed", i+1).WithAction(step.Action).WithCause(err)
		}
	}

	r.logger.Info("replay finished", "script", name, "events", r.events)
	return &Result{
		Steps:         len(r.script.Steps),
		Events:        r.events,
		SelectedRows:  r.rowSel.Selected(),
		SelectedCells: r.cellSel.Selected(),
		Columns:       r.resizer.Columns(),
	}, nil
}

func (r *Runner) apply(st Step) error {
	switch st.Action {
	case ActionToggleRow:
		r.rowSel.Toggle(st.Row.ID, r.rows...)
	case ActionSelectAll:
		r.rowSel.SelectAll(r.rows)
	case ActionClearRows:
		r.rowSel.Clear(r.rows...)
	case ActionToggleCell:
		r.cellSel.ToggleCell(st.Row.ID, st.Field)
	case ActionSelectCell:
		r.cellSel.SelectCell(st.Row.ID, st.Field)
	case ActionClearCells:
		r.cellSel.Clear()
	case ActionResize:
		index, err := r.columnIndex(st)
		if err != nil {
			return err
		}
		r.resizer.ResizeColumn(index, st.Width)
	case ActionDragStart:
		index, err := r.columnIndex(st)
		if err != nil {
			return err
		}
		r.resizer.StartResize(index, *st.X)
	case ActionPointerMove:
		r.pointer(event.NewPointerMoveEvent(*st.X, st.Y))
	case ActionPointerUp:
		x := 0
		if st.X != nil {
			x = *st.X
		}
		r.pointer(event.NewPointerUpEvent(x, st.Y))
	case ActionCancelDrag:
		if d := r.resizer.Active(); d != nil {
			d.Cancel()
		}
	case ActionDeleteRows:
		r.rows = slices.DeleteFunc(r.rows, func(row grid.Row) bool {
			return containsRow(st.Rows, row.ID)
		})
	case ActionPrune:
		r.rowSel.Prune(r.rows)
		r.cellSel.Prune(r.rows, r.resizer.Columns())
	case ActionExpect:
		return r.expect(st)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// pointer reports input to the event handler, then delivers it to the
// controllers the way a host's input layer would.
func (r *Runner) pointer(e event.Event) {
	r.record(e)
	r.input.Publish(e)
}

// columnIndex resolves a step's column. Numeric indexes pass through
// unchecked so out-of-range calls reach the controller; unknown field names
// are a script error.
func (r *Runner) columnIndex(st Step) (int, error) {
	if st.Column != nil {
		return *st.Column, nil
	}
	index := grid.ColumnIndex(r.resizer.Columns(), st.Field)
	if index < 0 {
		return 0, errors.NewNotFoundError("column", st.Field)
	}
	return index, nil
}

func (r *Runner) expect(st Step) error {
	var failures []error

	if st.SelectedRows != nil {
		want := rowIDs(*st.SelectedRows)
		if got := r.rowSel.Selected(); !slices.Equal(got, want) {
			failures = append(failures, fmt.Errorf("selected rows = %v, want %v", got, want))
		}
	}

	if st.SelectedCells != nil {
		want := make([]grid.CellAddress, len(*st.SelectedCells))
		for i, c := range *st.SelectedCells {
			want[i] = c.Address()
		}
		if got := r.cellSel.Selected(); !slices.Equal(got, want) {
			failures = append(failures, fmt.Errorf("selected cells = %v, want %v", got, want))
		}
	}

	if st.Widths != nil {
		columns := r.resizer.Columns()
		for _, field := range sortedKeys(st.Widths) {
			want := st.Widths[field]
			index := grid.ColumnIndex(columns, field)
			if index < 0 {
				failures = append(failures, errors.NewNotFoundError("column", field))
				continue
			}
			if got := columns[index].Width; got != want {
				failures = append(failures, fmt.Errorf("width of %s = %d, want %d", field, got, want))
			}
		}
	}

	if st.AllSelected != nil {
		if got := r.rowSel.IsAllSelected(r.rows); got != *st.AllSelected {
			failures = append(failures, fmt.Errorf("all selected = %v, want %v", got, *st.AllSelected))
		}
	}

	if st.Dragging != nil {
		if got := r.resizer.Active() != nil; got != *st.Dragging {
			failures = append(failures, fmt.Errorf("dragging = %v, want %v", got, *st.Dragging))
		}
	}

	return errors.Join(failures...)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
