package script

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// Step actions.
const (
	ActionToggleRow   = "toggle_row"
	ActionSelectAll   = "select_all"
	ActionClearRows   = "clear_rows"
	ActionToggleCell  = "toggle_cell"
	ActionSelectCell  = "select_cell"
	ActionClearCells  = "clear_cells"
	ActionResize      = "resize"
	ActionDragStart   = "drag_start"
	ActionPointerMove = "pointer_move"
	ActionPointerUp   = "pointer_up"
	ActionCancelDrag  = "cancel_drag"
	ActionDeleteRows  = "delete_rows"
	ActionPrune       = "prune"
	ActionExpect      = "expect"
)

// ValidActions returns every accepted step action.
func ValidActions() []string {
	return []string{
		ActionToggleRow, ActionSelectAll, ActionClearRows,
		ActionToggleCell, ActionSelectCell, ActionClearCells,
		ActionResize, ActionDragStart, ActionPointerMove, ActionPointerUp, ActionCancelDrag,
		ActionDeleteRows, ActionPrune, ActionExpect,
	}
}

// RowRef is a row id as written in a script.
type RowRef struct {
	ID grid.RowID
}

// UnmarshalYAML keeps the scalar's type: !!int becomes an integer id and
// anything else a string id.
func (r *RowRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: row id must be a scalar", n.Line)
	}
	if n.ShortTag() == "!!int" {
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		r.ID = grid.IntID(v)
		return nil
	}
	r.ID = grid.StringID(n.Value)
	return nil
}

// MarshalYAML writes integer ids unquoted and string ids as strings.
func (r RowRef) MarshalYAML() (any, error) {
	if n, ok := r.ID.Int(); ok {
		return n, nil
	}
	return r.ID.String(), nil
}

// CellRef is a cell address as written in a script.
type CellRef struct {
	Row   RowRef `yaml:"row"`
	Field string `yaml:"field"`
}

// Address returns the cell address.
func (c CellRef) Address() grid.CellAddress {
	return grid.Cell(c.Row.ID, c.Field)
}

// Step is one scripted interaction. Which fields are read depends on Action.
type Step struct {
	Action string   `yaml:"action"`
	Row    *RowRef  `yaml:"row,omitempty"`
	Rows   []RowRef `yaml:"rows,omitempty"`
	Field  string   `yaml:"field,omitempty"`
	Column *int     `yaml:"column,omitempty"`
	Width  int      `yaml:"width,omitempty"`
	X      *int     `yaml:"x,omitempty"`
	Y      int      `yaml:"y,omitempty"`

	// Expectations, checked by the expect action. Unset fields are not
	// checked.
	SelectedRows  *[]RowRef      `yaml:"selected_rows,omitempty"`
	SelectedCells *[]CellRef     `yaml:"selected_cells,omitempty"`
	Widths        map[string]int `yaml:"widths,omitempty"`
	AllSelected   *bool          `yaml:"all_selected,omitempty"`
	Dragging      *bool          `yaml:"dragging,omitempty"`
}

// Script is a parsed interaction script.
type Script struct {
	Name    string        `yaml:"name,omitempty"`
	Mode    string        `yaml:"mode,omitempty"`
	Columns []grid.Column `yaml:"columns,omitempty"`
	Rows    []RowRef      `yaml:"rows,omitempty"`
	Steps   []Step        `yaml:"steps"`
}

// SelectionMode returns the parsed mode.
func (s *Script) SelectionMode() (grid.SelectionMode, error) {
	return grid.ParseSelectionMode(s.Mode)
}

// GridRows returns the script's rows as grid rows without cell data.
func (s *Script) GridRows() []grid.Row {
	rows := make([]grid.Row, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = grid.Row{ID: r.ID}
	}
	return rows
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("script", path).WithCause(err)
		}
		return nil, errors.Wrapf(err, "open script %s", path)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, errors.NewScriptError("script is empty", 0)
		}
		return nil, errors.NewScriptError("malformed script", 0).WithCause(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step carries the fields its action needs.
func (s *Script) Validate() error {
	if _, err := s.SelectionMode(); err != nil {
		return errors.NewScriptError("invalid mode", 0).WithCause(err)
	}

	seen := make(map[grid.RowID]struct{}, len(s.Rows))
	for _, r := range s.Rows {
		if _, dup := seen[r.ID]; dup {
			return errors.NewScriptError(fmt.Sprintf("row %q listed twice", r.ID.String()), 0).
				WithCause(errors.ErrDuplicateRowID)
		}
		seen[r.ID] = struct{}{}
	}

	if len(s.Steps) == 0 {
		return errors.NewScriptError("script has no steps", 0)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return errors.NewScriptError(err.Error(), i+1).WithAction(step.Action)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Action {
	case ActionToggleRow:
		if st.Row == nil {
			return fmt.Errorf("row is required")
		}
	case ActionToggleCell, ActionSelectCell:
		if st.Row == nil || st.Field == "" {
			return fmt.Errorf("row and field are required")
		}
	case ActionResize:
		if err := st.requireColumn(); err != nil {
			return err
		}
		if st.Width == 0 {
			return fmt.Errorf("width is required")
		}
	case ActionDragStart:
		if err := st.requireColumn(); err != nil {
			return err
		}
		if st.X == nil {
			return fmt.Errorf("x is required")
		}
	case ActionPointerMove:
		if st.X == nil {
			return fmt.Errorf("x is required")
		}
	case ActionDeleteRows:
		if len(st.Rows) == 0 {
			return fmt.Errorf("rows is required")
		}
	case ActionSelectAll, ActionClearRows, ActionClearCells, ActionPointerUp, ActionCancelDrag, ActionPrune:
	case ActionExpect:
		if st.SelectedRows == nil && st.SelectedCells == nil && st.Widths == nil &&
			st.AllSelected == nil && st.Dragging == nil {
			return fmt.Errorf("expect checks nothing")
		}
	case "":
		return fmt.Errorf("action is required")
	default:
		return fmt.Errorf("unknown action %q (valid: %s)", st.Action, strings.Join(ValidActions(), ", "))
	}
	return nil
}

func (st Step) requireColumn() error {
	if st.Column == nil && st.Field == "" {
		return fmt.Errorf("column or field is required")
	}
	if st.Column != nil && st.Field != "" {
		return fmt.Errorf("column and field are mutually exclusive")
	}
	return nil
}

// rowIDs converts refs to ids.
func rowIDs(refs []RowRef) []grid.RowID {
	ids := make([]grid.RowID, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

// containsRow reports whether refs names id.
func containsRow(refs []RowRef, id grid.RowID) bool {
	return slices.ContainsFunc(refs, func(r RowRef) bool { return r.ID == id })
}
