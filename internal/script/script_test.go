package script

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

func TestParse_Valid(t *testing.T) {
	input := `name: basics
mode: multiple
columns:
  - field: name
    width: 100
rows: [r1, 2, "3"]
steps:
  - action: toggle_row
    row: 2
  - action: toggle_cell
    row: r1
    field: name
  - action: resize
    column: 0
    width: 120
  - action: expect
    selected_rows: [2]
`
	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if s.Name != "basics" || len(s.Steps) != 4 {
		t.Errorf("Name = %q, steps = %d", s.Name, len(s.Steps))
	}
	mode, err := s.SelectionMode()
	if err != nil || mode != grid.MultipleSelection {
		t.Errorf("SelectionMode() = %q, %v", mode, err)
	}

	rows := s.GridRows()
	want := []grid.RowID{grid.StringID("r1"), grid.IntID(2), grid.StringID("3")}
	for i, id := range want {
		if rows[i].ID != id {
			t.Errorf("row %d = %#v, want %#v", i, rows[i].ID, id)
		}
	}
	if s.Steps[0].Row.ID != grid.IntID(2) {
		t.Errorf("step row = %#v, want IntID(2)", s.Steps[0].Row.ID)
	}
	if s.Steps[2].Column == nil || *s.Steps[2].Column != 0 {
		t.Error("column index not decoded")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantStep int
	}{
		{"empty", "", 0},
		{"malformed", "steps: [", 0},
		{"unknown key", "steps:\n  - action: clear_rows\n    colour: red\n", 0},
		{"bad mode", "mode: many\nsteps:\n  - action: clear_rows\n", 0},
		{"duplicate rows", "rows: [a, a]\nsteps:\n  - action: clear_rows\n", 0},
		{"no steps", "mode: single\n", 0},
		{"missing action", "steps:\n  - row: a\n", 1},
		{"unknown action", "steps:\n  - action: clear_rows\n  - action: explode\n", 2},
		{"toggle without row", "steps:\n  - action: toggle_row\n", 1},
		{"cell without field", "steps:\n  - action: select_cell\n    row: a\n", 1},
		{"resize without width", "steps:\n  - action: resize\n    column: 0\n", 1},
		{"resize without column", "steps:\n  - action: resize\n    width: 90\n", 1},
		{"column and field", "steps:\n  - action: drag_start\n    column: 0\n    field: a\n    x: 1\n", 1},
		{"drag without x", "steps:\n  - action: drag_start\n    column: 0\n", 1},
		{"move without x", "steps:\n  - action: pointer_move\n", 1},
		{"delete without rows", "steps:\n  - action: delete_rows\n", 1},
		{"empty expect", "steps:\n  - action: expect\n", 1},
		{"non-scalar row", "steps:\n  - action: toggle_row\n    row: [a]\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrInvalidScript) {
				t.Errorf("error %v does not wrap ErrInvalidScript", err)
			}
			var scriptErr *errors.ScriptError
			if !errors.As(err, &scriptErr) {
				t.Fatalf("error %v is not a ScriptError", err)
			}
			if scriptErr.Step != tt.wantStep {
				t.Errorf("Step = %d, want %d", scriptErr.Step, tt.wantStep)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("/nonexistent/script.yaml")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestValidActions_AllAccepted(t *testing.T) {
	for _, action := range ValidActions() {
		st := Step{Action: action}
		err := st.validate()
		if err != nil && strings.Contains(err.Error(), "unknown action") {
			t.Errorf("action %q reported unknown", action)
		}
	}
}

func TestRowRef_MarshalYAML(t *testing.T) {
	v, err := RowRef{ID: grid.IntID(4)}.MarshalYAML()
	if err != nil || v != int64(4) {
		t.Errorf("MarshalYAML(IntID) = %#v, %v", v, err)
	}
	v, err = RowRef{ID: grid.StringID("4")}.MarshalYAML()
	if err != nil || v != "4" {
		t.Errorf("MarshalYAML(StringID) = %#v, %v", v, err)
	}
}
