package grid

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// MinWidth is the smallest usable column width.
const MinWidth = 50

// Column describes one grid column. Width is the only attribute that changes
// during interaction.
type Column struct {
	Field  string `json:"field" yaml:"field"`
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	Width  int    `json:"width" yaml:"width"`
}

// Title returns the header text, falling back to the field name.
func (c Column) Title() string {
	if c.Header != "" {
		return c.Header
	}
	return c.Field
}

// WithWidth returns a copy of the column with a different width.
func (c Column) WithWidth(width int) Column {
	c.Width = width
	return c
}

// CloneColumns returns a copy of cols that shares no backing array.
func CloneColumns(cols []Column) []Column {
	if cols == nil {
		return nil
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out
}

// ColumnIndex returns the index of the column with the given field, or -1.
func ColumnIndex(cols []Column, field string) int {
	for i, c := range cols {
		if c.Field == field {
			return i
		}
	}
	return -1
}

// Row is a host row: its identifier plus display text keyed by column field.
type Row struct {
	ID    RowID             `json:"id"`
	Cells map[string]string `json:"cells,omitempty"`
}

// Value returns the cell text for field, or "" when the row has none.
func (r Row) Value(field string) string {
	return r.Cells[field]
}

// RowIDs returns the identifiers of rows in order.
func RowIDs(rows []Row) []RowID {
	ids := make([]RowID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

// FindRow returns the row with the given id.
func FindRow(rows []Row, id RowID) (Row, bool) {
	for _, r := range rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// SelectionMode controls how many rows may be selected at once.
type SelectionMode string

const (
	// SingleSelection allows at most one selected row.
	SingleSelection SelectionMode = "single"
	// MultipleSelection allows any number of selected rows.
	MultipleSelection SelectionMode = "multiple"
)

// ValidSelectionModes returns the accepted selection mode strings.
func ValidSelectionModes() []string {
	return []string{string(SingleSelection), string(MultipleSelection)}
}

// Valid reports whether m is a known mode.
func (m SelectionMode) Valid() bool {
	return m == SingleSelection || m == MultipleSelection
}

// ParseSelectionMode converts a user-supplied string to a SelectionMode.
// Matching is case-insensitive; an empty string yields SingleSelection.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SingleSelection):
		return SingleSelection, nil
	case string(MultipleSelection):
		return MultipleSelection, nil
	default:
		return "", errors.NewValidationError(
			fmt.Sprintf("selection mode must be one of %s", strings.Join(ValidSelectionModes(), ", ")),
		).WithField("selection_mode").WithValue(s)
	}
}
