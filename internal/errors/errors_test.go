package errors

import (
	"fmt"
	"testing"
)

// -----------------------------------------------------------------------------
// DataError Tests
// -----------------------------------------------------------------------------

func TestNewDataError(t *testing.T) {
	cause := ErrDuplicateRowID
	err := NewDataError("row id repeated", cause)

	if err.message != "row id repeated" {
		t.Errorf("message = %q, want %q", err.message, "row id repeated")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
}

func TestDataError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DataError
		want string
	}{
		{
			name: "basic error",
			err:  NewDataError("bad header", nil),
			want: "data error: bad header",
		},
		{
			name: "with path",
			err:  NewDataError("bad header", nil).WithPath("people.csv"),
			want: "data error [path=people.csv]: bad header",
		},
		{
			name: "with all fields and cause",
			err:  NewDataError("row id repeated", ErrDuplicateRowID).WithPath("p.csv").WithLine(3).WithColumn("id"),
			want: "data error [path=p.csv, line=3, column=id]: row id repeated: duplicate row id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataError_Is(t *testing.T) {
	err := NewDataError("test", ErrUnsupportedFormat).WithPath("x.bin")

	if !Is(err, &DataError{}) {
		t.Error("Is(DataError{}) = false, want true")
	}
	if !Is(err, ErrUnsupportedFormat) {
		t.Error("Is(ErrUnsupportedFormat) = false, want true")
	}
	if Is(err, ErrDuplicateRowID) {
		t.Error("Is(ErrDuplicateRowID) = true, want false")
	}
}

func TestDataError_Unwrap(t *testing.T) {
	cause := ErrEmptyDataset
	err := NewDataError("test", cause)

	if unwrapped := Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

// -----------------------------------------------------------------------------
// ScriptError Tests
// -----------------------------------------------------------------------------

func TestScriptError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ScriptError
		want string
	}{
		{
			name: "no step",
			err:  NewScriptError("empty script", 0),
			want: "script error: empty script",
		},
		{
			name: "with step",
			err:  NewScriptError("missing row", 2),
			want: "script error [step=2]: missing row",
		},
		{
			name: "with step, action and cause",
			err:  NewScriptError("bad key", 4).WithAction("toggle_cell").WithCause(ErrMalformedKey),
			want: "script error [step=4, action=toggle_cell]: bad key: malformed cell key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptError_Is(t *testing.T) {
	err := NewScriptError("unknown action", 1)

	if !Is(err, ErrInvalidScript) {
		t.Error("Is(ErrInvalidScript) = false, want true")
	}
	if !Is(err, &ScriptError{}) {
		t.Error("Is(ScriptError{}) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// Semantic Error Tests
// -----------------------------------------------------------------------------

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("column", "email")

	if got, want := err.Error(), "column 'email' not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotFound) {
		t.Error("Is(ErrNotFound) = false, want true")
	}

	withCause := NewNotFoundError("sheet", "Data").WithCause(fmt.Errorf("workbook has 2 sheets"))
	if got, want := withCause.Error(), "sheet 'Data' not found: workbook has 2 sheets"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("mode is required"),
			want: "validation error: mode is required",
		},
		{
			name: "with field and value",
			err:  NewValidationError("unknown mode").WithField("mode").WithValue("many"),
			want: "validation error [field=mode, value=many]: unknown mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !Is(tt.err, ErrInvalidInput) {
				t.Error("Is(ErrInvalidInput) = false, want true")
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Classification Tests
// -----------------------------------------------------------------------------

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", New("boom"), false},
		{"data error", NewDataError("x", nil), true},
		{"wrapped validation error", Wrap(NewValidationError("x"), "loading"), true},
		{"not found", NewNotFoundError("row", "1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(nil); got != SeverityDebug {
		t.Errorf("GetSeverity(nil) = %v, want %v", got, SeverityDebug)
	}
	if got := GetSeverity(New("plain")); got != SeverityError {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityError)
	}
	if got := GetSeverity(NewValidationError("x")); got != SeverityWarning {
		t.Errorf("GetSeverity(validation) = %v, want %v", got, SeverityWarning)
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[Severity]string{
		SeverityDebug:    "debug",
		SeverityInfo:     "info",
		SeverityWarning:  "warning",
		SeverityError:    "error",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	err := Wrapf(ErrMalformedKey, "decoding %q", "zz")
	if !Is(err, ErrMalformedKey) {
		t.Error("Wrapf should preserve the wrapped sentinel")
	}
	if got, want := err.Error(), `decoding "zz": malformed cell key`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
