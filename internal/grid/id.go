package grid

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RowID identifies a row for the row's lifetime. It is either a string or an
// integer; the two variants never compare equal, so StringID("7") and IntID(7)
// are different rows. The zero value is the empty string id.
type RowID struct {
	text    string
	numeric bool
}

// StringID returns a string row identifier.
func StringID(s string) RowID {
	return RowID{text: s}
}

// IntID returns an integer row identifier.
func IntID(n int64) RowID {
	return RowID{text: strconv.FormatInt(n, 10), numeric: true}
}

// InferRowID returns an integer id when s is a canonical base-10 integer
// ("42", "-3") and a string id otherwise ("007", "r1", " 4").
func InferRowID(s string) RowID {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != s {
		return StringID(s)
	}
	return IntID(n)
}

// String returns the id's text.
func (id RowID) String() string {
	return id.text
}

// IsNumeric reports whether the id is an integer id.
func (id RowID) IsNumeric() bool {
	return id.numeric
}

// Int returns the integer value of a numeric id.
func (id RowID) Int() (int64, bool) {
	if !id.numeric {
		return 0, false
	}
	n, err := strconv.ParseInt(id.text, 10, 64)
	return n, err == nil
}

// GoString renders the id with its variant, for test failure output.
func (id RowID) GoString() string {
	if id.numeric {
		return "grid.IntID(" + id.text + ")"
	}
	return "grid.StringID(" + strconv.Quote(id.text) + ")"
}

// MarshalJSON encodes integer ids as JSON numbers and string ids as strings.
func (id RowID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

// UnmarshalJSON accepts a JSON string or integer.
func (id *RowID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return err
	}
	*id = IntID(n)
	return nil
}
