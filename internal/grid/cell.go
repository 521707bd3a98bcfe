package grid

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// Row id kind tags used in encoded cell keys.
const (
	kindString  = 's'
	kindNumeric = 'n'
)

// CellAddress addresses one cell by row id and column field.
type CellAddress struct {
	Row   RowID  `json:"rowId"`
	Field string `json:"field"`
}

// Cell returns the address of the cell at (row, field).
func Cell(row RowID, field string) CellAddress {
	return CellAddress{Row: row, Field: field}
}

// Key returns the injective string encoding of the address.
// See the package documentation for the format.
func (a CellAddress) Key() string {
	kind := byte(kindString)
	if a.Row.numeric {
		kind = kindNumeric
	}

	var b strings.Builder
	b.Grow(len(a.Row.text) + len(a.Field) + 8)
	b.WriteByte(kind)
	b.WriteString(strconv.Itoa(len(a.Row.text)))
	b.WriteByte(':')
	b.WriteString(a.Row.text)
	b.WriteString(a.Field)
	return b.String()
}

// String renders the address for humans as row/field.
func (a CellAddress) String() string {
	return a.Row.text + "/" + a.Field
}

// ParseCellKey decodes a key produced by CellAddress.Key. It is the exact
// inverse of Key: ParseCellKey(a.Key()) == a for every address, and any
// string that Key cannot produce is rejected with ErrMalformedKey.
func ParseCellKey(key string) (CellAddress, error) {
	if len(key) < 3 {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q too short", key)
	}

	kind := key[0]
	if kind != kindString && kind != kindNumeric {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q has unknown kind %q", key, kind)
	}

	colon := strings.IndexByte(key, ':')
	if colon < 2 {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q has no length prefix", key)
	}

	lengthText := key[1:colon]
	n, err := strconv.Atoi(lengthText)
	if err != nil || n < 0 || strconv.Itoa(n) != lengthText {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q has bad length %q", key, lengthText)
	}

	body := key[colon+1:]
	if len(body) < n {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q is shorter than its row length %d", key, n)
	}

	rowText, field := body[:n], body[n:]
	if kind == kindString {
		return CellAddress{Row: StringID(rowText), Field: field}, nil
	}

	v, err := strconv.ParseInt(rowText, 10, 64)
	if err != nil || strconv.FormatInt(v, 10) != rowText {
		return CellAddress{}, errors.Wrapf(errors.ErrMalformedKey, "key %q has non-integer row %q", key, rowText)
	}
	return CellAddress{Row: IntID(v), Field: field}, nil
}
