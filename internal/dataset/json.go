package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// jsonDocument is the object form of a JSON dataset.
type jsonDocument struct {
	Columns []grid.Column     `json:"columns"`
	Rows    []json.RawMessage `json:"rows"`
}

// readJSON accepts a list of row objects or a jsonDocument. Line numbers in
// errors are 1-based row positions.
func readJSON(r io.Reader, idColumn string) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewDataError("cannot read JSON", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.NewDataError("file is empty", errors.ErrEmptyDataset)
	}

	var doc jsonDocument
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &doc.Rows); err != nil {
			return nil, errors.NewDataError("malformed JSON", err)
		}
	case '{':
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.NewDataError("malformed JSON", err)
		}
	default:
		return nil, errors.NewDataError("JSON dataset must be an array or an object", errors.ErrInvalidInput)
	}

	t := &table{declared: doc.Columns}
	seen := make(map[string]struct{})
	for i, raw := range doc.Rows {
		rec, keys, err := decodeJSONRow(raw, idColumn)
		if err != nil {
			return nil, errors.NewDataError("malformed row", err).WithLine(i + 1)
		}
		rec.line = i + 1
		for _, k := range keys {
			t.addField(seen, k)
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

// decodeJSONRow walks one object token by token so keys keep their order.
func decodeJSONRow(raw json.RawMessage, idColumn string) (record, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return record{}, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return record{}, nil, fmt.Errorf("row must be an object")
	}

	rec := record{values: make(map[string]string)}
	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return record{}, nil, err
		}
		key := keyTok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return record{}, nil, err
		}
		if _, dup := rec.values[key]; !dup {
			keys = append(keys, key)
		}
		rec.values[key] = jsonText(v)

		if key == idColumn {
			rec.id, rec.typed = jsonRowID(v)
		}
	}
	return rec, keys, nil
}

// jsonRowID keeps the JSON type of an id: numbers become integer ids and
// strings stay strings. Null leaves the id to be generated.
func jsonRowID(v any) (grid.RowID, bool) {
	switch id := v.(type) {
	case nil:
		return grid.RowID{}, false
	case string:
		return grid.StringID(id), true
	case json.Number:
		if n, err := strconv.ParseInt(id.String(), 10, 64); err == nil {
			return grid.IntID(n), true
		}
		return grid.StringID(id.String()), true
	default:
		return grid.StringID(jsonText(v)), true
	}
}

func jsonText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
