package dataset

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

const utf8BOM = "\ufeff"

// readDelimited reads a header row followed by records.
func readDelimited(r io.Reader, comma rune) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewDataError("file is empty", errors.ErrEmptyDataset)
	}
	if err != nil {
		return nil, csvError(err)
	}

	t := &table{}
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if _, dup := seen[h]; dup {
			return nil, errors.NewDataError("header repeats a field", errors.ErrDuplicateField).WithLine(1).WithColumn(h)
		}
		header[i] = h
		t.addField(seen, h)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)

		values := make(map[string]string, len(header))
		for i, field := range header {
			values[field] = rec[i]
		}
		t.records = append(t.records, record{line: line, values: values})
	}
	return t, nil
}

func csvError(err error) error {
	dataErr := errors.NewDataError("malformed delimited file", err)
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		dataErr.WithLine(parseErr.Line)
	}
	return dataErr
}
