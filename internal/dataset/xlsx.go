package dataset

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// readXLSX reads one worksheet. The first non-empty row is the header.
// Line numbers in errors are worksheet row numbers.
func readXLSX(r io.Reader, sheet string) (*table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.NewDataError("malformed workbook", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewDataError("workbook has no sheets", errors.ErrEmptyDataset)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.NewNotFoundError("sheet", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewDataError("cannot read sheet "+sheet, err)
	}

	headerAt := -1
	for i, row := range rows {
		if !blank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, errors.NewDataError("sheet "+sheet+" is empty", errors.ErrEmptyDataset)
	}

	t := &table{}
	seen := make(map[string]struct{})
	header := rows[headerAt]
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			cell, _ := excelize.CoordinatesToCellName(i+1, headerAt+1)
			return nil, errors.NewDataError("header cell "+cell+" is empty", errors.ErrInvalidInput).WithLine(headerAt + 1)
		}
		if _, dup := seen[h]; dup {
			return nil, errors.NewDataError("header repeats a field", errors.ErrDuplicateField).WithLine(headerAt + 1).WithColumn(h)
		}
		header[i] = h
		t.addField(seen, h)
	}

	for i := headerAt + 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		values := make(map[string]string, len(header))
		for c, field := range header {
			if c < len(row) {
				values[field] = row[c]
			} else {
				values[field] = ""
			}
		}
		t.records = append(t.records, record{line: i + 1, values: values})
	}
	return t, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
