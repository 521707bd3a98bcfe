package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// readYAML accepts the same shapes as readJSON. Line numbers in errors are
// source lines.
func readYAML(r io.Reader, idColumn string) (*table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.NewDataError("file is empty", errors.ErrEmptyDataset)
		}
		return nil, errors.NewDataError("malformed YAML", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.NewDataError("file is empty", errors.ErrEmptyDataset)
	}

	t := &table{}
	root := doc.Content[0]
	rows := root
	switch root.Kind {
	case yaml.SequenceNode:
	case yaml.MappingNode:
		rows = nil
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, value := root.Content[i], root.Content[i+1]
			switch key.Value {
			case "columns":
				if err := value.Decode(&t.declared); err != nil {
					return nil, errors.NewDataError("malformed columns", err).WithLine(value.Line)
				}
			case "rows":
				rows = value
			}
		}
		if rows == nil {
			return t, nil
		}
		if rows.Kind != yaml.SequenceNode {
			return nil, errors.NewDataError("rows must be a list", errors.ErrInvalidInput).WithLine(rows.Line)
		}
	default:
		return nil, errors.NewDataError("YAML dataset must be a list or a mapping", errors.ErrInvalidInput).WithLine(root.Line)
	}

	seen := make(map[string]struct{})
	for _, row := range rows.Content {
		if row.Kind != yaml.MappingNode {
			return nil, errors.NewDataError("row must be a mapping", errors.ErrInvalidInput).WithLine(row.Line)
		}
		rec := record{line: row.Line, values: make(map[string]string, len(row.Content)/2)}
		for i := 0; i+1 < len(row.Content); i += 2 {
			key, value := row.Content[i], row.Content[i+1]
			text, err := yamlText(value)
			if err != nil {
				return nil, errors.NewDataError("malformed value", err).WithLine(value.Line).WithColumn(key.Value)
			}
			t.addField(seen, key.Value)
			rec.values[key.Value] = text
			if key.Value == idColumn {
				rec.id, rec.typed = yamlRowID(value)
			}
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

// yamlRowID keeps the YAML type of an id: !!int scalars become integer ids,
// everything else stays a string. Null leaves the id to be generated.
func yamlRowID(n *yaml.Node) (grid.RowID, bool) {
	if n.Kind != yaml.ScalarNode {
		return grid.RowID{}, false
	}
	switch n.ShortTag() {
	case "!!null":
		return grid.RowID{}, false
	case "!!int":
		if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return grid.IntID(v), true
		}
	}
	return grid.StringID(n.Value), true
}

func yamlText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return yamlText(n.Alias)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return "", err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), nil
	}
	return string(b), nil
}
