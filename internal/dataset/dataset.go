package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
)

// Format identifies a dataset file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// DefaultColumnWidth is used when Options.DefaultWidth is unset.
const DefaultColumnWidth = 120

// Options controls how a dataset is interpreted.
type Options struct {
	// IDColumn is the field holding row ids. Defaults to "id".
	IDColumn string
	// Columns are glob patterns selecting visible fields. Empty means all.
	Columns []string
	// DefaultWidth is the width of columns that do not declare one.
	DefaultWidth int
	// Sheet is the XLSX worksheet to read. Defaults to the first sheet.
	Sheet string
}

func (o Options) idColumn() string {
	if o.IDColumn == "" {
		return "id"
	}
	return o.IDColumn
}

func (o Options) defaultWidth() int {
	if o.DefaultWidth == 0 {
		return DefaultColumnWidth
	}
	return max(o.DefaultWidth, grid.MinWidth)
}

// Dataset is a loaded table.
type Dataset struct {
	Path    string
	Format  Format
	Columns []grid.Column
	Rows    []grid.Row
	// GeneratedIDs counts rows whose id was generated.
	GeneratedIDs int
}

// Fields returns the visible column fields in order.
func (d *Dataset) Fields() []string {
	fields := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		fields[i] = c.Field
	}
	return fields
}

// DetectFormat infers the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", errors.NewDataError(
			fmt.Sprintf("cannot infer format from extension %q", filepath.Ext(path)),
			errors.ErrUnsupportedFormat,
		).WithPath(path)
	}
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatTSV, FormatJSON, FormatYAML, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewDataError(fmt.Sprintf("unknown format %q", s), errors.ErrUnsupportedFormat)
	}
}

// Load reads the dataset at path, inferring the format from its extension.
func Load(path string, opts Options) (*Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("dataset", path).WithCause(err)
		}
		return nil, errors.NewDataError("cannot open dataset", err).WithPath(path)
	}
	defer func() { _ = f.Close() }()

	ds, err := Parse(f, format, opts)
	if err != nil {
		var dataErr *errors.DataError
		if errors.As(err, &dataErr) && dataErr.Path == "" {
			dataErr.WithPath(path)
		}
		return nil, err
	}
	ds.Path = path
	return ds, nil
}

// Parse reads a dataset in the given format from r.
func Parse(r io.Reader, format Format, opts Options) (*Dataset, error) {
	var (
		t   *table
		err error
	)
	switch format {
	case FormatCSV:
		t, err = readDelimited(r, ',')
	case FormatTSV:
		t, err = readDelimited(r, '\t')
	case FormatJSON:
		t, err = readJSON(r, opts.idColumn())
	case FormatYAML:
		t, err = readYAML(r, opts.idColumn())
	case FormatXLSX:
		t, err = readXLSX(r, opts.Sheet)
	default:
		return nil, errors.NewDataError(fmt.Sprintf("unknown format %q", format), errors.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	ds, err := t.build(opts)
	if err != nil {
		return nil, err
	}
	ds.Format = format
	return ds, nil
}

// table is the format-independent result of reading a file.
type table struct {
	fields   []string      // every field, in first-seen order
	declared []grid.Column // explicit column metadata, if the file has any
	records  []record
}

type record struct {
	line   int
	values map[string]string
	id     grid.RowID
	typed  bool // id carries a type from the source and is not inferred
}

// addField records field in first-seen order.
func (t *table) addField(seen map[string]struct{}, field string) {
	if _, ok := seen[field]; ok {
		return
	}
	seen[field] = struct{}{}
	t.fields = append(t.fields, field)
}

func (t *table) build(opts Options) (*Dataset, error) {
	filter, err := NewColumnFilter(opts.Columns)
	if err != nil {
		return nil, err
	}

	columns, err := t.columns(opts.defaultWidth())
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: make([]grid.Column, 0, len(columns))}
	for _, c := range columns {
		if filter.Match(c.Field) {
			ds.Columns = append(ds.Columns, c)
		}
	}
	if len(ds.Columns) == 0 {
		return nil, errors.NewDataError("no columns to display", errors.ErrEmptyDataset)
	}

	idColumn := opts.idColumn()
	seen := make(map[grid.RowID]int, len(t.records))
	ids := newIDGenerator()
	ds.Rows = make([]grid.Row, 0, len(t.records))
	for _, rec := range t.records {
		id, generated := rec.rowID(idColumn, ids)
		if generated {
			ds.GeneratedIDs++
		}
		if first, dup := seen[id]; dup {
			return nil, errors.NewDataError(
				fmt.Sprintf("row id %q already used at line %d", id.String(), first),
				errors.ErrDuplicateRowID,
			).WithLine(rec.line).WithColumn(idColumn)
		}
		seen[id] = rec.line
		ds.Rows = append(ds.Rows, grid.Row{ID: id, Cells: rec.values})
	}
	return ds, nil
}

// columns returns declared columns when present, otherwise one column per
// field.
func (t *table) columns(defaultWidth int) ([]grid.Column, error) {
	source := t.declared
	if len(source) == 0 {
		source = make([]grid.Column, len(t.fields))
		for i, f := range t.fields {
			source[i] = grid.Column{Field: f}
		}
	}

	out := make([]grid.Column, 0, len(source))
	seen := make(map[string]struct{}, len(source))
	for _, c := range source {
		c.Field = strings.TrimSpace(c.Field)
		if c.Field == "" {
			return nil, errors.NewDataError("column has no field name", errors.ErrInvalidInput)
		}
		if _, dup := seen[c.Field]; dup {
			return nil, errors.NewDataError("field declared twice", errors.ErrDuplicateField).WithColumn(c.Field)
		}
		seen[c.Field] = struct{}{}
		if c.Width == 0 {
			c.Width = defaultWidth
		}
		c.Width = max(c.Width, grid.MinWidth)
		out = append(out, c)
	}
	return out, nil
}

func (r record) rowID(idColumn string, gen *idGenerator) (grid.RowID, bool) {
	if r.typed {
		return r.id, false
	}
	if v := strings.TrimSpace(r.values[idColumn]); v != "" {
		return grid.InferRowID(v), false
	}
	return gen.next(r.values), true
}

// idNamespace scopes generated row ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("datagrid:row"))

// idGenerator derives row ids from row content. Identical rows are told
// apart by their occurrence count, so ids stay unique and stable while the
// content is unchanged.
type idGenerator struct {
	occurrences map[string]int
}

func newIDGenerator() *idGenerator {
	return &idGenerator{occurrences: make(map[string]int)}
}

func (g *idGenerator) next(values map[string]string) grid.RowID {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(0x1f)
		b.WriteString(values[k])
		b.WriteByte(0x1e)
	}
	content := b.String()
	n := g.occurrences[content]
	g.occurrences[content] = n + 1
	fmt.Fprintf(&b, "#%d", n)

	return grid.StringID(uuid.NewSHA1(idNamespace, []byte(b.String())).String())
}
