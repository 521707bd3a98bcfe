// Package grid defines the data model shared by the datagrid interaction
// controllers and their host.
//
// The types here carry no interaction behaviour. Row and column data are owned
// by the host; controllers in the selection and resize packages only keep the
// identifiers and widths they need.
//
// # Main Types
//
//   - [RowID]: opaque comparable row identifier, string or integer
//   - [Column]: a column's field, header and current width
//   - [Row]: a host row with its identifier and cell text
//   - [CellAddress]: the (row, field) pair addressing one cell
//   - [SelectionMode]: single or multiple row selection
//
// # Cell Keys
//
// A [CellAddress] is a comparable struct and is used directly as a set key.
// When a flat string is needed (event payloads, scripts, logs) it is encoded
// with [CellAddress.Key]:
//
//	<kind><len>:<row><field>
//
// where kind is 's' for string ids and 'n' for integer ids and len is the byte
// length of the row text. The encoding is injective, so [ParseCellKey] is a
// total inverse: separators inside row ids or fields are harmless and integer
// row ids decode back as integers.
//
//	addr := grid.CellAddress{Row: grid.StringID("r-1"), Field: "first-name"}
//	key := addr.Key()                 // "s3:r-1first-name"
//	back, _ := grid.ParseCellKey(key) // back == addr
//
// # Widths
//
// Column widths are logical units. [MinWidth] is the smallest usable width;
// renderers map logical units onto their own coordinate space.
package grid
