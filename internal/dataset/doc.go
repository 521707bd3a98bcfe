// Package dataset loads the rows and columns a grid displays.
//
// Supported formats are CSV, TSV, JSON, YAML, and XLSX. JSON and YAML files
// hold either a list of row objects or an object with "columns" (field,
// header, width) and "rows" keys. Row ids come from the configured id
// column; JSON and YAML keep the id's type, so 7 and "7" are different rows.
// Rows without an id get a deterministic generated one, stable across
// reloads of unchanged content.
//
// A [Watcher] reloads a file when it changes so hosts can replace their data
// and prune stale selections.
package dataset
