// Package selection implements the row and cell selection controllers.
//
// [RowSelection] tracks selected row ids under a [grid.SelectionMode] fixed
// at construction. [CellSelection] tracks selected cell addresses and is
// always multi-select. Both keep their members in insertion order, return a
// snapshot event from every mutating call, and optionally publish the same
// snapshot to an [event.Bus].
//
// Neither controller returns errors. Unknown ids and repeated calls are
// silent no-ops, and the returned snapshot is identical either way.
//
// Controllers are not safe for concurrent mutation; hosts drive them from a
// single goroutine.
package selection
