// Package tui is the terminal host for the grid controllers.
//
// The view draws a checkbox gutter, an optional row id column, and one
// column per grid column. Column widths are kept in logical pixels by the
// resize controller and drawn at PixelsPerCell pixels per terminal cell;
// pointer positions are converted the same way before they reach the
// controllers.
//
// Mouse:
//
//   - press on a header border starts a resize drag; motion and release are
//     published to the input bus as pointer.move and pointer.up
//   - press in the gutter toggles the row
//   - press on the header checkbox selects or clears all rows
//   - press on a cell selects it; ctrl or alt adds it to the cell selection
package tui
