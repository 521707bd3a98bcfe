// Package script replays recorded grid interactions without a terminal.
//
// A script is a YAML document naming a selection mode, an optional row and
// column set, and a list of steps:
//
//	mode: multiple
//	columns:
//	  - field: name
//	    width: 100
//	rows: [r1, r2, 3]
//	steps:
//	  - action: toggle_row
//	    row: r1
//	  - action: drag_start
//	    field: name
//	    x: 200
//	  - action: pointer_move
//	    x: 250
//	  - action: pointer_up
//	  - action: expect
//	    selected_rows: [r1]
//	    widths: {name: 150}
//
// Row ids keep their YAML type: 3 is an integer id and "3" a string id.
// Every event published while the script runs can be captured with a
// [Recorder], which writes one JSON object per line.
package script
