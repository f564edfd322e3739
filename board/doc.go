// Package board keeps the boards an interactive client edits between
// searches. Each board is a grid.Grid addressed by a UUID and guarded by its
// own mutex, so wall edits and searches on one board never interleave while
// different boards proceed independently.
//
// Boards can also be read from files: a plain text picture (see grid.Parse)
// or a YAML document:
//
//	rows: 15
//	cols: 30
//	start: {row: 7, col: 5}
//	end: {row: 7, col: 25}
//	walls:
//	  - {row: 6, col: 10}
//	  - {row: 7, col: 10}
//
// Nothing is persisted; a Store lives as long as the process.
package board
