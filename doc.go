// Package sweeper implements the game core of pipebomb-sweeper, a
// single-player terminal grid-reveal puzzle.
//
// The package is pure state and logic: it owns the grid of cells, the
// hazard layout, the player cursor, and every game-state transition
// (reveal, flood cascade, flag toggle, victory and defeat detection).
// It performs no I/O. Input handling and screen rendering live in the
// cli subpackage, which drives a Field one command at a time and draws
// the snapshot it exposes.
//
// # Basic Usage
//
//	field, err := sweeper.New(8, 8, 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	field.Randomize()
//
//	field.MoveCursor(sweeper.DirDown)
//	if field.OpenAtCursor(false) == sweeper.CellExploded {
//	    field.RevealAllHazards()
//	}
//
//	snap := field.Snapshot() // render-ready view of the grid
//
// All operations are finite, synchronous computations over a fixed-size
// grid. A Field is not safe for concurrent use; callers are expected to
// issue one command at a time, which is the natural discipline of a
// turn-based keyboard loop.
package sweeper
