package sweeper

// CellState represents the visibility of a single grid cell
type CellState int

const (
	Closed  CellState = iota // Hidden, default state
	Open                     // Revealed by the player or an end-of-game sweep
	Flagged                  // Player-marked, protected from accidental reveal
)

// Cell is one position on the grid. Hazard is fixed at randomization
// time and hidden from the player until the cell opens or the round ends.
type Cell struct {
	State  CellState
	Hazard bool
}

// Direction identifies a unit cursor movement
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Outcome is the derived state of the round
type Outcome int

const (
	InProgress Outcome = iota // Cells remain to reveal
	Victory                   // Every non-hazard cell is open
	Defeat                    // A hazard cell was opened
)

// OpenResult is the outcome of a single open command at the cursor
type OpenResult int

const (
	CellOpened     OpenResult = iota // Cell revealed (or already open, a no-op)
	CellExploded                     // The cursor cell carries a hazard
	ConfirmFlagged                   // Cell is flagged; caller must confirm before opening
)

// Glyphs maps cell states to their display runes. Open cells render as
// their adjacency digit, or blank when zero, and are not part of this set.
type Glyphs struct {
	Hazard rune
	Flag   rune
	Closed rune
}

// DefaultGlyphs returns the classic glyph set: '@' hazard, '>' flag,
// '.' closed.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Hazard: '@',
		Flag:   '>',
		Closed: '.',
	}
}

// CellView is the render-ready view of one cell
type CellView struct {
	Glyph rune
	State CellState
}

// Snapshot is a read-only view of the field sufficient to draw it:
// dimensions, per-cell glyphs, cursor position, and the counters the
// status line shows. It shares no memory with the live field.
type Snapshot struct {
	Rows, Cols           int
	CursorRow, CursorCol int
	Cells                [][]CellView
	Outcome              Outcome
	Hazards              int // Hazards currently on the grid
	Flags                int // Cells currently flagged
}
