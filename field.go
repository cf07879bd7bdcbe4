package sweeper

import (
	"fmt"
	"math/rand/v2"
)

// Field owns the grid, the hazard layout, and the player cursor. All
// game-state transitions go through its methods; the grid is never
// resized after construction.
type Field struct {
	rows    int
	cols    int
	density int // Hazard percentage, clamped to [0,100]
	cells   [][]Cell

	cursorRow int
	cursorCol int

	glyphs   Glyphs
	rng      *rand.Rand
	exploded bool
}

// New creates a rows x cols field of closed, hazard-free cells with the
// cursor at (0,0). Density is the hazard percentage used by Randomize
// and is clamped to [0,100]. Dimensions below 1x1 are rejected.
func New(rows, cols, density int) (*Field, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("field dimensions must be at least 1x1, got %dx%d", rows, cols)
	}
	if density < 0 {
		density = 0
	}
	if density > 100 {
		density = 100
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Field{
		rows:    rows,
		cols:    cols,
		density: density,
		cells:   cells,
		glyphs:  DefaultGlyphs(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// SetGlyphs overrides the glyph set used by Snapshot
func (f *Field) SetGlyphs(g Glyphs) {
	f.glyphs = g
}

// Rows returns the grid height
func (f *Field) Rows() int { return f.rows }

// Cols returns the grid width
func (f *Field) Cols() int { return f.cols }

// Cursor returns the current cursor position
func (f *Field) Cursor() (row, col int) {
	return f.cursorRow, f.cursorCol
}

func (f *Field) inBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// HazardCount returns how many hazard cells the grid currently holds
func (f *Field) HazardCount() int {
	n := 0
	for r := range f.cells {
		for c := range f.cells[r] {
			if f.cells[r][c].Hazard {
				n++
			}
		}
	}
	return n
}

// Randomize resets every cell to closed and hazard-free, then places
// ceil(rows*cols*density/100) hazards at distinct random cells. The cell
// under the cursor never receives a hazard, so the first open of a fresh
// round cannot explode in place. The cursor itself is not moved.
//
// Placement draws from a shuffled list of candidate cells, so it
// terminates even when the requested count reaches the grid capacity; in
// that case every cell except the cursor cell ends up with a hazard.
func (f *Field) Randomize() {
	for r := range f.cells {
		for c := range f.cells[r] {
			f.cells[r][c] = Cell{}
		}
	}
	f.exploded = false

	want := (f.rows*f.cols*f.density + 99) / 100

	candidates := make([][2]int, 0, f.rows*f.cols-1)
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			if r == f.cursorRow && c == f.cursorCol {
				continue
			}
			candidates = append(candidates, [2]int{r, c})
		}
	}
	f.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if want > len(candidates) {
		want = len(candidates)
	}
	for _, pos := range candidates[:want] {
		f.cells[pos[0]][pos[1]].Hazard = true
	}
}

// Adjacency returns the number of hazard cells among the up-to-8
// neighbors of (row, col). Out-of-bounds neighbors are ignored and the
// cell itself is never counted.
func (f *Field) Adjacency(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if f.inBounds(r, c) && f.cells[r][c].Hazard {
				n++
			}
		}
	}
	return n
}

// Reveal opens the cell at (row, col) and flood-reveals its region. A
// cell bordering a hazard opens alone; a zero-adjacency cell opens
// together with every zero-adjacency cell reachable from it through the
// 8 directions, plus the ring of numbered cells bordering that region.
//
// Hazard cells are never opened by a cascade, and flagged cells are left
// untouched no matter how close the cascade passes. Out-of-bounds
// coordinates are a no-op.
//
// The traversal runs over an explicit worklist rather than the call
// stack, so a large all-blank grid cannot overflow on recursion depth.
// Cells flip to Open before their neighbors are enqueued, which bounds
// the walk: an open cell is never expanded twice.
func (f *Field) Reveal(row, col int) {
	if !f.inBounds(row, col) {
		return
	}

	type pos struct{ r, c int }
	stack := []pos{{row, col}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &f.cells[p.r][p.c]
		if cell.Hazard || cell.State == Flagged {
			continue
		}
		if f.Adjacency(p.r, p.c) > 0 {
			cell.State = Open
			continue
		}
		if cell.State == Open {
			continue
		}
		cell.State = Open

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := p.r+dr, p.c+dc
				if f.inBounds(r, c) {
					stack = append(stack, pos{r, c})
				}
			}
		}
	}
}

// OpenAtCursor executes the player's open command on the cursor cell.
//
// A closed cell is revealed (cascading if blank). A flagged cell is only
// revealed when confirmed is true; otherwise ConfirmFlagged is returned
// and nothing changes, letting the caller prompt and retry. An already
// open cell is a no-op.
//
// CellExploded is returned whenever an open actually lands on a hazard;
// the cell itself is left for RevealAllHazards to expose.
func (f *Field) OpenAtCursor(confirmed bool) OpenResult {
	cell := &f.cells[f.cursorRow][f.cursorCol]

	switch cell.State {
	case Flagged:
		if !confirmed {
			return ConfirmFlagged
		}
		if cell.Hazard {
			f.exploded = true
			return CellExploded
		}
		// Unflag first so the reveal treats the cell as ordinary closed
		cell.State = Closed
		f.Reveal(f.cursorRow, f.cursorCol)
	case Closed:
		if cell.Hazard {
			f.exploded = true
			return CellExploded
		}
		f.Reveal(f.cursorRow, f.cursorCol)
	case Open:
		// No-op. An open hazard only exists after the round has ended.
		if cell.Hazard {
			return CellExploded
		}
	}
	return CellOpened
}

// FlagAtCursor toggles the cursor cell between Closed and Flagged.
// Open cells are unaffected.
func (f *Field) FlagAtCursor() {
	cell := &f.cells[f.cursorRow][f.cursorCol]
	switch cell.State {
	case Closed:
		cell.State = Flagged
	case Flagged:
		cell.State = Closed
	}
}

// MoveCursor moves the cursor one cell in the given direction, clamped
// at the grid edges. It never wraps and never fails.
func (f *Field) MoveCursor(d Direction) {
	switch d {
	case DirUp:
		if f.cursorRow > 0 {
			f.cursorRow--
		}
	case DirDown:
		if f.cursorRow < f.rows-1 {
			f.cursorRow++
		}
	case DirLeft:
		if f.cursorCol > 0 {
			f.cursorCol--
		}
	case DirRight:
		if f.cursorCol < f.cols-1 {
			f.cursorCol++
		}
	}
}

// RevealAllHazards opens every hazard cell regardless of its current
// state. Called once at the end of a round, on defeat and victory alike.
func (f *Field) RevealAllHazards() {
	for r := range f.cells {
		for c := range f.cells[r] {
			if f.cells[r][c].Hazard {
				f.cells[r][c].State = Open
			}
		}
	}
}

// Victory reports whether every non-hazard cell is open. Hazard cells do
// not need to be open (and are not, until RevealAllHazards runs).
func (f *Field) Victory() bool {
	for r := range f.cells {
		for c := range f.cells[r] {
			cell := f.cells[r][c]
			if !cell.Hazard && cell.State != Open {
				return false
			}
		}
	}
	return true
}

// Outcome returns the current state of the round. Defeat latches once an
// open lands on a hazard; victory and in-progress are derived from the
// grid on every call.
func (f *Field) Outcome() Outcome {
	if f.exploded {
		return Defeat
	}
	if f.Victory() {
		return Victory
	}
	return InProgress
}

// Snapshot builds a render-ready view of the field. Open cells show the
// hazard glyph or their adjacency digit (blank for zero); closed and
// flagged cells show their glyphs. The returned value shares no memory
// with the field.
func (f *Field) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:      f.rows,
		Cols:      f.cols,
		CursorRow: f.cursorRow,
		CursorCol: f.cursorCol,
		Cells:     make([][]CellView, f.rows),
		Outcome:   f.Outcome(),
	}

	for r := 0; r < f.rows; r++ {
		snap.Cells[r] = make([]CellView, f.cols)
		for c := 0; c < f.cols; c++ {
			cell := f.cells[r][c]
			view := CellView{State: cell.State}

			switch cell.State {
			case Open:
				if cell.Hazard {
					view.Glyph = f.glyphs.Hazard
				} else if n := f.Adjacency(r, c); n > 0 {
					view.Glyph = rune('0' + n)
				} else {
					view.Glyph = ' '
				}
			case Flagged:
				view.Glyph = f.glyphs.Flag
				snap.Flags++
			default:
				view.Glyph = f.glyphs.Closed
			}

			if cell.Hazard {
				snap.Hazards++
			}
			snap.Cells[r][c] = view
		}
	}
	return snap
}
