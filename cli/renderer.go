package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	sweeper "github.com/Guayota/pipebomb-sweeper"
)

// cellWidth is the number of screen columns each grid cell occupies.
// The middle column holds the glyph; the outer two hold the cursor
// brackets when the cursor sits on the cell.
const cellWidth = 3

// Renderer draws a field snapshot onto the session output using ANSI
// escape codes. Each frame clears the screen and redraws from the top;
// output is batched into a single write to avoid flicker.
type Renderer struct {
	out           io.Writer
	title         string
	showStatusBar bool

	// Output buffer for batching writes
	output strings.Builder

	borderChars borderCharSet
}

// borderCharSet contains the characters for drawing the field border
type borderCharSet struct {
	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune
	horizontal  rune
	vertical    rune
	titleLeft   rune
	titleRight  rune
}

var singleBorder = borderCharSet{
	topLeft: '┌', topRight: '┐', bottomLeft: '└', bottomRight: '┘',
	horizontal: '─', vertical: '│', titleLeft: '┤', titleRight: '├',
}

// NewRenderer creates a renderer writing frames to out
func NewRenderer(out io.Writer, title string, showStatusBar bool) *Renderer {
	return &Renderer{
		out:           out,
		title:         title,
		showStatusBar: showStatusBar,
		borderChars:   singleBorder,
	}
}

// Render draws a full frame: cleared screen, bordered field with the
// cursor cell highlighted, optional status bar, then the notice line if
// one is set and the controls hint.
func (r *Renderer) Render(snap sweeper.Snapshot, notice string) error {
	r.output.Reset()

	// Clear screen and render the field at the top
	r.output.WriteString("\033[2J\033[1;1H")

	innerWidth := snap.Cols * cellWidth
	r.renderBorderTop(innerWidth)

	for row := 0; row < snap.Rows; row++ {
		r.output.WriteRune(r.borderChars.vertical)
		for col := 0; col < snap.Cols; col++ {
			view := snap.Cells[row][col]
			if row == snap.CursorRow && col == snap.CursorCol {
				r.output.WriteByte('[')
				r.output.WriteString("\033[7m")
				r.output.WriteRune(view.Glyph)
				r.output.WriteString("\033[27m")
				r.output.WriteByte(']')
			} else {
				r.output.WriteByte(' ')
				r.output.WriteRune(view.Glyph)
				r.output.WriteByte(' ')
			}
		}
		r.output.WriteRune(r.borderChars.vertical)
		r.output.WriteString("\r\n")
	}

	r.renderBorderBottom(innerWidth)

	if r.showStatusBar {
		r.renderStatusBar(snap, innerWidth+2)
	}

	if notice != "" {
		r.output.WriteString(notice)
		r.output.WriteString("\r\n")
	}
	r.output.WriteString("w/a/s/d move · f flag · space open · r reset · q quit\r\n")

	_, err := io.WriteString(r.out, r.output.String())
	return err
}

// Prompt writes a Y/N question below the field without clearing it
func (r *Renderer) Prompt(question string) error {
	_, err := fmt.Fprintf(r.out, "\r\n%s (Y/N): ", question)
	return err
}

// renderBorderTop draws the top border, centering the title in it when
// it fits.
func (r *Renderer) renderBorderTop(innerWidth int) {
	bc := r.borderChars
	r.output.WriteRune(bc.topLeft)

	// Measured in runes so multibyte titles keep the border aligned
	titleLen := utf8.RuneCountInString(r.title)
	if r.title != "" && titleLen < innerWidth-4 {
		padding := (innerWidth - titleLen - 2) / 2
		for i := 0; i < padding; i++ {
			r.output.WriteRune(bc.horizontal)
		}
		r.output.WriteRune(bc.titleRight)
		r.output.WriteString(" ")
		r.output.WriteString(r.title)
		r.output.WriteString(" ")
		r.output.WriteRune(bc.titleLeft)
		remaining := innerWidth - padding - titleLen - 4
		for i := 0; i < remaining; i++ {
			r.output.WriteRune(bc.horizontal)
		}
	} else {
		for i := 0; i < innerWidth; i++ {
			r.output.WriteRune(bc.horizontal)
		}
	}

	r.output.WriteRune(bc.topRight)
	r.output.WriteString("\r\n")
}

func (r *Renderer) renderBorderBottom(innerWidth int) {
	bc := r.borderChars
	r.output.WriteRune(bc.bottomLeft)
	for i := 0; i < innerWidth; i++ {
		r.output.WriteRune(bc.horizontal)
	}
	r.output.WriteRune(bc.bottomRight)
	r.output.WriteString("\r\n")
}

// renderStatusBar draws a reverse-video status line under the field
func (r *Renderer) renderStatusBar(snap sweeper.Snapshot, width int) {
	status := fmt.Sprintf(" Hazards: %d | Flags: %d | Cursor: %d,%d | Size: %dx%d ",
		snap.Hazards, snap.Flags, snap.CursorRow, snap.CursorCol, snap.Rows, snap.Cols)

	// Pad to at least the field width; a small field never truncates it
	if n := utf8.RuneCountInString(status); n < width {
		status = status + strings.Repeat(" ", width-n)
	}

	r.output.WriteString("\033[7m")
	r.output.WriteString(status)
	r.output.WriteString("\033[27m")
	r.output.WriteString("\r\n")
}
