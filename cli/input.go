package cli

import (
	"bufio"
	"io"
)

// Command is a decoded player intent
type Command int

const (
	CmdNone    Command = iota
	CmdUp              // Move cursor up
	CmdDown            // Move cursor down
	CmdLeft            // Move cursor left
	CmdRight           // Move cursor right
	CmdFlag            // Toggle flag on the cursor cell
	CmdOpen            // Open the cursor cell
	CmdReset           // Re-randomize the field (confirmation gated)
	CmdQuit            // Leave the session (confirmation gated)
	CmdUnknown         // Anything else; reported and ignored
)

// InputHandler reads raw key bytes from the session input and translates
// them into commands. It expects the terminal to be in raw mode, so each
// keypress arrives as a single byte or a short escape sequence.
type InputHandler struct {
	r *bufio.Reader
}

// NewInputHandler creates an input handler reading from r
func NewInputHandler(r io.Reader) *InputHandler {
	return &InputHandler{r: bufio.NewReader(r)}
}

// ReadCommand blocks for the next keypress and maps it to a command.
// Letters are case-insensitive. Arrow keys arrive as CSI (ESC [ X) or
// SS3 (ESC O X) sequences and map onto the movement commands.
func (h *InputHandler) ReadCommand() (Command, error) {
	b, err := h.r.ReadByte()
	if err != nil {
		return CmdNone, err
	}

	if b == 0x1b { // ESC
		return h.readEscape()
	}
	if b == ' ' {
		return CmdOpen, nil
	}

	switch lower(b) {
	case 'w':
		return CmdUp, nil
	case 's':
		return CmdDown, nil
	case 'a':
		return CmdLeft, nil
	case 'd':
		return CmdRight, nil
	case 'f':
		return CmdFlag, nil
	case 'r':
		return CmdReset, nil
	case 'q':
		return CmdQuit, nil
	}
	return CmdUnknown, nil
}

// readEscape consumes the remainder of an escape sequence. Only the
// CSI/SS3 cursor keys are meaningful here; everything else degrades to
// CmdUnknown.
func (h *InputHandler) readEscape() (Command, error) {
	b, err := h.r.ReadByte()
	if err != nil {
		return CmdNone, err
	}
	if b != '[' && b != 'O' {
		return CmdUnknown, nil
	}

	final, err := h.r.ReadByte()
	if err != nil {
		return CmdNone, err
	}
	switch final {
	case 'A':
		return CmdUp, nil
	case 'B':
		return CmdDown, nil
	case 'C':
		return CmdRight, nil
	case 'D':
		return CmdLeft, nil
	}
	return CmdUnknown, nil
}

// Confirm blocks until the player answers a Y/N prompt, ignoring every
// other key. Case-insensitive.
func (h *InputHandler) Confirm() (bool, error) {
	for {
		b, err := h.r.ReadByte()
		if err != nil {
			return false, err
		}
		switch lower(b) {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
