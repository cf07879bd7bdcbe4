package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCommand(t *testing.T) {
	t.Run("maps letters case-insensitively", func(t *testing.T) {
		cases := map[string]Command{
			"w": CmdUp,
			"W": CmdUp,
			"s": CmdDown,
			"S": CmdDown,
			"a": CmdLeft,
			"d": CmdRight,
			"f": CmdFlag,
			"F": CmdFlag,
			" ": CmdOpen,
			"r": CmdReset,
			"q": CmdQuit,
			"Q": CmdQuit,
			"x": CmdUnknown,
			"1": CmdUnknown,
		}
		for input, want := range cases {
			h := NewInputHandler(strings.NewReader(input))
			cmd, err := h.ReadCommand()
			require.NoError(t, err)
			assert.Equal(t, want, cmd, "input %q", input)
		}
	})

	t.Run("decodes arrow key escape sequences", func(t *testing.T) {
		cases := map[string]Command{
			"\x1b[A": CmdUp,
			"\x1b[B": CmdDown,
			"\x1b[C": CmdRight,
			"\x1b[D": CmdLeft,
			"\x1bOA": CmdUp,
			"\x1bOD": CmdLeft,
		}
		for input, want := range cases {
			h := NewInputHandler(strings.NewReader(input))
			cmd, err := h.ReadCommand()
			require.NoError(t, err)
			assert.Equal(t, want, cmd, "input %q", input)
		}
	})

	t.Run("unknown escape sequences degrade to CmdUnknown", func(t *testing.T) {
		for _, input := range []string{"\x1bx", "\x1b[Z", "\x1bOZ"} {
			h := NewInputHandler(strings.NewReader(input))
			cmd, err := h.ReadCommand()
			require.NoError(t, err)
			assert.Equal(t, CmdUnknown, cmd, "input %q", input)
		}
	})

	t.Run("reads commands in sequence", func(t *testing.T) {
		h := NewInputHandler(strings.NewReader("w\x1b[C q"))
		want := []Command{CmdUp, CmdRight, CmdOpen, CmdQuit}
		for _, w := range want {
			cmd, err := h.ReadCommand()
			require.NoError(t, err)
			assert.Equal(t, w, cmd)
		}
	})

	t.Run("propagates end of input", func(t *testing.T) {
		h := NewInputHandler(strings.NewReader(""))
		_, err := h.ReadCommand()
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("accepts y and n case-insensitively", func(t *testing.T) {
		for input, want := range map[string]bool{"y": true, "Y": true, "n": false, "N": false} {
			h := NewInputHandler(strings.NewReader(input))
			ok, err := h.Confirm()
			require.NoError(t, err)
			assert.Equal(t, want, ok, "input %q", input)
		}
	})

	t.Run("ignores other keys until an answer arrives", func(t *testing.T) {
		h := NewInputHandler(strings.NewReader("xw7 N"))
		ok, err := h.Confirm()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("propagates end of input", func(t *testing.T) {
		h := NewInputHandler(strings.NewReader("zz"))
		_, err := h.Confirm()
		assert.ErrorIs(t, err, io.EOF)
	})
}
