package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sweeper "github.com/Guayota/pipebomb-sweeper"
)

func testSnapshot(t *testing.T) sweeper.Snapshot {
	t.Helper()
	f, err := sweeper.New(2, 3, 0)
	require.NoError(t, err)
	return f.Snapshot()
}

func TestRender(t *testing.T) {
	t.Run("clears the screen and draws the field", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, "", false)
		require.NoError(t, r.Render(testSnapshot(t), ""))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\033[2J\033[1;1H"))
		assert.Contains(t, out, "┌")
		assert.Contains(t, out, "┘")
		// 2x3 closed cells: five plain, one under the cursor
		assert.Equal(t, 6, strings.Count(out, "."))
		assert.Contains(t, out, "[\033[7m.\033[27m]", "cursor cell bracketed and highlighted")
	})

	t.Run("centers the title in the top border", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, "mine", false)
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.Contains(t, buf.String(), "├ mine ┤")
	})

	t.Run("centers a multibyte title by rune count", func(t *testing.T) {
		// "mïne" is five bytes but four runes; byte-length measuring
		// would reject it for a 9-column border.
		var buf bytes.Buffer
		r := NewRenderer(&buf, "mïne", false)
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.Contains(t, buf.String(), "├ mïne ┤")
	})

	t.Run("renders the status bar when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, "", true)
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.Contains(t, buf.String(), "Hazards: 0 | Flags: 0 | Cursor: 0,0 | Size: 2x3")

		buf.Reset()
		r = NewRenderer(&buf, "", false)
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.NotContains(t, buf.String(), "Hazards:")
	})

	t.Run("shows a notice line only when set", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, "", false)
		require.NoError(t, r.Render(testSnapshot(t), "unrecognised command"))
		assert.Contains(t, buf.String(), "unrecognised command\r\n")

		buf.Reset()
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.NotContains(t, buf.String(), "unrecognised")
	})

	t.Run("always shows the controls hint", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(&buf, "", false)
		require.NoError(t, r.Render(testSnapshot(t), ""))
		assert.Contains(t, buf.String(), "w/a/s/d move")
	})
}

func TestPrompt(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "", false)
	require.NoError(t, r.Prompt("Are you sure you want to quit?"))
	assert.Equal(t, "\r\nAre you sure you want to quit? (Y/N): ", buf.String())
}
