package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string, opts Options) (*Console, *bytes.Buffer) {
	color.NoColor = true
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, opts), &out
}

func TestPrompt(t *testing.T) {
	c, out := newTestConsole("  hello  \r\nlast", Options{})

	got, err := c.Prompt("name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = c.Prompt("next: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got, "unterminated final line is still returned")

	_, err = c.Prompt("again: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.True(t, strings.HasPrefix(out.String(), "name: next: again: "))
}

func TestPromptRequired(t *testing.T) {
	c, _ := newTestConsole("\nvalue\n", Options{})

	_, err := c.PromptRequired("x: ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	got, err := c.PromptRequired("x: ")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			c, _ := newTestConsole(tt.input, Options{})
			got, err := c.Confirm("sure? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWaitForEnter(t *testing.T) {
	c, out := newTestConsole("", Options{})
	assert.NoError(t, c.WaitForEnter(), "pausing disabled must not read input")
	assert.Empty(t, out.String())

	c, out = newTestConsole("\n", Options{Pause: true})
	require.NoError(t, c.WaitForEnter())
	assert.Contains(t, out.String(), "Press Enter")
}

func TestScreen(t *testing.T) {
	c, out := newTestConsole("", Options{Clear: true})
	c.Screen("TITLE")

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "\033[H\033[2J"))
	assert.Equal(t, strings.Repeat(" ", (Width-5)/2)+"TITLE", lines[1])
}

func TestStatusLines(t *testing.T) {
	c, out := newTestConsole("", Options{})
	c.Success("done %d", 1)
	c.Error("failed")
	c.Warn("careful")

	assert.Equal(t, "✓ done 1\n✗ failed\n! careful\n", out.String())
}
