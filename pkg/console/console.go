// Package console provides line-oriented terminal input and styled output
// for the interactive shell.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Width is the width of headers and rules.
const Width = 60

// ErrEmptyInput is returned by PromptRequired for blank input.
var ErrEmptyInput = errors.New("input must not be empty")

// Options controls terminal-only behavior.
type Options struct {
	// Clear clears the screen before each screen is drawn.
	Clear bool
	// Pause waits for Enter after each screen.
	Pause bool
}

// DetectOptions enables clearing and pausing only when both ends are terminals.
func DetectOptions(in, out *os.File) Options {
	tty := term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
	return Options{Clear: tty, Pause: tty}
}

// Console reads answers line by line and writes screens.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// New creates a Console.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{in: bufio.NewReader(in), out: out, opts: opts}
}

// Clear clears the screen when enabled.
func (c *Console) Clear() {
	if c.opts.Clear {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

// Header prints a centered title between two rules.
func (c *Console) Header(title string) {
	rule := strings.Repeat("=", Width)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, color.CyanString("%s", center(title, Width)))
	fmt.Fprintln(c.out, rule)
}

// Screen clears the screen and prints a header.
func (c *Console) Screen(title string) {
	c.Clear()
	c.Header(title)
}

// Rule prints a horizontal rule made of ch.
func (c *Console) Rule(ch string) {
	fmt.Fprintln(c.out, strings.Repeat(ch, Width))
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success prints a green check line.
func (c *Console) Success(format string, a ...any) {
	fmt.Fprintf(c.out, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// Error prints a red cross line.
func (c *Console) Error(format string, a ...any) {
	fmt.Fprintf(c.out, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, a...))
}

// Warn prints a yellow warning line.
func (c *Console) Warn(format string, a ...any) {
	fmt.Fprintf(c.out, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, a...))
}

// Dim prints a faint line.
func (c *Console) Dim(format string, a ...any) {
	fmt.Fprintln(c.out, color.HiBlackString(format, a...))
}

// Prompt prints label and reads one line without its line ending and
// surrounding spaces. At end of input it returns io.EOF, also when a final
// unterminated line was read.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptRequired is Prompt that rejects blank answers with ErrEmptyInput.
func (c *Console) PromptRequired(label string) (string, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrEmptyInput
	}
	return answer, nil
}

// Confirm asks a yes/no question. Only "y" (any case) confirms.
func (c *Console) Confirm(label string) (bool, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// WaitForEnter pauses until Enter is pressed when pausing is enabled.
func (c *Console) WaitForEnter() error {
	if !c.opts.Pause {
		return nil
	}
	_, err := c.Prompt("\nPress Enter to continue...")
	return err
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
