package resolver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"})

// InputBackend asks the operator for a value on the terminal. It writes one
// prompt line naming the variable to Out, then blocks reading one line from
// In. There is no timeout and no retry; a read failure or end-of-stream is
// surfaced immediately as an IOError.
type InputBackend struct {
	In  io.Reader
	Out io.Writer

	// br buffers In across prompts so a second prompt does not lose input
	// the first one read ahead.
	br *bufio.Reader
}

// NewInputBackend returns an InputBackend wired to the process's stdin and
// stderr. The prompt goes to stderr so a resolved value piped from stdout
// stays clean.
func NewInputBackend() *InputBackend {
	return &InputBackend{In: os.Stdin, Out: os.Stderr}
}

func (b *InputBackend) Name() string { return "input" }

func (b *InputBackend) Lookup(name string) (string, error) {
	return b.Prompt(name)
}

// Prompt writes the prompt line for name and reads the operator's reply.
// The reply is trimmed of surrounding whitespace (which removes the line
// terminator); interior whitespace is kept.
func (b *InputBackend) Prompt(name string) (string, error) {
	fmt.Fprintf(b.Out, "%s ", b.promptLabel(name))

	if b.br == nil {
		b.br = bufio.NewReader(b.In)
	}
	line, err := b.br.ReadString('\n')
	if err != nil {
		// A final line without a terminator is still a valid reply.
		if err != io.EOF || line == "" {
			return "", &IOError{Err: err}
		}
	}
	return strings.TrimSpace(line), nil
}

// promptLabel styles the prompt when Out is a terminal; on a pipe or in tests
// the raw label is written so output stays parseable.
func (b *InputBackend) promptLabel(name string) string {
	label := fmt.Sprintf("Enter a value for %s:", name)
	if f, ok := b.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return promptStyle.Render(label)
	}
	return label
}
