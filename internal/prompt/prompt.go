// Package prompt implements the interactive consent gate and selection
// menus. All input comes from an injected reader so both production and
// test builds stay deterministic; nothing in this package touches
// os.Stdin directly.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the input stream ends before an answer is read.
var ErrNoInput = errors.New("no input available")

// Asker is the consent gate. Confirm presents a yes/no question with a
// default and returns the decision.
type Asker interface {
	Confirm(question string, def bool) (bool, error)
}

// Terminal asks questions by writing to w and reading answers from r.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Terminal reading answers from r and printing prompts to w.
func New(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: w}
}

// Confirm asks a yes/no question. An empty response resolves to def;
// "y" and "yes" (case-insensitive) answer true, anything else false.
func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	fmt.Fprintf(t.out, "? %s %s ", question, hint)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false, ErrNoInput
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return def, nil
	}
	return answer == "y" || answer == "yes", nil
}

// Select presents a numbered list and returns the selected index.
func (t *Terminal) Select(title string, items []string) (int, error) {
	fmt.Fprintf(t.out, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(t.out, "Enter number (1-%d): ", len(items))

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, ErrNoInput
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(items) {
		return 0, fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}
	return n - 1, nil
}

// AutoYes is an Asker that accepts every question. Used for --yes runs.
type AutoYes struct{}

// Confirm always answers true.
func (AutoYes) Confirm(string, bool) (bool, error) { return true, nil }
