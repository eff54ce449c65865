// Package prompt implements numbered-menu selection on plain text streams.
//
// The reader and writer are injected so tests can drive selections without
// a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoCandidates reports an empty option list; there is nothing to
	// choose from.
	ErrNoCandidates = errors.New("no candidates to choose from")
	// ErrInvalidSelection reports input that is not a number within the
	// displayed range.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Prompter presents numbered menus and reads selections.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter on the given streams. Typically these are
// os.Stdin and os.Stderr, keeping stdout clean for scripted use.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose prints the options as a 1-based numbered list and reads one
// selection. An empty line selects the first option, which the caller is
// expected to have placed as the best candidate. The returned index is
// 0-based.
func (p *Prompter) Choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoCandidates
	}

	fmt.Fprintf(p.out, "%s:\n", label)
	for i, option := range options {
		fmt.Fprintf(p.out, "%3d) %s\n", i+1, option)
	}
	fmt.Fprintf(p.out, "Selection [1]: ")

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, nil
	}

	n, ok := parseIndex(line)
	if !ok || n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: %q is not a number between 1 and %d",
			ErrInvalidSelection, line, len(options))
	}
	return n - 1, nil
}

// Confirm asks a yes/no question. An empty line takes the default.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// parseIndex accepts only unsigned decimal digits. strconv.Atoi would also
// take "+3" and "-0", which read as noise in a menu.
func parseIndex(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1<<20 {
			return 0, false
		}
	}
	return n, true
}
