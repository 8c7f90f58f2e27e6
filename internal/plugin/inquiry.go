package plugin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Question is one inquiry a construction hook can put to the user.
type Question struct {
	// Key identifies the question for overrideInquiries lookups.
	Key string

	// Prompt is the text shown to the user.
	Prompt string

	// Choices, when non-empty, turns the question into a numbered menu.
	Choices []string

	// Default is returned on empty input.
	Default string
}

// Inquirer asks questions on an injectable reader/writer pair. Answers
// forced through overrides bypass prompting entirely, which is how
// automated and test scenarios run the construction pass non-interactively.
type Inquirer struct {
	reader    *bufio.Reader
	w         io.Writer
	overrides map[string]string
}

// NewInquirer builds an Inquirer. overrides maps question keys to forced
// answers and may be nil. A nil reader or writer falls back to stdin and
// stdout, so a zero-value Runner can still prompt.
func NewInquirer(r io.Reader, w io.Writer, overrides map[string]string) *Inquirer {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Inquirer{
		reader:    bufio.NewReader(r),
		w:         w,
		overrides: overrides,
	}
}

// Ask resolves one question: a forced override wins, otherwise the user is
// prompted (numbered menu when choices are given, free text otherwise).
func (i *Inquirer) Ask(q Question) (string, error) {
	if answer, ok := i.overrides[q.Key]; ok {
		return answer, nil
	}

	if len(q.Choices) > 0 {
		return i.selectFromList(q)
	}
	return i.readLine(q)
}

func (i *Inquirer) selectFromList(q Question) (string, error) {
	fmt.Fprintf(i.w, "\n%s\n", q.Prompt)
	for n, choice := range q.Choices {
		fmt.Fprintf(i.w, "  %d) %s\n", n+1, choice)
	}
	fmt.Fprintf(i.w, "Enter number (1-%d): ", len(q.Choices))

	line, err := i.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading selection for %q: %w", q.Key, err)
	}

	line = strings.TrimSpace(line)
	if line == "" && q.Default != "" {
		return q.Default, nil
	}

	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(q.Choices) {
		return "", fmt.Errorf("invalid selection %q for %q: enter a number between 1 and %d", line, q.Key, len(q.Choices))
	}

	return q.Choices[idx-1], nil
}

func (i *Inquirer) readLine(q Question) (string, error) {
	fmt.Fprintf(i.w, "\n%s ", q.Prompt)

	line, err := i.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading answer for %q: %w", q.Key, err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return q.Default, nil
	}
	return line, nil
}
