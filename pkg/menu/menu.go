// Package menu runs the numbered text menu over a Session.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/session"
)

// Choice is a menu entry number.
type Choice int

const (
	ChoiceDisplay Choice = iota + 1
	ChoiceBridge
	ChoiceNewText
	ChoicePath
	ChoicePageRank
	ChoiceWalk
	ChoiceExit
)

var entries = []struct {
	choice Choice
	label  string
}{
	{ChoiceDisplay, "Display the directed graph"},
	{ChoiceBridge, "Query bridge words"},
	{ChoiceNewText, "Generate new text"},
	{ChoicePath, "Shortest path"},
	{ChoicePageRank, "PageRank"},
	{ChoiceWalk, "Random walk"},
	{ChoiceExit, "Exit"},
}

// Labels returns the entry labels in menu order.
func Labels() []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	return labels
}

// Menu reads choices from in and writes results to out.
type Menu struct {
	session *session.Session
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// New creates a menu.
func New(s *session.Session, in io.Reader, out io.Writer, styles Styles) *Menu {
	return &Menu{
		session: s,
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}
}

// Run loops until the user exits, input ends, or ctx is cancelled. A read
// error from the input is returned; end of input is not an error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printMenu()
		input, ok := m.read(m.styles.promptText("Enter your choice: "))
		if !ok {
			fmt.Fprintln(m.out)
			return m.scanner.Err()
		}

		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < int(ChoiceDisplay) || n > int(ChoiceExit) {
			m.print(session.Report{{Kind: session.Failure, Text: "Invalid choice."}})
			continue
		}

		if Choice(n) == ChoiceExit {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}
		if !m.dispatch(ctx, Choice(n)) {
			fmt.Fprintln(m.out)
			return m.scanner.Err()
		}
	}
}

// dispatch runs one action. It returns false when input ended while
// prompting for arguments.
func (m *Menu) dispatch(ctx context.Context, choice Choice) bool {
	switch choice {
	case ChoiceDisplay:
		m.print(m.session.Display(ctx))

	case ChoiceBridge:
		w1, w2, ok := m.readPair()
		if !ok {
			return false
		}
		m.print(m.session.Bridge(w1, w2))

	case ChoiceNewText:
		text, ok := m.read(m.styles.promptText("Enter new text: "))
		if !ok {
			return false
		}
		m.print(m.session.NewText(text))

	case ChoicePath:
		w1, w2, ok := m.readPair()
		if !ok {
			return false
		}
		m.print(m.session.Path(w1, w2))

	case ChoicePageRank:
		m.print(m.session.PageRanks())

	case ChoiceWalk:
		m.print(m.session.Walk())
	}
	return true
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, apply(m.styles.Title, "==== Text Graph ===="))
	for _, e := range entries {
		fmt.Fprintf(m.out, "%d. %s\n", e.choice, e.label)
	}
}

func (m *Menu) readPair() (string, string, bool) {
	w1, ok := m.read(m.styles.promptText("Enter first word: "))
	if !ok {
		return "", "", false
	}
	w2, ok := m.read(m.styles.promptText("Enter second word: "))
	if !ok {
		return "", "", false
	}
	return w1, w2, true
}

func (m *Menu) read(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

func (m *Menu) print(r session.Report) {
	for _, l := range r {
		fmt.Fprintln(m.out, m.styles.line(l))
	}
	fmt.Fprintln(m.out)
}

func (s Styles) promptText(p string) string {
	return apply(s.Prompt, p)
}
