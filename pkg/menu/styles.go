package menu

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dd0wney/cluso-textgraph/pkg/session"
)

// Styles renders menu text. The zero value leaves text untouched.
type Styles struct {
	Title   func(string) string
	Prompt  func(string) string
	Heading func(string) string
	Success func(string) string
	Failure func(string) string
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{}
}

// ColorStyles returns lipgloss styles for a terminal.
func ColorStyles() Styles {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	prompt := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	heading := lipgloss.NewStyle().Bold(true).Underline(true)
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	return Styles{
		Title:   render(title),
		Prompt:  render(prompt),
		Heading: render(heading),
		Success: render(success),
		Failure: render(failure),
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// StylesFor picks ColorStyles when f is a terminal.
func StylesFor(f *os.File) Styles {
	if IsTerminal(f) {
		return ColorStyles()
	}
	return PlainStyles()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

func (s Styles) line(l session.Line) string {
	switch l.Kind {
	case session.Heading:
		return apply(s.Heading, l.Text)
	case session.Success:
		return apply(s.Success, l.Text)
	case session.Failure:
		return apply(s.Failure, l.Text)
	default:
		return l.Text
	}
}
