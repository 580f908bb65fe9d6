// Package tui is a Bubble Tea front-end offering the same actions as the
// line menu.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-textgraph/pkg/menu"
	"github.com/dd0wney/cluso-textgraph/pkg/session"
)

type state int

const (
	choosing state = iota
	prompting
	running
)

// action is one list entry.
type action struct {
	choice  menu.Choice
	title   string
	desc    string
	prompts []string
}

func (a action) Title() string       { return a.title }
func (a action) Description() string { return a.desc }
func (a action) FilterValue() string { return a.title }

var actions = []action{
	{menu.ChoiceDisplay, "Display graph", "List edges and render the graph with Graphviz", nil},
	{menu.ChoiceBridge, "Bridge words", "Words w3 with w1 → w3 → w2", []string{"First word", "Second word"}},
	{menu.ChoiceNewText, "New text", "Insert bridge words into a sentence", []string{"Text"}},
	{menu.ChoicePath, "Shortest path", "Leave the second word blank for every target", []string{"First word", "Second word"}},
	{menu.ChoicePageRank, "PageRank", "Score every word", nil},
	{menu.ChoiceWalk, "Random walk", "Walk until an edge repeats or a dead end", nil},
	{menu.ChoiceExit, "Exit", "Leave the program", nil},
}

// reportMsg carries the result of a finished action.
type reportMsg struct {
	title  string
	report session.Report
}

// Model is the Bubble Tea model.
type Model struct {
	ctx     context.Context
	session *session.Session

	list  list.Model
	input textinput.Model
	help  help.Model
	keys  keyMap

	state   state
	pending action
	answers []string

	resultTitle string
	report      session.Report

	width  int
	height int
}

// New creates the model.
func New(ctx context.Context, s *session.Session) Model {
	items := make([]list.Item, len(actions))
	for i, a := range actions {
		items[i] = a
	}

	l := list.New(items, list.NewDefaultDelegate(), 60, 20)
	l.Title = "Text Graph"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60

	return Model{
		ctx:     ctx,
		session: s,
		list:    l,
		input:   ti,
		help:    help.New(),
		keys:    keys,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height/2, 8))
		return m, nil

	case reportMsg:
		m.state = choosing
		m.resultTitle = msg.title
		m.report = msg.report
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case choosing:
			return m.updateChoosing(msg)
		case prompting:
			return m.updatePrompting(msg)
		case running:
			return m, nil
		}
	}

	if m.state == prompting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateChoosing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter):
		a, ok := m.list.SelectedItem().(action)
		if !ok {
			return m, nil
		}
		if a.choice == menu.ChoiceExit {
			return m, tea.Quit
		}
		m.pending = a
		m.answers = nil
		if len(a.prompts) == 0 {
			return m.start()
		}
		m.state = prompting
		m.input.SetValue("")
		m.input.Placeholder = a.prompts[0]
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updatePrompting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = choosing
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.answers = append(m.answers, m.input.Value())
		m.input.SetValue("")
		if len(m.answers) < len(m.pending.prompts) {
			m.input.Placeholder = m.pending.prompts[len(m.answers)]
			return m, nil
		}
		m.input.Blur()
		return m.start()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start runs the pending action off the update loop.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.state = running
	a, args, s, ctx := m.pending, m.answers, m.session, m.ctx

	return m, func() tea.Msg {
		var r session.Report
		switch a.choice {
		case menu.ChoiceDisplay:
			r = s.Display(ctx)
		case menu.ChoiceBridge:
			r = s.Bridge(args[0], args[1])
		case menu.ChoiceNewText:
			r = s.NewText(args[0])
		case menu.ChoicePath:
			r = s.Path(args[0], args[1])
		case menu.ChoicePageRank:
			r = s.PageRanks()
		case menu.ChoiceWalk:
			r = s.Walk()
		}
		return reportMsg{title: a.title, report: r}
	}
}

func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case prompting:
		s.WriteString(titleStyle.Render(m.pending.title))
		s.WriteString("\n\n  ")
		s.WriteString(promptStyle.Render(m.pending.prompts[len(m.answers)] + ":"))
		s.WriteString("\n  ")
		s.WriteString(m.input.View())
	case running:
		s.WriteString(titleStyle.Render(fmt.Sprintf("Running %s...", m.pending.title)))
	default:
		s.WriteString(m.list.View())
	}

	if len(m.report) > 0 {
		lines := make([]string, len(m.report))
		for i, l := range m.report {
			lines[i] = renderLine(l)
		}
		s.WriteString("\n\n")
		s.WriteString(resultBoxStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, append([]string{headingStyle.Render(m.resultTitle)}, lines...)...),
		))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

// Report returns the output of the last finished action.
func (m Model) Report() session.Report {
	return m.report
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, s *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, s), opts...)
	_, err := p.Run()
	return err
}
