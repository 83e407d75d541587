// Package tui presents a quiz full-screen with Bubble Tea, one question
// at a time.
package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
)

// Model is the root Bubble Tea model for a quiz.
type Model struct {
	questions []*questiongen.Question
	current   int
	choice    components.MultiChoice
	answers   []questiongen.Choice

	start time.Time
	end   time.Time
	now   func() time.Time

	width  int
	height int
}

// NewModel creates a model showing the first question. The clock starts
// when the model is created.
func NewModel(questions []*questiongen.Question) Model {
	return newModel(questions, time.Now)
}

func newModel(questions []*questiongen.Question, now func() time.Time) Model {
	m := Model{
		questions: questions,
		answers:   make([]questiongen.Choice, 0, len(questions)),
		now:       now,
		start:     now(),
	}
	if len(questions) > 0 {
		m.choice = components.NewMultiChoice(1, questions[0])
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if len(m.questions) == 0 {
		return tea.Quit
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			// Leaving early records no answer for the rest of the quiz.
			for len(m.answers) < len(m.questions) {
				m.answers = append(m.answers, questiongen.NoAnswer)
			}
			m.end = m.now()
			return m, tea.Quit
		}
	}

	if m.Done() {
		return m, nil
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if !m.choice.Submitted {
		return m, cmd
	}

	m.answers = append(m.answers, m.choice.Chosen)
	m.current++
	if m.current >= len(m.questions) {
		m.end = m.now()
		return m, tea.Quit
	}
	m.choice = components.NewMultiChoice(m.current+1, m.questions[m.current])
	return m, cmd
}

// Done reports whether every question has an answer.
func (m Model) Done() bool {
	return len(m.answers) >= len(m.questions)
}

// Collected returns the answers gathered so far, padded with NoAnswer.
func (m Model) Collected() *session.Collected {
	answers := append([]questiongen.Choice(nil), m.answers...)
	for len(answers) < len(m.questions) {
		answers = append(answers, questiongen.NoAnswer)
	}
	end := m.end
	if end.IsZero() {
		end = m.now()
	}
	return &session.Collected{Answers: answers, Start: m.start, End: end}
}

var footerHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Move"},
	{Key: "A-Z", Description: "Pick"},
	{Key: "Enter", Description: "Answer"},
	{Key: "Tab", Description: "Skip"},
	{Key: "Ctrl+C", Description: "Finish"},
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	if m.width == 0 || m.height == 0 || m.Done() {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	progress := components.NewProgressBar(len(m.answers), len(m.questions), 24).View()
	header := layout.RenderHeader(progress, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	content := lipgloss.NewStyle().Padding(1, 2).Render(m.choice.View())
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}
