package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// MultiChoiceKeys are the bindings understood by MultiChoice. Letter and
// digit keys naming a choice pick it directly and take precedence, so j
// and k only navigate while the question has fewer than ten choices.
type MultiChoiceKeys struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Skip   key.Binding
}

// DefaultMultiChoiceKeys returns the standard bindings.
func DefaultMultiChoiceKeys() MultiChoiceKeys {
	return MultiChoiceKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Skip:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "skip")),
	}
}

// MultiChoice is a selector for one question. It records the chosen
// ordinal, or NoAnswer when the question is skipped, without revealing
// the solution.
type MultiChoice struct {
	Number    int
	Question  *questiongen.Question
	Keys      MultiChoiceKeys
	Selected  int
	Submitted bool
	Chosen    questiongen.Choice
}

// NewMultiChoice creates a selector for question number k.
func NewMultiChoice(k int, q *questiongen.Question) MultiChoice {
	return MultiChoice{
		Number:   k,
		Question: q,
		Keys:     DefaultMultiChoiceKeys(),
		Chosen:   questiongen.NoAnswer,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	n := len(m.Question.Choices)
	if c := questiongen.ParseChoice(kmsg.String(), n); c.Answered() {
		m.Selected = int(c)
		m.Submitted = true
		m.Chosen = c
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, m.Keys.Down):
		if m.Selected < n-1 {
			m.Selected++
		}
	case key.Matches(kmsg, m.Keys.Submit):
		m.Submitted = true
		m.Chosen = questiongen.Choice(m.Selected)
	case key.Matches(kmsg, m.Keys.Skip):
		m.Submitted = true
		m.Chosen = questiongen.NoAnswer
	}

	return m, nil
}

// View renders the question and its choices.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(Statement(m.Number, m.Question.Statement))
	b.WriteString("\n\n")

	for i, opt := range m.Question.Choices {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, questiongen.Choice(i), opt)

		style := theme.Unselected
		if i == m.Selected {
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

// Statement renders "Question k: statement" with the mask highlighted.
func Statement(k int, statement string) string {
	parts := strings.SplitN(statement, questiongen.MaskToken, 2)
	body := theme.Statement.Render(parts[0])
	if len(parts) == 2 {
		body += theme.Mask.Render(questiongen.MaskToken) + theme.Statement.Render(parts[1])
	}
	return theme.Label.Render(fmt.Sprintf("Question %d:", k)) + " " + body
}

// RenderQuestion formats a question for line-oriented output: the
// statement, then one tab-indented "X. text" line per choice.
func RenderQuestion(k int, q *questiongen.Question) string {
	var b strings.Builder
	b.WriteString(Statement(k, q.Statement))
	b.WriteString("\n\n")
	for i, c := range q.Choices {
		b.WriteString("\t" + theme.Label.Render(questiongen.Choice(i).String()+".") + " " + c + "\n")
	}
	return b.String()
}

// ReportMarks returns the styled correctness markers for a grade report.
func ReportMarks() session.Marks {
	return session.Marks{
		Correct: theme.Correct.Render(session.PlainMarks.Correct),
		Wrong:   theme.Incorrect.Render(session.PlainMarks.Wrong),
	}
}
