package components

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/questiongen"
)

func testQuestion() *questiongen.Question {
	return &questiongen.Question{
		Statement: "The [.....] purred.",
		Choices:   []string{"feline", "cat", "kitty", "tom"},
		Solution:  1,
	}
}

func TestMultiChoice_Navigate(t *testing.T) {
	m := NewMultiChoice(1, testQuestion())

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("selection should not move above the first choice, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Submitted || m.Chosen != 1 {
		t.Fatalf("expected B submitted, got submitted=%v chosen=%s", m.Submitted, m.Chosen)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Fatal("a submitted component must ignore input")
	}
}

func TestMultiChoice_LetterAndSkip(t *testing.T) {
	m := NewMultiChoice(1, testQuestion())
	m, _ = m.Update(tea.KeyPressMsg{Code: 'D', Text: "D"})
	if !m.Submitted || m.Chosen != 3 {
		t.Fatalf("expected D submitted, got %s", m.Chosen)
	}

	m = NewMultiChoice(1, testQuestion())
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !m.Submitted || m.Chosen.Answered() {
		t.Fatalf("expected a skipped question, got %s", m.Chosen)
	}
}

func TestMultiChoice_LettersBeatNavigation(t *testing.T) {
	q := &questiongen.Question{Statement: "s", Solution: 0}
	for i := range 11 {
		q.Choices = append(q.Choices, fmt.Sprintf("w%d", i))
	}

	for _, tt := range []struct {
		key  string
		want questiongen.Choice
	}{
		{"j", 9},
		{"k", 10},
	} {
		m := NewMultiChoice(1, q)
		m, _ = m.Update(tea.KeyPressMsg{Code: rune(tt.key[0]), Text: tt.key})
		if !m.Submitted || m.Chosen != tt.want {
			t.Fatalf("%s: expected %s submitted, got submitted=%v chosen=%s", tt.key, tt.want, m.Submitted, m.Chosen)
		}
	}

	m := NewMultiChoice(1, q)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 || m.Submitted {
		t.Fatalf("arrow keys should still navigate, got selected=%d submitted=%v", m.Selected, m.Submitted)
	}
}

func TestRenderQuestion(t *testing.T) {
	out := RenderQuestion(3, testQuestion())
	for _, want := range []string{"Question 3:", "[.....]", "feline", "D."} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered question misses %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "\t") != 4 {
		t.Fatalf("expected one tab-indented line per choice:\n%s", out)
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(1, 4, 20)
	if p.Percent() != 0.25 {
		t.Fatalf("Percent() = %v", p.Percent())
	}
	if !strings.Contains(p.View(), "1/4") {
		t.Fatalf("missing counter in %q", p.View())
	}
	if NewProgressBar(3, 0, 20).Percent() != 0 {
		t.Fatal("an empty quiz has no progress")
	}
}
