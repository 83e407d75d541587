package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/quizgen/internal/questiongen"
)

func testQuestions() []*questiongen.Question {
	return []*questiongen.Question{
		{Statement: "A small [.....] purred.", Choices: []string{"feline", "cat", "kitty", "tom"}, Solution: 1},
		{Statement: "Looking dejected", Choices: []string{"glum", "sad", "gloomy", "low"}, Solution: 0},
		{Statement: "Expressed clearly", Choices: []string{"murky", "vague", "lucid", "dim"}, Solution: 2},
	}
}

func TestAnswer_OnlyOnce(t *testing.T) {
	s := New(testQuestions())
	if s.Phase() != PhaseUnanswered {
		t.Fatalf("new session phase = %s", s.Phase())
	}

	if _, err := s.Answer([]questiongen.Choice{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Phase() != PhaseAnswered {
		t.Fatalf("phase after answer = %s", s.Phase())
	}

	if _, err := s.Answer([]questiongen.Choice{1}); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestAnswer_PadsAndSanitizes(t *testing.T) {
	a, err := New(testQuestions()).Answer([]questiongen.Choice{1, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	subs := a.Submissions()
	want := []questiongen.Choice{1, questiongen.NoAnswer, questiongen.NoAnswer}
	for i := range want {
		if subs[i] != want[i] {
			t.Fatalf("submission %d = %s, want %s", i, subs[i], want[i])
		}
	}
}

func TestAnswer_TooManySubmissions(t *testing.T) {
	_, err := New(testQuestions()[:1]).Answer([]questiongen.Choice{0, 1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestGrade_OnlyOnce(t *testing.T) {
	a, _ := New(testQuestions()).Answer(nil)
	now := time.Now()
	if _, err := a.Grade(now, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Grade(now, now); !errors.Is(err, ErrAlreadyGraded) {
		t.Fatalf("expected ErrAlreadyGraded, got %v", err)
	}
}

func TestGrade_Pairs(t *testing.T) {
	a, _ := New(testQuestions()).Answer([]questiongen.Choice{1, 3})
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	r, err := a.Grade(start, start.Add(90*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Pair{
		{Expected: 1, Submitted: 1},
		{Expected: 0, Submitted: 3},
		{Expected: 2, Submitted: questiongen.NoAnswer},
	}
	for i, p := range r.Pairs {
		if p != want[i] {
			t.Fatalf("pair %d = %+v, want %+v", i, p, want[i])
		}
	}
	if r.Elapsed() != 90*time.Second {
		t.Fatalf("elapsed = %s", r.Elapsed())
	}
	if !r.Pairs[1].Missed() || r.Pairs[2].Missed() {
		t.Fatal("only answered-and-wrong pairs count as missed")
	}
}
