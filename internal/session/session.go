// Package session runs the two-phase quiz lifecycle. A Session starts
// Unanswered, is answered exactly once to produce an Answered session, and
// an Answered session is graded exactly once into a Report.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizgen/internal/questiongen"
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	PhaseUnanswered Phase = iota
	PhaseAnswered
)

func (p Phase) String() string {
	if p == PhaseAnswered {
		return "answered"
	}
	return "unanswered"
}

var (
	// ErrAlreadyAnswered is returned when Answer is called a second time.
	ErrAlreadyAnswered = errors.New("session already answered")

	// ErrAlreadyGraded is returned when Grade is called a second time.
	ErrAlreadyGraded = errors.New("session already graded")

	// ErrLengthMismatch is returned when more submissions than questions
	// are supplied.
	ErrLengthMismatch = errors.New("more submissions than questions")
)

// Session is an ordered list of questions awaiting answers.
type Session struct {
	questions []*questiongen.Question
	phase     Phase
}

// New creates an Unanswered session over questions.
func New(questions []*questiongen.Question) *Session {
	return &Session{questions: questions}
}

// Questions returns the questions in order.
func (s *Session) Questions() []*questiongen.Question { return s.questions }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Answer moves the session to PhaseAnswered. Submissions align with the
// questions by position; missing trailing entries count as NoAnswer, and
// entries that do not address a choice of their question are recorded as
// NoAnswer too.
func (s *Session) Answer(submissions []questiongen.Choice) (*Answered, error) {
	if s.phase == PhaseAnswered {
		return nil, ErrAlreadyAnswered
	}
	if len(submissions) > len(s.questions) {
		return nil, fmt.Errorf("%w: %d submissions for %d questions", ErrLengthMismatch, len(submissions), len(s.questions))
	}

	subs := make([]questiongen.Choice, len(s.questions))
	for i, q := range s.questions {
		subs[i] = questiongen.NoAnswer
		if i < len(submissions) && submissions[i].Valid(len(q.Choices)) {
			subs[i] = submissions[i]
		}
	}

	s.phase = PhaseAnswered
	return &Answered{questions: s.questions, submissions: subs}, nil
}

// Answered is a session whose submissions have been recorded.
type Answered struct {
	questions   []*questiongen.Question
	submissions []questiongen.Choice
	graded      bool
}

// Questions returns the questions in order.
func (a *Answered) Questions() []*questiongen.Question { return a.questions }

// Submissions returns one entry per question, NoAnswer where none was given.
func (a *Answered) Submissions() []questiongen.Choice { return a.submissions }

// Grade builds the Report for a quiz that ran from start to end.
func (a *Answered) Grade(start, end time.Time) (*Report, error) {
	if a.graded {
		return nil, ErrAlreadyGraded
	}
	a.graded = true

	pairs := make([]Pair, len(a.questions))
	texts := make([]string, len(a.questions))
	for i, q := range a.questions {
		pairs[i] = Pair{Expected: q.Solution, Submitted: a.submissions[i]}
		texts[i] = q.Answer()
	}
	return NewReport(start, end, pairs, texts), nil
}
