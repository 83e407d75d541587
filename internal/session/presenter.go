package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/quizgen/internal/questiongen"
)

// Mode selects how questions are presented.
type Mode string

const (
	// ModeInteractive shows one question and collects its answer before
	// moving on.
	ModeInteractive Mode = "interactive"

	// ModeBatch shows every question, then collects every answer.
	ModeBatch Mode = "batch"
)

// ParseMode maps a name to its Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeInteractive, ModeBatch:
		return m, nil
	}
	return "", fmt.Errorf("unknown quiz mode %q: must be interactive or batch", s)
}

// Collected holds the raw outcome of presenting a quiz.
type Collected struct {
	Answers []questiongen.Choice
	Start   time.Time
	End     time.Time
}

// Presenter shows questions and collects one submission per question.
// Unparsable input is recorded as NoAnswer rather than failing.
type Presenter interface {
	Present(ctx context.Context, questions []*questiongen.Question) (*Collected, error)
}

// RenderFunc formats question k (1-based) for display.
type RenderFunc func(k int, q *questiongen.Question) string

func plainRender(k int, q *questiongen.Question) string { return q.Render(k) }

// TextPresenter reads answers line by line from a reader. Once input is
// closed every remaining question is recorded as NoAnswer.
type TextPresenter struct {
	mode   Mode
	in     *bufio.Reader
	out    io.Writer
	render RenderFunc
	now    func() time.Time
}

// NewTextPresenter creates a presenter for mode. A nil render uses
// Question.Render.
func NewTextPresenter(mode Mode, in io.Reader, out io.Writer, render RenderFunc) *TextPresenter {
	if render == nil {
		render = plainRender
	}
	return &TextPresenter{mode: mode, in: bufio.NewReader(in), out: out, render: render, now: time.Now}
}

func (p *TextPresenter) Present(ctx context.Context, questions []*questiongen.Question) (*Collected, error) {
	answers := make([]questiongen.Choice, 0, len(questions))
	start := p.now()

	if p.mode == ModeBatch {
		for i, q := range questions {
			fmt.Fprintln(p.out, p.render(i+1, q))
		}
	}

	closed := false
	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prompt := fmt.Sprintf("Enter your answer for question %d: ", i+1)
		if p.mode != ModeBatch {
			fmt.Fprintln(p.out, p.render(i+1, q))
			prompt = "Your answer: "
		}

		if closed {
			answers = append(answers, questiongen.NoAnswer)
			continue
		}
		fmt.Fprint(p.out, prompt)

		line, err := p.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read answer: %w", err)
			}
			closed = true
			fmt.Fprintln(p.out)
		}
		answers = append(answers, questiongen.ParseChoice(line, len(q.Choices)))

		if p.mode != ModeBatch {
			fmt.Fprintln(p.out)
		}
	}

	return &Collected{Answers: answers, Start: start, End: p.now()}, nil
}
