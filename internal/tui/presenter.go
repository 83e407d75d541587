package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
)

// Presenter runs a quiz as a full-screen Bubble Tea program.
type Presenter struct {
	opts []tea.ProgramOption
}

// NewPresenter creates a Presenter. opts are passed to tea.NewProgram.
func NewPresenter(opts ...tea.ProgramOption) *Presenter {
	return &Presenter{opts: opts}
}

func (p *Presenter) Present(ctx context.Context, questions []*questiongen.Question) (*session.Collected, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)
	final, err := tea.NewProgram(NewModel(questions), opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("run quiz UI: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	return m.Collected(), nil
}
