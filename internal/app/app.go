// Package app wires a quiz run together: it seeds the quiz with questions
// carried forward from the last run, tops it up with freshly built
// questions, presents it, grades it and saves the result.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/quizgen/internal/carryforward"
	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/wordpool"
)

// Options are the validated settings of one run.
type Options struct {
	Kind    questiongen.Kind
	Choices int
	Length  int
	Sources []string

	CarryForward bool
	CarryRatio   float64
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Length < 1 {
		return fmt.Errorf("quiz length must be at least 1, got %d", o.Length)
	}
	if len(o.Sources) == 0 {
		return fmt.Errorf("at least one word list is required")
	}
	if o.CarryForward && (o.CarryRatio < 0 || o.CarryRatio > 1) {
		return fmt.Errorf("carry-forward ratio must be between 0 and 1, got %g", o.CarryRatio)
	}
	return questiongen.Config{Kind: o.Kind, Choices: o.Choices}.Validate()
}

// App holds the collaborators of a run.
type App struct {
	Lookup    questiongen.Lookuper
	Store     *store.Store
	Presenter session.Presenter
	Rand      *rand.Rand
	Logger    *slog.Logger

	// Out receives user-facing notices and the grade report.
	Out io.Writer
}

// Run executes one quiz. It returns the saved run, or nil when no
// question could be built.
func (a *App) Run(ctx context.Context, opts Options) (*store.Run, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := a.logger()

	pool, err := wordpool.Load(a.Rand, opts.Sources...)
	if err != nil {
		return nil, err
	}
	logger.Debug("word pool loaded", "words", pool.Size(), "sources", len(opts.Sources))

	var seed []*questiongen.Question
	if opts.CarryForward {
		seed, err = carryforward.Seed(a.Store, opts.CarryRatio, opts.Length, a.Rand, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("carried forward missed questions", "count", len(seed))
	}

	builder, err := questiongen.New(questiongen.Config{Kind: opts.Kind, Choices: opts.Choices}, a.Lookup, pool, a.Rand)
	if err != nil {
		return nil, err
	}

	questions, err := Assemble(ctx, builder, pool, seed, opts.Length, logger)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		fmt.Fprintln(a.Out, "No questions could be built from the word list.")
		return nil, nil
	}
	if len(questions) < opts.Length {
		fmt.Fprintf(a.Out, "Only %d of %d questions could be built.\n\n", len(questions), opts.Length)
	}

	collected, err := a.Presenter.Present(ctx, questions)
	if err != nil {
		return nil, err
	}

	answered, err := session.New(questions).Answer(collected.Answers)
	if err != nil {
		return nil, err
	}
	report, err := answered.Grade(collected.Start, collected.End)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(a.Out, report.Format(components.ReportMarks()))

	run := store.NewRun(questions, report)
	if err := a.Store.Save(run); err != nil {
		return nil, err
	}
	logger.Debug("run saved", "run_id", run.ID, "dir", a.Store.Dir())
	return run, nil
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// Picker hands out candidate target words.
type Picker interface {
	Select() (string, error)
}

// Assemble fills a quiz of length questions. The seed questions come
// first; fresh questions are built from words drawn from pool until the
// quiz is full or the pool runs dry. Words whose data is unusable are
// skipped; any other build failure, such as every lexical provider
// failing, aborts.
func Assemble(ctx context.Context, b questiongen.Builder, pool Picker, seed []*questiongen.Question, length int, logger *slog.Logger) ([]*questiongen.Question, error) {
	questions := make([]*questiongen.Question, 0, length)
	used := make(map[string]bool)
	for _, q := range seed {
		if len(questions) == length {
			break
		}
		questions = append(questions, q)
		used[strings.ToLower(q.Answer())] = true
	}

	skipped := 0
	for len(questions) < length {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word, err := pool.Select()
		if errors.Is(err, wordpool.ErrExhausted) {
			logger.Debug("word pool exhausted", "built", len(questions), "wanted", length)
			break
		}
		if err != nil {
			return nil, err
		}
		if used[strings.ToLower(word)] {
			continue
		}

		q, err := b.Build(ctx, word)
		if errors.Is(err, questiongen.ErrData) {
			skipped++
			logger.Debug("skipping word", "word", word, "error", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("build question for %q: %w", word, err)
		}
		used[strings.ToLower(word)] = true
		questions = append(questions, q)
	}

	logger.Info("quiz assembled", "questions", len(questions), "carried", min(len(seed), length), "skipped", skipped)
	return questions, nil
}
