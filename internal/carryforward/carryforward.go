// Package carryforward reuses questions the learner got wrong in the
// previous run to seed the next one.
package carryforward

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/store"
)

// DefaultRatio is the share of a new quiz that may be carried forward.
const DefaultRatio = 0.5

// Loader returns the previous run.
type Loader interface {
	Load() (*store.Run, error)
}

// Load returns the previous run, or nil when there is none. A missing or
// truncated file means there is no prior run; every other failure is
// returned.
func Load(l Loader, logger *slog.Logger) (*store.Run, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	run, err := l.Load()
	if err != nil {
		if store.IsMissing(err) {
			logger.Debug("no prior run to carry forward", "error", err)
			return nil, nil
		}
		return nil, fmt.Errorf("load prior run: %w", err)
	}
	return run, nil
}

// Missed returns the questions of run whose recorded answer was given and
// wrong, in run order. Questions left unanswered are not included.
func Missed(run *store.Run) []*questiongen.Question {
	var out []*questiongen.Question
	for i, p := range run.Pairs {
		if p.Missed() {
			out = append(out, run.Questions[i])
		}
	}
	return out
}

// Select shuffles the missed questions of run and keeps at most
// floor(ratio * length) of them.
func Select(run *store.Run, ratio float64, length int, rng *rand.Rand) []*questiongen.Question {
	if run == nil {
		return nil
	}
	missed := Missed(run)
	rng.Shuffle(len(missed), func(i, j int) {
		missed[i], missed[j] = missed[j], missed[i]
	})

	limit := int(math.Floor(ratio * float64(length)))
	if limit < len(missed) {
		missed = missed[:max(limit, 0)]
	}
	return missed
}

// Seed loads the previous run and selects the questions to carry into a
// quiz of the given length.
func Seed(l Loader, ratio float64, length int, rng *rand.Rand, logger *slog.Logger) ([]*questiongen.Question, error) {
	if ratio < 0 || ratio > 1 {
		return nil, fmt.Errorf("carry-forward ratio must be between 0 and 1, got %g", ratio)
	}
	run, err := Load(l, logger)
	if err != nil {
		return nil, err
	}
	return Select(run, ratio, length, rng), nil
}
