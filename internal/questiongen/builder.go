// Package questiongen turns lexical data into validated multiple-choice
// questions.
//
// Two strategies are available. The synonym builder uses a word's own
// synonyms as distractors and a definition or example as the statement.
// The pool builder uses other words from the run's word list as
// distractors. Both return a *DataError when a word's data cannot satisfy
// the question invariants and pass lexicon.APIError through untouched.
package questiongen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/quizgen/internal/lexicon"
)

// Lookuper resolves one lexical attribute for a word.
type Lookuper interface {
	Lookup(ctx context.Context, word string, attr lexicon.Attribute) (*lexicon.Result, error)
}

// Drawer hands out distractor words without replacement.
type Drawer interface {
	SelectN(n int) ([]string, error)
	Remaining() int
}

// Builder produces one question for a target word.
type Builder interface {
	Build(ctx context.Context, word string) (*Question, error)
}

// Config controls question shape.
type Config struct {
	// Kind selects the strategy and statement attribute.
	Kind Kind

	// Choices is the number of choices per question.
	Choices int
}

// DefaultConfig returns four-choice synonym questions.
func DefaultConfig() Config {
	return Config{Kind: KindSynonyms, Choices: 4}
}

// Validate checks the kind and choice count.
func (c Config) Validate() error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Choices < MinChoices || c.Choices > MaxChoices {
		return fmt.Errorf("choices must be between %d and %d, got %d", MinChoices, MaxChoices, c.Choices)
	}
	return nil
}

// New returns the Builder for cfg.Kind. pool is only used by the pool
// kinds and may be nil otherwise.
func New(cfg Config, lookup Lookuper, pool Drawer, rng *rand.Rand) (Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Kind.UsesPool() {
		if pool == nil {
			return nil, fmt.Errorf("quiz kind %s needs a word pool", cfg.Kind)
		}
		return NewPoolBuilder(lookup, pool, cfg.Kind.Attribute(), cfg.Choices, rng), nil
	}
	return NewSynonymBuilder(lookup, cfg.Kind.Attribute(), cfg.Choices, rng), nil
}

// cleanValues trims values, drops blanks and entries equal to word, and
// removes case-insensitive duplicates.
func cleanValues(values []string, word string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, word) {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// pickN returns n distinct elements of values chosen uniformly.
func pickN(rng *rand.Rand, values []string, n int) []string {
	idx := rng.Perm(len(values))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}
