// Package wordpool holds the candidate words for a quiz run and hands them
// out at random without replacement.
package wordpool

import (
	"errors"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/abhisek/quizgen/internal/store"
)

// ErrExhausted is returned by Select once every word has been offered.
var ErrExhausted = errors.New("word pool exhausted")

// Pool is a set of distinct words that shrinks on every selection.
// It is not safe for concurrent use.
type Pool struct {
	words []string
	size  int
	rng   *rand.Rand
}

// New builds a Pool from raw lines. Lines are trimmed, blanks dropped, and
// duplicates removed case-insensitively keeping the first spelling seen.
func New(rng *rand.Rand, lines []string) *Pool {
	words := Normalize(lines)
	return &Pool{words: words, size: len(words), rng: rng}
}

// Load reads one word per line from every path and merges them into a
// single deduplicated Pool.
func Load(rng *rand.Rand, paths ...string) (*Pool, error) {
	var lines []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &store.FileError{Op: "read word list", Path: path, Err: err}
		}
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	return New(rng, lines), nil
}

// Normalize trims lines, drops blanks and removes case-insensitive duplicates.
func Normalize(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}

// Select removes and returns one word chosen uniformly among the words not
// yet offered.
func (p *Pool) Select() (string, error) {
	if len(p.words) == 0 {
		return "", ErrExhausted
	}
	i := p.rng.IntN(len(p.words))
	w := p.words[i]

	last := len(p.words) - 1
	p.words[i] = p.words[last]
	p.words = p.words[:last]
	return w, nil
}

// SelectN removes n words. It fails with ErrExhausted, consuming nothing,
// when fewer than n remain.
func (p *Pool) SelectN(n int) ([]string, error) {
	if n > len(p.words) {
		return nil, ErrExhausted
	}
	out := make([]string, 0, n)
	for range n {
		w, _ := p.Select()
		out = append(out, w)
	}
	return out, nil
}

// Remaining reports how many words have not been offered yet.
func (p *Pool) Remaining() int { return len(p.words) }

// Size reports how many distinct words the pool started with.
func (p *Pool) Size() int { return p.size }
