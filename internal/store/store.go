// Package store persists the most recent quiz run as two JSON files: the
// questions that were asked and the graded answer pairs. Both files carry
// the same run id so a reader can tell they belong together.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names inside the data directory.
const (
	QuestionsFile = "questions.json"
	AnswersFile   = "answers.json"
)

// Store reads and writes run files in one directory.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &FileError{Op: "create data dir", Path: dir, Err: err}
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// QuestionsPath returns the path of the persisted questions.
func (s *Store) QuestionsPath() string { return filepath.Join(s.dir, QuestionsFile) }

// AnswersPath returns the path of the persisted answer pairs.
func (s *Store) AnswersPath() string { return filepath.Join(s.dir, AnswersFile) }

// DefaultDataDir resolves the data directory in priority order:
// 1. QUIZGEN_DATA_DIR environment variable
// 2. $XDG_DATA_HOME/quizgen
// 3. ~/.local/share/quizgen
func DefaultDataDir() (string, error) {
	if p := os.Getenv("QUIZGEN_DATA_DIR"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quizgen"), nil
}
