package carryforward

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/questiongen"
	"github.com/abhisek/quizgen/internal/session"
	"github.com/abhisek/quizgen/internal/store"
)

type loaderFunc func() (*store.Run, error)

func (f loaderFunc) Load() (*store.Run, error) { return f() }

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

func question(word string) *questiongen.Question {
	return &questiongen.Question{
		Statement: "about " + word,
		Choices:   []string{word, word + "-x", word + "-y", word + "-z"},
		Solution:  0,
	}
}

// runWith builds a run whose submissions are given per question.
func runWith(subs ...questiongen.Choice) *store.Run {
	run := &store.Run{}
	for i, s := range subs {
		run.Questions = append(run.Questions, question(fmt.Sprintf("w%d", i)))
		run.Pairs = append(run.Pairs, session.Pair{Expected: 0, Submitted: s})
	}
	return run
}

func TestMissed_OnlyAnsweredIncorrectly(t *testing.T) {
	run := runWith(0, 1, questiongen.NoAnswer, 2, 0)
	got := Missed(run)

	require.Len(t, got, 2)
	assert.Equal(t, "about w1", got[0].Statement)
	assert.Equal(t, "about w3", got[1].Statement)
}

func TestSelect_TruncatesToRatio(t *testing.T) {
	run := runWith(1, 1, 1, 1, 1, 1)

	assert.Len(t, Select(run, 0.5, 5, testRand()), 2, "floor(0.5*5) = 2")
	assert.Len(t, Select(run, 0.5, 20, testRand()), 6, "never more than were missed")
	assert.Empty(t, Select(run, 0, 10, testRand()))
	assert.Nil(t, Select(nil, 0.5, 10, testRand()))
}

func TestSelect_Shuffles(t *testing.T) {
	run := runWith(1, 1, 1, 1, 1, 1, 1, 1)
	got := Select(run, 1, 8, testRand())

	require.Len(t, got, 8)
	inOrder := true
	for i, q := range got {
		if q.Statement != fmt.Sprintf("about w%d", i) {
			inOrder = false
		}
	}
	assert.False(t, inOrder, "expected a shuffled selection")
	assert.Equal(t, "about w0", run.Questions[0].Statement, "the run itself must not be reordered")
}

func TestLoad_DowngradesMissing(t *testing.T) {
	for _, underlying := range []error{fs.ErrNotExist, io.EOF, io.ErrUnexpectedEOF} {
		l := loaderFunc(func() (*store.Run, error) {
			return nil, &store.FileError{Op: "read", Path: "questions.json", Err: underlying}
		})
		run, err := Load(l, nil)
		assert.NoError(t, err, "underlying %v", underlying)
		assert.Nil(t, run)
	}
}

func TestLoad_OtherErrorsAreFatal(t *testing.T) {
	for _, underlying := range []error{store.ErrRunMismatch, errors.New("permission denied")} {
		l := loaderFunc(func() (*store.Run, error) { return nil, underlying })
		_, err := Load(l, nil)
		assert.ErrorIs(t, err, underlying)
	}
}

func TestSeed_WithStore(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	// No prior run yet.
	seeded, err := Seed(s, DefaultRatio, 4, testRand(), nil)
	require.NoError(t, err)
	assert.Empty(t, seeded)

	questions := []*questiongen.Question{question("a"), question("b"), question("c")}
	answered, err := session.New(questions).Answer([]questiongen.Choice{1, 0, 2})
	require.NoError(t, err)
	report, err := answered.Grade(time.Now(), time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Save(store.NewRun(questions, report)))

	seeded, err = Seed(s, DefaultRatio, 4, testRand(), nil)
	require.NoError(t, err)
	require.Len(t, seeded, 2)
	for _, q := range seeded {
		assert.NotEqual(t, "about b", q.Statement)
	}
}

func TestSeed_TruncatedAndCorruptFiles(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.QuestionsPath(), []byte("[1, 2"), 0o644))
	seeded, err := Seed(s, DefaultRatio, 4, testRand(), nil)
	require.NoError(t, err, "a truncated file counts as no prior run")
	assert.Empty(t, seeded)

	require.NoError(t, os.WriteFile(s.QuestionsPath(), []byte(`{"bogus": true}`), 0o644))
	_, err = Seed(s, DefaultRatio, 4, testRand(), nil)
	assert.Error(t, err)
}

func TestSeed_RejectsBadRatio(t *testing.T) {
	l := loaderFunc(func() (*store.Run, error) { return nil, nil })
	_, err := Seed(l, 1.5, 4, testRand(), nil)
	assert.Error(t, err)
}
