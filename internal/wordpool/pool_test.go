package wordpool

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/store"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"  cat ", "", "Dog", "\t", "CAT", "dog", "bird\r"})
	assert.Equal(t, []string{"cat", "Dog", "bird"}, got)
}

func TestSelect_WithoutReplacement(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	p := New(testRand(), words)
	require.Equal(t, 5, p.Size())

	var got []string
	for range p.Size() {
		w, err := p.Select()
		require.NoError(t, err)
		got = append(got, w)
	}

	sort.Strings(got)
	assert.Equal(t, words, got)
	assert.Equal(t, 0, p.Remaining())

	_, err := p.Select()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestSelect_Deterministic(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	p1 := New(testRand(), words)
	p2 := New(testRand(), words)

	for range len(words) {
		w1, _ := p1.Select()
		w2, _ := p2.Select()
		assert.Equal(t, w1, w2)
	}
}

func TestSelectN(t *testing.T) {
	p := New(testRand(), []string{"a", "b", "c"})

	got, err := p.SelectN(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])
	assert.Equal(t, 1, p.Remaining())

	_, err = p.SelectN(2)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, p.Remaining(), "a failed SelectN must not consume words")
}

func TestLoad_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("cat\ndog\n\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Dog\r\nbird\n"), 0o644))

	p, err := Load(testRand(), a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testRand(), filepath.Join(t.TempDir(), "missing.txt"))
	var fe *store.FileError
	require.True(t, errors.As(err, &fe), "expected FileError, got %v", err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmptyPool(t *testing.T) {
	p := New(testRand(), nil)
	assert.Equal(t, 0, p.Size())
	_, err := p.Select()
	assert.ErrorIs(t, err, ErrExhausted)
}
