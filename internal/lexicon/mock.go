package lexicon

import (
	"context"
	"sync"
)

// MockProvider is a deterministic Provider for tests. Results and errors
// are keyed by attribute; every lookup is recorded.
type MockProvider struct {
	name string

	mu      sync.Mutex
	results map[Attribute]*Result
	errs    map[Attribute]error
	Calls   []MockCall
}

// MockCall records one lookup made against a MockProvider.
type MockCall struct {
	Word      string
	Attribute Attribute
}

// NewMockProvider creates an empty MockProvider. Lookups for attributes
// without a canned result fail with ErrNotFound.
func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		name:    name,
		results: make(map[Attribute]*Result),
		errs:    make(map[Attribute]error),
	}
}

// SetResult makes lookups of attr return values resolved for word.
func (m *MockProvider) SetResult(attr Attribute, word string, values ...string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[attr] = &Result{Attribute: attr, Word: word, Values: values}
	delete(m.errs, attr)
	return m
}

// SetError makes lookups of attr fail with err.
func (m *MockProvider) SetError(attr Attribute, err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[attr] = err
	return m
}

func (m *MockProvider) Name() string { return m.name }

func (m *MockProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrDefinitions)
}

func (m *MockProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrSynonyms)
}

func (m *MockProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrAntonyms)
}

func (m *MockProvider) Examples(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrExamples)
}

// CallCount returns the number of lookups made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockProvider) lookup(word string, attr Attribute) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Word: word, Attribute: attr})

	if err, ok := m.errs[attr]; ok {
		return nil, err
	}
	res, ok := m.results[attr]
	if !ok {
		return nil, &ErrNotFound{Word: word}
	}

	// Hand out a copy so callers can mutate freely.
	out := *res
	out.Values = append([]string(nil), res.Values...)
	out.Provider = m.name
	return &out, nil
}

// MapProvider is a Provider backed by per-word canned results, useful when
// a test drives many words through one chain.
type MapProvider struct {
	name    string
	entries map[string]map[Attribute][]string
}

// NewMapProvider creates a MapProvider. entries maps word → attribute → values.
// Missing words or attributes fail with ErrNotFound.
func NewMapProvider(name string, entries map[string]map[Attribute][]string) *MapProvider {
	return &MapProvider{name: name, entries: entries}
}

func (m *MapProvider) Name() string { return m.name }

func (m *MapProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrDefinitions)
}

func (m *MapProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrSynonyms)
}

func (m *MapProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrAntonyms)
}

func (m *MapProvider) Examples(ctx context.Context, word string) (*Result, error) {
	return m.lookup(word, AttrExamples)
}

func (m *MapProvider) lookup(word string, attr Attribute) (*Result, error) {
	values, ok := m.entries[word][attr]
	if !ok {
		return nil, &ErrNotFound{Word: word}
	}
	return &Result{
		Attribute: attr,
		Word:      word,
		Values:    append([]string(nil), values...),
		Provider:  m.name,
	}, nil
}
