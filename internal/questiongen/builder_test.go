package questiongen

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/quizgen/internal/lexicon"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// fakeDrawer hands out words in order.
type fakeDrawer struct {
	words []string
}

func (d *fakeDrawer) SelectN(n int) ([]string, error) {
	if n > len(d.words) {
		return nil, errors.New("exhausted")
	}
	out := d.words[:n:n]
	d.words = d.words[n:]
	return out, nil
}

func (d *fakeDrawer) Remaining() int { return len(d.words) }

func chainOf(providers ...lexicon.Provider) *lexicon.Chain {
	return lexicon.NewChain(nil, providers...)
}

func assertInvariants(t *testing.T, q *Question, n int, word string) {
	t.Helper()
	if err := q.ValidateFor(n, word); err != nil {
		t.Fatalf("question violates invariants: %v (%+v)", err, q)
	}
}

func TestSynonymBuilder_CatScenario(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrSynonyms, "cat", "feline", "kitty", "tom", " CAT ").
		SetResult(lexicon.AttrExamples, "cat", "The cat sat on the mat.")

	b := NewSynonymBuilder(chainOf(p), lexicon.AttrExamples, 4, testRand())
	q, err := b.Build(context.Background(), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertInvariants(t, q, 4, "cat")
	got := slices.Clone(q.Choices)
	slices.Sort(got)
	if strings.Join(got, ",") != "cat,feline,kitty,tom" {
		t.Fatalf("unexpected choices %v", q.Choices)
	}
	if q.Answer() != "cat" {
		t.Fatalf("solution points at %q", q.Answer())
	}
	if q.Statement != "The [.....] sat on the mat." {
		t.Fatalf("statement not masked: %q", q.Statement)
	}
}

func TestSynonymBuilder_TooFewSynonyms(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrSynonyms, "glum", "sad", "gloomy").
		SetResult(lexicon.AttrDefinitions, "glum", "looking dejected")

	b := NewSynonymBuilder(chainOf(p), lexicon.AttrDefinitions, 4, testRand())
	_, err := b.Build(context.Background(), "glum")
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected DataError, got %v", err)
	}
	var de *DataError
	if !errors.As(err, &de) || de.Word != "glum" {
		t.Fatalf("expected DataError for glum, got %v", err)
	}
	if p.CallCount() != 1 {
		t.Fatalf("statement lookup should be skipped after a shortfall, got %d calls", p.CallCount())
	}
}

func TestSynonymBuilder_DataErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *lexicon.MockProvider)
	}{
		{"resolved word mismatch between attributes", func(p *lexicon.MockProvider) {
			p.SetResult(lexicon.AttrSynonyms, "running", "dash", "sprint", "jog")
			p.SetResult(lexicon.AttrExamples, "Running", "Running home.")
		}},
		{"synonyms resolved for another word", func(p *lexicon.MockProvider) {
			p.SetResult(lexicon.AttrSynonyms, "run", "dash", "sprint", "jog")
			p.SetResult(lexicon.AttrExamples, "run", "We run daily.")
		}},
		{"no examples", func(p *lexicon.MockProvider) {
			p.SetResult(lexicon.AttrSynonyms, "running", "dash", "sprint", "jog")
			p.SetResult(lexicon.AttrExamples, "running", " ")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lexicon.NewMockProvider("mock")
			tt.setup(p)
			b := NewSynonymBuilder(chainOf(p), lexicon.AttrExamples, 4, testRand())
			_, err := b.Build(context.Background(), "running")
			if !errors.Is(err, ErrData) {
				t.Fatalf("expected DataError, got %v", err)
			}
		})
	}
}

func TestSynonymBuilder_CrossProvider(t *testing.T) {
	syn := lexicon.NewMockProvider("thesaurus").
		SetResult(lexicon.AttrSynonyms, "happy", "glad", "joyful", "content").
		SetError(lexicon.AttrDefinitions, &lexicon.ErrNotFound{Word: "happy"})
	def := lexicon.NewMockProvider("dictionary").
		SetResult(lexicon.AttrDefinitions, "happy", "feeling pleasure")

	b := NewSynonymBuilder(chainOf(syn, def), lexicon.AttrDefinitions, 4, testRand())
	q, err := b.Build(context.Background(), "happy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInvariants(t, q, 4, "happy")
	if q.Statement != "feeling pleasure" {
		t.Fatalf("unexpected statement %q", q.Statement)
	}
}

func TestSynonymBuilder_APIErrorPassesThrough(t *testing.T) {
	p := lexicon.NewMockProvider("down").
		SetError(lexicon.AttrSynonyms, &lexicon.ErrProviderUnavailable{Provider: "down"})

	_, err := NewSynonymBuilder(chainOf(p), lexicon.AttrExamples, 4, testRand()).Build(context.Background(), "cat")
	if !lexicon.IsAPIError(err) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if errors.Is(err, ErrData) {
		t.Fatal("APIError must not be reported as DataError")
	}
}

func TestSynonymBuilder_Deterministic(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrSynonyms, "cat", "feline", "kitty", "tom", "moggy", "puss").
		SetResult(lexicon.AttrExamples, "cat", "one cat", "two cats", "red cat")

	q1, err1 := NewSynonymBuilder(chainOf(p), lexicon.AttrExamples, 3, testRand()).Build(context.Background(), "cat")
	q2, err2 := NewSynonymBuilder(chainOf(p), lexicon.AttrExamples, 3, testRand()).Build(context.Background(), "cat")
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if q1.Statement != q2.Statement || !slices.Equal(q1.Choices, q2.Choices) || q1.Solution != q2.Solution {
		t.Fatalf("same seed produced different questions: %+v vs %+v", q1, q2)
	}
}

func TestPoolBuilder_JoinedSynonyms(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrSynonyms, "happy", "glad", "joyful", "content", "Happy")
	pool := &fakeDrawer{words: []string{"sad", "angry", "calm", "bored"}}

	b := NewPoolBuilder(chainOf(p), pool, lexicon.AttrSynonyms, 4, testRand())
	q, err := b.Build(context.Background(), "happy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInvariants(t, q, 4, "happy")

	if !strings.HasPrefix(q.Statement, "Which word has the synonyms: ") {
		t.Fatalf("unexpected statement %q", q.Statement)
	}
	for _, s := range []string{"glad", "joyful", "content"} {
		if !strings.Contains(q.Statement, s) {
			t.Fatalf("statement %q misses %q", q.Statement, s)
		}
	}
	if pool.Remaining() != 1 {
		t.Fatalf("expected 3 distractors consumed, %d left", pool.Remaining())
	}
	for _, d := range []string{"sad", "angry", "calm"} {
		if !slices.Contains(q.Choices, d) {
			t.Fatalf("expected distractor %q in %v", d, q.Choices)
		}
	}
}

func TestPoolBuilder_Antonyms(t *testing.T) {
	p := lexicon.NewMockProvider("mock").SetResult(lexicon.AttrAntonyms, "hot", "cold")
	pool := &fakeDrawer{words: []string{"warm"}}

	q, err := NewPoolBuilder(chainOf(p), pool, lexicon.AttrAntonyms, 2, testRand()).Build(context.Background(), "hot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Statement != "Which word is the opposite of: cold?" {
		t.Fatalf("unexpected statement %q", q.Statement)
	}
	assertInvariants(t, q, 2, "hot")
}

func TestPoolBuilder_SingleStatements(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrDefinitions, "lucid", "expressed clearly").
		SetResult(lexicon.AttrExamples, "lucid", "A lucid explanation.")

	def, err := NewPoolBuilder(chainOf(p), &fakeDrawer{words: []string{"vague", "murky"}}, lexicon.AttrDefinitions, 3, testRand()).
		Build(context.Background(), "lucid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Statement != "Which word matches the definition: expressed clearly" {
		t.Fatalf("unexpected statement %q", def.Statement)
	}

	ex, err := NewPoolBuilder(chainOf(p), &fakeDrawer{words: []string{"vague", "murky"}}, lexicon.AttrExamples, 3, testRand()).
		Build(context.Background(), "lucid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Statement != "A [.....] explanation." {
		t.Fatalf("unexpected statement %q", ex.Statement)
	}
	assertInvariants(t, ex, 3, "lucid")
}

func TestPoolBuilder_Shortfalls(t *testing.T) {
	p := lexicon.NewMockProvider("mock").
		SetResult(lexicon.AttrSynonyms, "happy", "glad").
		SetResult(lexicon.AttrExamples, "happy", "I am happy.")

	_, err := NewPoolBuilder(chainOf(p), &fakeDrawer{words: []string{"a", "b", "c"}}, lexicon.AttrSynonyms, 4, testRand()).
		Build(context.Background(), "happy")
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected DataError for too few synonyms, got %v", err)
	}

	pool := &fakeDrawer{words: []string{"a", "b"}}
	_, err = NewPoolBuilder(chainOf(p), pool, lexicon.AttrExamples, 4, testRand()).
		Build(context.Background(), "happy")
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected DataError for a short pool, got %v", err)
	}
	if pool.Remaining() != 2 {
		t.Fatal("a short pool must not be consumed")
	}
}

func TestNew(t *testing.T) {
	chain := chainOf(lexicon.NewMockProvider("mock"))

	b, err := New(Config{Kind: KindDefinitions, Choices: 4}, chain, nil, testRand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb, ok := b.(*SynonymBuilder); !ok || sb.statement != lexicon.AttrDefinitions {
		t.Fatalf("unexpected builder %#v", b)
	}

	if _, err := New(Config{Kind: KindPoolExamples, Choices: 4}, chain, nil, testRand()); err == nil {
		t.Fatal("expected pool kind without a pool to fail")
	}
	if _, err := New(Config{Kind: KindSynonyms, Choices: 1}, chain, nil, testRand()); err == nil {
		t.Fatal("expected too few choices to fail")
	}
	if _, err := New(Config{Kind: "rhymes", Choices: 4}, chain, nil, testRand()); err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Pool-Antonyms ")
	if err != nil || k != KindPoolAntonyms {
		t.Fatalf("ParseKind() = %q, %v", k, err)
	}
	if !k.UsesPool() || k.Attribute() != lexicon.AttrAntonyms {
		t.Fatal("unexpected kind properties")
	}
	if KindSynonyms.UsesPool() || KindSynonyms.Attribute() != lexicon.AttrExamples {
		t.Fatal("synonyms kind should use examples as statements without a pool")
	}
}
