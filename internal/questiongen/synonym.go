package questiongen

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/quizgen/internal/lexicon"
)

// SynonymBuilder builds questions whose distractors are the target word's
// own synonyms. The statement is a definition or an example sentence.
type SynonymBuilder struct {
	lookup    Lookuper
	statement lexicon.Attribute
	choices   int
	rng       *rand.Rand
}

// NewSynonymBuilder creates a SynonymBuilder with n choices per question.
func NewSynonymBuilder(lookup Lookuper, statement lexicon.Attribute, n int, rng *rand.Rand) *SynonymBuilder {
	return &SynonymBuilder{lookup: lookup, statement: statement, choices: n, rng: rng}
}

func (b *SynonymBuilder) Build(ctx context.Context, word string) (*Question, error) {
	syn, err := b.lookup.Lookup(ctx, word, lexicon.AttrSynonyms)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(syn.Word, word) {
		return nil, dataErrorf(word, "synonyms were resolved for %q", syn.Word)
	}

	synonyms := cleanValues(syn.Values, word)
	if len(synonyms) < b.choices-1 {
		return nil, dataErrorf(word, "%d usable synonyms, need %d", len(synonyms), b.choices-1)
	}

	st, err := b.lookup.Lookup(ctx, word, b.statement)
	if err != nil {
		return nil, err
	}
	if st.Word != syn.Word {
		return nil, dataErrorf(word, "%s resolved %q but synonyms resolved %q", b.statement, st.Word, syn.Word)
	}
	statements := cleanValues(st.Values, "")
	if len(statements) == 0 {
		return nil, dataErrorf(word, "no %s", b.statement)
	}
	statement := statements[b.rng.IntN(len(statements))]

	choices := append(pickN(b.rng, synonyms, b.choices-1), word)
	b.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	q := &Question{Statement: Mask(statement, word), Choices: choices}
	for i, c := range choices {
		if c == word {
			q.Solution = Choice(i)
			break
		}
	}
	if err := q.ValidateFor(b.choices, word); err != nil {
		return nil, dataErrorf(word, "%v", err)
	}
	return q, nil
}
