package questiongen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/quizgen/internal/lexicon"
)

// PoolBuilder builds questions whose distractors are other words from the
// run's word pool. Drawn distractors are consumed from the pool.
type PoolBuilder struct {
	lookup  Lookuper
	pool    Drawer
	attr    lexicon.Attribute
	choices int
	rng     *rand.Rand
}

// NewPoolBuilder creates a PoolBuilder with n choices per question.
func NewPoolBuilder(lookup Lookuper, pool Drawer, attr lexicon.Attribute, n int, rng *rand.Rand) *PoolBuilder {
	return &PoolBuilder{lookup: lookup, pool: pool, attr: attr, choices: n, rng: rng}
}

func (b *PoolBuilder) Build(ctx context.Context, word string) (*Question, error) {
	res, err := b.lookup.Lookup(ctx, word, b.attr)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(res.Word, word) {
		return nil, dataErrorf(word, "%s were resolved for %q", b.attr, res.Word)
	}

	var statement string
	switch b.attr {
	case lexicon.AttrSynonyms, lexicon.AttrAntonyms:
		values := cleanValues(res.Values, word)
		if len(values) < b.choices-1 {
			return nil, dataErrorf(word, "%d usable %s, need %d", len(values), b.attr, b.choices-1)
		}
		statement = joinedStatement(b.attr, pickN(b.rng, values, b.choices-1))
	default:
		values := cleanValues(res.Values, "")
		if len(values) == 0 {
			return nil, dataErrorf(word, "no %s", b.attr)
		}
		statement = singleStatement(b.attr, values[b.rng.IntN(len(values))])
	}

	if b.pool.Remaining() < b.choices-1 {
		return nil, dataErrorf(word, "%d words left in the pool, need %d distractors", b.pool.Remaining(), b.choices-1)
	}
	distractors, err := b.pool.SelectN(b.choices - 1)
	if err != nil {
		return nil, err
	}

	at := b.rng.IntN(b.choices)
	choices := slices.Insert(distractors, at, word)

	q := &Question{Statement: Mask(statement, word), Choices: choices, Solution: Choice(at)}
	if err := q.ValidateFor(b.choices, word); err != nil {
		return nil, dataErrorf(word, "%v", err)
	}
	return q, nil
}

func joinedStatement(attr lexicon.Attribute, values []string) string {
	list := strings.Join(values, ", ")
	if attr == lexicon.AttrAntonyms {
		return fmt.Sprintf("Which word is the opposite of: %s?", list)
	}
	return fmt.Sprintf("Which word has the synonyms: %s?", list)
}

func singleStatement(attr lexicon.Attribute, value string) string {
	if attr == lexicon.AttrDefinitions {
		return fmt.Sprintf("Which word matches the definition: %s", value)
	}
	return value
}
