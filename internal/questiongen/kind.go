package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/lexicon"
)

// Kind selects the question-building strategy and the lexical attribute
// that drives the statement.
type Kind string

const (
	// KindSynonyms asks which word fits an example sentence; distractors
	// are the word's own synonyms.
	KindSynonyms Kind = "synonyms"

	// KindDefinitions asks which word matches a definition; distractors
	// are the word's own synonyms.
	KindDefinitions Kind = "definitions"

	// The pool kinds draw distractors from other words in the list.
	KindPoolSynonyms    Kind = "pool-synonyms"
	KindPoolAntonyms    Kind = "pool-antonyms"
	KindPoolDefinitions Kind = "pool-definitions"
	KindPoolExamples    Kind = "pool-examples"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindSynonyms, KindDefinitions,
	KindPoolSynonyms, KindPoolAntonyms, KindPoolDefinitions, KindPoolExamples,
}

// ParseKind maps a name to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	names := make([]string, len(Kinds))
	for i, known := range Kinds {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown quiz kind %q: must be one of %s", s, strings.Join(names, ", "))
}

// UsesPool reports whether the kind draws distractors from the word pool.
func (k Kind) UsesPool() bool {
	return strings.HasPrefix(string(k), "pool-")
}

// Attribute returns the lexical attribute that drives the statement.
func (k Kind) Attribute() lexicon.Attribute {
	switch k {
	case KindDefinitions, KindPoolDefinitions:
		return lexicon.AttrDefinitions
	case KindPoolSynonyms:
		return lexicon.AttrSynonyms
	case KindPoolAntonyms:
		return lexicon.AttrAntonyms
	default:
		return lexicon.AttrExamples
	}
}
