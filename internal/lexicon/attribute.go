package lexicon

import (
	"fmt"
	"strings"
)

// Attribute is one of the four lexical attributes a provider can resolve.
type Attribute int

const (
	AttrDefinitions Attribute = iota
	AttrSynonyms
	AttrAntonyms
	AttrExamples
)

// Attributes lists every attribute in declaration order.
var Attributes = []Attribute{AttrDefinitions, AttrSynonyms, AttrAntonyms, AttrExamples}

func (a Attribute) String() string {
	switch a {
	case AttrDefinitions:
		return "definitions"
	case AttrSynonyms:
		return "synonyms"
	case AttrAntonyms:
		return "antonyms"
	case AttrExamples:
		return "examples"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

// ParseAttribute maps a name such as "synonyms" to its Attribute.
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "definitions", "definition":
		return AttrDefinitions, nil
	case "synonyms", "synonym":
		return AttrSynonyms, nil
	case "antonyms", "antonym":
		return AttrAntonyms, nil
	case "examples", "example":
		return AttrExamples, nil
	}
	return 0, fmt.Errorf("unknown lexical attribute %q: must be definitions, synonyms, antonyms or examples", s)
}

// Result is a provider's answer for one attribute of one word.
type Result struct {
	// Attribute is the attribute these values belong to.
	Attribute Attribute

	// Word is the word the provider resolved the lookup for. It may differ
	// from the requested word when the provider stems or corrects input.
	Word string

	// Values holds the definitions, synonyms, antonyms or example
	// sentences, in provider order.
	Values []string

	// Provider names the provider that produced this result.
	Provider string
}
