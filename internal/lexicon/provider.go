package lexicon

import (
	"context"
	"fmt"
)

// Provider wraps one external lexical data source.
//
// Each method resolves a single attribute for a normalized word. The
// returned Result carries the word the source actually resolved, which
// callers compare against the requested word to detect stemmed or
// corrected forms.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string

	Definitions(ctx context.Context, word string) (*Result, error)
	Synonyms(ctx context.Context, word string) (*Result, error)
	Antonyms(ctx context.Context, word string) (*Result, error)
	Examples(ctx context.Context, word string) (*Result, error)
}

// Fetch dispatches to the Provider method for attr.
func Fetch(ctx context.Context, p Provider, word string, attr Attribute) (*Result, error) {
	switch attr {
	case AttrDefinitions:
		return p.Definitions(ctx, word)
	case AttrSynonyms:
		return p.Synonyms(ctx, word)
	case AttrAntonyms:
		return p.Antonyms(ctx, word)
	case AttrExamples:
		return p.Examples(ctx, word)
	default:
		return nil, fmt.Errorf("unsupported attribute %s", attr)
	}
}
