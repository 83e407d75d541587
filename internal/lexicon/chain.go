package lexicon

import (
	"context"
	"log/slog"
)

// Chain tries its providers in fixed priority order and returns the first
// successful result. Providers are consulted one at a time; a failure for
// one attribute does not disqualify a provider for the next lookup.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChain creates a Chain over providers, highest priority first.
// A nil logger discards log output.
func NewChain(logger *slog.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Chain{providers: providers, logger: logger}
}

// Providers returns the providers in priority order.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Lookup resolves attr for word. It returns the first non-error result
// and never retries a provider within one call. When every provider
// fails the error is an *APIError wrapping the last failure.
func (c *Chain) Lookup(ctx context.Context, word string, attr Attribute) (*Result, error) {
	if len(c.providers) == 0 {
		return nil, &APIError{Word: word, Attribute: attr, Err: ErrNoProviders}
	}

	var attempts []error
	for _, p := range c.providers {
		res, err := Fetch(ctx, p, word, attr)
		if err == nil {
			if res.Provider == "" {
				res.Provider = p.Name()
			}
			res.Attribute = attr
			return res, nil
		}
		c.logger.Debug("lexical provider failed",
			"provider", p.Name(), "word", word, "attribute", attr.String(), "error", err)
		attempts = append(attempts, err)
	}

	last := attempts[len(attempts)-1]
	c.logger.Warn("all lexical providers failed",
		"word", word, "attribute", attr.String(), "providers", len(c.providers), "error", last)
	return nil, &APIError{Word: word, Attribute: attr, Attempts: attempts, Err: last}
}
