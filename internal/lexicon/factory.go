package lexicon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/abhisek/quizgen/internal/llm"
)

// NewChainFromConfig builds a Chain from cfg in cfg.Order. Providers that
// lack credentials are skipped with a notice on warn; it is an error when
// none remain.
func NewChainFromConfig(ctx context.Context, cfg Config, logger *slog.Logger, warn io.Writer) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if warn == nil {
		warn = io.Discard
	}

	client := &http.Client{Timeout: cfg.Timeout}

	var providers []Provider
	for _, name := range cfg.Order {
		p, err := newProvider(ctx, name, cfg, client)
		if err != nil {
			fmt.Fprintf(warn, "Skipping %s provider: %v\n", name, err)
			continue
		}
		providers = append(providers, WithLogging(p, logger))
	}
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	return NewChain(logger, providers...), nil
}

func newProvider(ctx context.Context, name string, cfg Config, client *http.Client) (Provider, error) {
	switch name {
	case ProviderWordsAPI:
		return NewWordsAPIProvider(cfg.WordsAPI, client)
	case ProviderWebster:
		return NewWebsterProvider(cfg.Webster, client)
	case ProviderLLM:
		c, err := llm.New(ctx, cfg.LLM)
		if err != nil {
			return nil, err
		}
		return NewLLMProvider(c), nil
	default:
		return nil, fmt.Errorf("unknown lexical provider %q", name)
	}
}
