package llm

import (
	"context"
	"fmt"
)

// New creates the Completer selected by cfg.
func New(ctx context.Context, cfg Config) (Completer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		c   Completer
		err error
	)
	switch cfg.Backend {
	case BackendAnthropic:
		c, err = NewAnthropicCompleter(cfg)
	case BackendOpenAI, BackendOpenRouter:
		c, err = NewOpenAICompleter(cfg)
	case BackendGemini:
		c, err = NewGeminiCompleter(ctx, cfg)
	case BackendMock:
		return NewMockCompleter(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s backend: %w", cfg.Backend, err)
	}
	return c, nil
}
