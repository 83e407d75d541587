package llm

import (
	"fmt"
	"os"
)

// Backend names accepted in Config.Backend.
const (
	BackendAnthropic  = "anthropic"
	BackendOpenAI     = "openai"
	BackendOpenRouter = "openrouter"
	BackendGemini     = "gemini"
	BackendMock       = "mock"
)

// Config selects and configures one LLM backend.
type Config struct {
	// Backend is one of anthropic, openai, openrouter, gemini or mock.
	// Empty disables the LLM lexical provider.
	Backend string
	APIKey  string
	Model   string
	BaseURL string // optional override, e.g. a compatible gateway

	MaxTokens   int
	Temperature float64
}

// defaultModels holds the model used when Config.Model is empty.
var defaultModels = map[string]string{
	BackendAnthropic:  "claude-haiku",
	BackendOpenAI:     "gpt-4o-mini",
	BackendOpenRouter: "google/gemini-2.0-flash-exp",
	BackendGemini:     "gemini-flash",
}

// DefaultConfig returns a Config with no backend selected.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// ConfigFromEnv reads QUIZGEN_LLM_* variables, then falls back to
// DiscoverConfig when no backend is named explicitly.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if b := os.Getenv("QUIZGEN_LLM_PROVIDER"); b != "" {
		cfg.Backend = b
		cfg.APIKey = os.Getenv("QUIZGEN_LLM_API_KEY")
	} else if found, ok := DiscoverConfig(); ok {
		cfg.Backend = found.Backend
		cfg.APIKey = found.APIKey
	}
	if m := os.Getenv("QUIZGEN_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("QUIZGEN_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Backend]
	}
	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order (Gemini → OpenAI → Anthropic → OpenRouter) and returns a
// Config for the first one set.
func DiscoverConfig() (Config, bool) {
	probes := []struct{ env, backend string }{
		{"GEMINI_API_KEY", BackendGemini},
		{"OPENAI_API_KEY", BackendOpenAI},
		{"ANTHROPIC_API_KEY", BackendAnthropic},
		{"OPENROUTER_API_KEY", BackendOpenRouter},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg := DefaultConfig()
			cfg.Backend = p.backend
			cfg.APIKey = k
			cfg.Model = defaultModels[p.backend]
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected backend is known and has a key.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendAnthropic, BackendOpenAI, BackendOpenRouter, BackendGemini:
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s LLM backend", c.Backend)
		}
	case BackendMock:
	case "":
		return fmt.Errorf("no LLM backend configured")
	default:
		return fmt.Errorf("unknown LLM backend %q", c.Backend)
	}
	return nil
}
