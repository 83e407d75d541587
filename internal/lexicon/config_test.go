package lexicon

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizgen/internal/llm"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORDS_API_KEY", "WORDS_API_BASE_URL",
		"WEBSTER_COLLEGIATE_API_KEY", "WEBSTER_THESAURUS_API_KEY", "WEBSTER_BASE_URL",
		"QUIZGEN_PROVIDERS", "QUIZGEN_HTTP_TIMEOUT",
		"QUIZGEN_LLM_PROVIDER", "QUIZGEN_LLM_API_KEY", "QUIZGEN_LLM_MODEL", "QUIZGEN_LLM_BASE_URL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("WORDS_API_KEY", "wk")
	t.Setenv("WEBSTER_THESAURUS_API_KEY", "tk")
	t.Setenv("QUIZGEN_PROVIDERS", " Webster, wordsapi ,")
	t.Setenv("QUIZGEN_HTTP_TIMEOUT", "3s")

	cfg := ConfigFromEnv()
	if cfg.WordsAPI.APIKey != "wk" || cfg.Webster.ThesaurusKey != "tk" {
		t.Fatalf("credentials not read: %+v", cfg)
	}
	if strings.Join(cfg.Order, ",") != "webster,wordsapi" {
		t.Fatalf("unexpected order %v", cfg.Order)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   []string
		wantErr bool
	}{
		{"default", DefaultOrder, false},
		{"empty", nil, true},
		{"unknown", []string{"oxford"}, true},
		{"duplicate", []string{"llm", "llm"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Order = tt.order
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewChainFromConfig_SkipsUnconfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordsAPI.APIKey = "wk"
	cfg.LLM = llm.Config{Backend: llm.BackendMock}

	var warn bytes.Buffer
	chain, err := NewChainFromConfig(context.Background(), cfg, nil, &warn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, p := range chain.Providers() {
		names = append(names, p.Name())
	}
	if strings.Join(names, ",") != "wordsapi,llm:mock" {
		t.Fatalf("unexpected providers %v", names)
	}
	if !strings.Contains(warn.String(), "Skipping webster provider") {
		t.Fatalf("expected a skip notice, got %q", warn.String())
	}
}

func TestNewChainFromConfig_NothingConfigured(t *testing.T) {
	_, err := NewChainFromConfig(context.Background(), DefaultConfig(), nil, nil)
	if !errors.Is(err, ErrNoProviders) {
		t.Fatalf("expected ErrNoProviders, got %v", err)
	}
}
