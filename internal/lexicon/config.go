package lexicon

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/quizgen/internal/llm"
)

// Provider names accepted in Config.Order.
const (
	ProviderWordsAPI = "wordsapi"
	ProviderWebster  = "webster"
	ProviderLLM      = "llm"
)

// DefaultOrder is the provider priority used when none is configured.
var DefaultOrder = []string{ProviderWordsAPI, ProviderWebster, ProviderLLM}

// DefaultTimeout bounds each HTTP round trip to a lexical source.
const DefaultTimeout = 15 * time.Second

// WordsAPIConfig holds WordsAPI credentials.
type WordsAPIConfig struct {
	APIKey  string
	BaseURL string
}

// WebsterConfig holds Merriam-Webster credentials. The collegiate
// dictionary and the thesaurus are keyed separately.
type WebsterConfig struct {
	CollegiateKey string
	ThesaurusKey  string
	BaseURL       string
}

// Config describes which providers make up a chain and in what order.
type Config struct {
	// Order lists provider names, highest priority first.
	Order []string

	WordsAPI WordsAPIConfig
	Webster  WebsterConfig
	LLM      llm.Config

	// Timeout applies to every HTTP request. Zero means no timeout.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the default order and no credentials.
func DefaultConfig() Config {
	return Config{
		Order:   append([]string(nil), DefaultOrder...),
		LLM:     llm.DefaultConfig(),
		Timeout: DefaultTimeout,
	}
}

// ConfigFromEnv reads provider credentials and settings from the environment.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.WordsAPI.APIKey = os.Getenv("WORDS_API_KEY")
	cfg.WordsAPI.BaseURL = os.Getenv("WORDS_API_BASE_URL")
	cfg.Webster.CollegiateKey = os.Getenv("WEBSTER_COLLEGIATE_API_KEY")
	cfg.Webster.ThesaurusKey = os.Getenv("WEBSTER_THESAURUS_API_KEY")
	cfg.Webster.BaseURL = os.Getenv("WEBSTER_BASE_URL")
	cfg.LLM = llm.ConfigFromEnv()

	if order := os.Getenv("QUIZGEN_PROVIDERS"); order != "" {
		cfg.Order = ParseOrder(order)
	}
	if t := os.Getenv("QUIZGEN_HTTP_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}
	return cfg
}

// ParseOrder splits a comma-separated provider list, dropping blanks.
func ParseOrder(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Validate checks that the order is non-empty, names only known
// providers, and names each at most once.
func (c Config) Validate() error {
	if len(c.Order) == 0 {
		return fmt.Errorf("provider order is empty")
	}
	seen := make(map[string]bool, len(c.Order))
	for _, name := range c.Order {
		switch name {
		case ProviderWordsAPI, ProviderWebster, ProviderLLM:
		default:
			return fmt.Errorf("unknown lexical provider %q: must be %s, %s or %s",
				name, ProviderWordsAPI, ProviderWebster, ProviderLLM)
		}
		if seen[name] {
			return fmt.Errorf("lexical provider %q listed twice", name)
		}
		seen[name] = true
	}
	if c.Timeout < 0 {
		return fmt.Errorf("HTTP timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
