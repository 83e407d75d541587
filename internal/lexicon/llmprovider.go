package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/llm"
)

const llmSystemPrompt = `You are an English dictionary and thesaurus.
Answer only with JSON matching the provided schema.
"word" is the dictionary headword you looked up, in lowercase.
"values" lists the requested entries, most common sense first. Use an empty list when you know none.`

// LLMProvider resolves lexical attributes by asking a language model.
type LLMProvider struct {
	completer llm.Completer
}

// NewLLMProvider creates a Provider backed by c.
func NewLLMProvider(c llm.Completer) *LLMProvider {
	return &LLMProvider{completer: c}
}

func (p *LLMProvider) Name() string { return "llm:" + p.completer.ModelID() }

func (p *LLMProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	return p.lookup(ctx, word, AttrDefinitions)
}

func (p *LLMProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	return p.lookup(ctx, word, AttrSynonyms)
}

func (p *LLMProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	return p.lookup(ctx, word, AttrAntonyms)
}

func (p *LLMProvider) Examples(ctx context.Context, word string) (*Result, error) {
	return p.lookup(ctx, word, AttrExamples)
}

type llmAnswer struct {
	Word   string   `json:"word"`
	Values []string `json:"values"`
}

func (p *LLMProvider) lookup(ctx context.Context, word string, attr Attribute) (*Result, error) {
	resp, err := p.completer.Complete(ctx, llm.Request{
		System:    llmSystemPrompt,
		Prompt:    llmPrompt(word, attr),
		Schema:    answerSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, &ErrProviderUnavailable{Provider: p.Name(), Err: err}
	}

	var ans llmAnswer
	if err := json.Unmarshal(resp.Content, &ans); err != nil {
		return nil, &ErrInvalidResponse{Provider: p.Name(), Err: err}
	}

	var values []string
	for _, v := range ans.Values {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, &ErrNotFound{Word: word}
	}
	resolved := strings.TrimSpace(ans.Word)
	if resolved == "" {
		resolved = word
	}
	return &Result{Attribute: attr, Word: resolved, Values: values, Provider: p.Name()}, nil
}

func llmPrompt(word string, attr Attribute) string {
	switch attr {
	case AttrDefinitions:
		return fmt.Sprintf("Give up to five short dictionary definitions of the English word %q.", word)
	case AttrSynonyms:
		return fmt.Sprintf("List up to ten single-word synonyms of the English word %q.", word)
	case AttrAntonyms:
		return fmt.Sprintf("List up to ten single-word antonyms of the English word %q.", word)
	default:
		return fmt.Sprintf("Write up to three example sentences that each use the English word %q verbatim.", word)
	}
}

var answerSchema = &llm.Schema{
	Name:        "lexical_answer",
	Description: "A lexical attribute lookup for one word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{"type": "string"},
			"values": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"word", "values"},
		"additionalProperties": false,
	},
}
