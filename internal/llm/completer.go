// Package llm provides structured-JSON completions from hosted language
// models. It backs the LLM lexical provider: every request carries a JSON
// schema and every response is validated against it before it is returned.
package llm

import (
	"context"
	"encoding/json"
)

// Completer sends a single prompt to a model and returns JSON output.
type Completer interface {
	// Complete runs req and returns the model's JSON answer. When
	// req.Schema is set the content has already been validated against it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier the completer targets.
	ModelID() string
}

// Request is a one-shot prompt.
type Request struct {
	System string
	Prompt string

	// Schema, when set, asks the backend for native structured output and
	// is used to validate the answer.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Schema describes the JSON object expected back.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "lexical-values".
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds validated model output.
type Response struct {
	Content json.RawMessage
	Model   string
}
