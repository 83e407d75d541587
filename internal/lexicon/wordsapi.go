package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	wordsAPIName        = "wordsapi"
	wordsAPIDefaultBase = "https://wordsapiv1.p.rapidapi.com/"
	wordsAPIHost        = "wordsapiv1.p.rapidapi.com"
)

// WordsAPIProvider implements Provider against WordsAPI on RapidAPI.
type WordsAPIProvider struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
}

// NewWordsAPIProvider creates a WordsAPI provider.
func NewWordsAPIProvider(cfg WordsAPIConfig, client *http.Client) (*WordsAPIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("wordsapi API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = wordsAPIDefaultBase
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse wordsapi base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WordsAPIProvider{baseURL: u, apiKey: cfg.APIKey, client: client}, nil
}

func (p *WordsAPIProvider) Name() string { return wordsAPIName }

// wordsAPIList is the shape of the synonyms, antonyms and examples endpoints.
type wordsAPIList struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
	Examples []string `json:"examples"`
}

type wordsAPIDefinitions struct {
	Word        string `json:"word"`
	Definitions []struct {
		Definition   string `json:"definition"`
		PartOfSpeech string `json:"partOfSpeech"`
	} `json:"definitions"`
}

func (p *WordsAPIProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	var resp wordsAPIDefinitions
	if err := p.get(ctx, word, AttrDefinitions, &resp); err != nil {
		return nil, err
	}
	defs := make([]string, 0, len(resp.Definitions))
	for _, d := range resp.Definitions {
		if s := strings.TrimSpace(d.Definition); s != "" {
			defs = append(defs, s)
		}
	}
	return p.result(AttrDefinitions, resp.Word, defs), nil
}

func (p *WordsAPIProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	var resp wordsAPIList
	if err := p.get(ctx, word, AttrSynonyms, &resp); err != nil {
		return nil, err
	}
	return p.result(AttrSynonyms, resp.Word, resp.Synonyms), nil
}

func (p *WordsAPIProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	var resp wordsAPIList
	if err := p.get(ctx, word, AttrAntonyms, &resp); err != nil {
		return nil, err
	}
	return p.result(AttrAntonyms, resp.Word, resp.Antonyms), nil
}

func (p *WordsAPIProvider) Examples(ctx context.Context, word string) (*Result, error) {
	var resp wordsAPIList
	if err := p.get(ctx, word, AttrExamples, &resp); err != nil {
		return nil, err
	}
	return p.result(AttrExamples, resp.Word, resp.Examples), nil
}

func (p *WordsAPIProvider) get(ctx context.Context, word string, attr Attribute, out any) error {
	u := p.baseURL.JoinPath("words", word, attr.String())

	header := http.Header{}
	header.Set("x-rapidapi-host", wordsAPIHost)
	header.Set("x-rapidapi-key", p.apiKey)

	body, err := fetchBody(ctx, p.client, wordsAPIName, word, u.String(), header)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ErrInvalidResponse{Provider: wordsAPIName, Err: err}
	}
	return nil
}

func (p *WordsAPIProvider) result(attr Attribute, word string, values []string) *Result {
	return &Result{Attribute: attr, Word: word, Values: values, Provider: wordsAPIName}
}
