package lexicon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const (
	websterName        = "webster"
	websterDefaultBase = "https://www.dictionaryapi.com/"
)

// markupPattern matches Merriam-Webster formatting tokens such as {bc} or {it}.
var markupPattern = regexp.MustCompile(`\{[^{}]*\}`)

// WebsterProvider implements Provider against the Merriam-Webster
// Collegiate Dictionary (definitions, examples) and Collegiate Thesaurus
// (synonyms, antonyms). Each reference uses its own API key.
type WebsterProvider struct {
	baseURL       *url.URL
	collegiateKey string
	thesaurusKey  string
	client        *http.Client
}

// NewWebsterProvider creates a Merriam-Webster provider. At least one of
// the two keys must be set; lookups against a reference without a key fail
// as unavailable so the chain moves on.
func NewWebsterProvider(cfg WebsterConfig, client *http.Client) (*WebsterProvider, error) {
	if cfg.CollegiateKey == "" && cfg.ThesaurusKey == "" {
		return nil, fmt.Errorf("webster collegiate or thesaurus API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = websterDefaultBase
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse webster base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WebsterProvider{
		baseURL:       u,
		collegiateKey: cfg.CollegiateKey,
		thesaurusKey:  cfg.ThesaurusKey,
		client:        client,
	}, nil
}

func (p *WebsterProvider) Name() string { return websterName }

type collegiateEntry struct {
	Meta struct {
		ID string `json:"id"`
	} `json:"meta"`
	Def      []collegiateDef `json:"def"`
	Shortdef []string        `json:"shortdef"`
}

type collegiateDef struct {
	// Sseq is a list of sense sequences; each element is a [tag, payload] pair.
	Sseq [][]json.RawMessage `json:"sseq"`
}

type thesaurusEntry struct {
	Meta struct {
		ID   string     `json:"id"`
		Syns [][]string `json:"syns"`
		Ants [][]string `json:"ants"`
	} `json:"meta"`
}

func (p *WebsterProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	var entries []collegiateEntry
	if err := p.get(ctx, word, "collegiate", p.collegiateKey, &entries); err != nil {
		return nil, err
	}
	entry := entries[0]

	var defs []string
	if len(entry.Shortdef) > 0 {
		for _, s := range entry.Shortdef {
			if c := cleanMarkup(s); c != "" {
				defs = append(defs, c)
			}
		}
	} else {
		for _, dt := range senseTexts(entry.Def) {
			if dt.tag == "text" {
				defs = append(defs, dt.texts...)
			}
		}
	}
	return p.result(AttrDefinitions, entry.Meta.ID, defs), nil
}

func (p *WebsterProvider) Examples(ctx context.Context, word string) (*Result, error) {
	var entries []collegiateEntry
	if err := p.get(ctx, word, "collegiate", p.collegiateKey, &entries); err != nil {
		return nil, err
	}
	entry := entries[0]

	var examples []string
	for _, dt := range senseTexts(entry.Def) {
		if dt.tag == "vis" {
			examples = append(examples, dt.texts...)
		}
	}
	return p.result(AttrExamples, entry.Meta.ID, examples), nil
}

func (p *WebsterProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	var entries []thesaurusEntry
	if err := p.get(ctx, word, "thesaurus", p.thesaurusKey, &entries); err != nil {
		return nil, err
	}
	meta := entries[0].Meta
	return p.result(AttrSynonyms, meta.ID, flatten(meta.Syns)), nil
}

func (p *WebsterProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	var entries []thesaurusEntry
	if err := p.get(ctx, word, "thesaurus", p.thesaurusKey, &entries); err != nil {
		return nil, err
	}
	meta := entries[0].Meta
	return p.result(AttrAntonyms, meta.ID, flatten(meta.Ants)), nil
}

// get fetches a reference and decodes it into out, which must be a pointer
// to a slice of entries. An empty array, or an array of suggestion strings
// (Merriam-Webster's answer for unknown words), is reported as not found.
func (p *WebsterProvider) get(ctx context.Context, word, reference, key string, out any) error {
	if key == "" {
		return &ErrProviderUnavailable{Provider: websterName, Err: fmt.Errorf("no %s API key configured", reference)}
	}

	u := p.baseURL.JoinPath("api", "v3", "references", reference, "json", word)
	q := u.Query()
	q.Set("key", key)
	u.RawQuery = q.Encode()

	body, err := fetchBody(ctx, p.client, websterName, word, u.String(), nil)
	if err != nil {
		return err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return &ErrInvalidResponse{Provider: websterName, Err: err}
	}
	if len(raw) == 0 || bytes.HasPrefix(bytes.TrimSpace(raw[0]), []byte(`"`)) {
		return &ErrNotFound{Word: word}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ErrInvalidResponse{Provider: websterName, Err: err}
	}
	return nil
}

func (p *WebsterProvider) result(attr Attribute, id string, values []string) *Result {
	return &Result{Attribute: attr, Word: headword(id), Values: values, Provider: websterName}
}

// dtItem is one [tag, value] element of a sense's defining text, already
// reduced to cleaned strings.
type dtItem struct {
	tag   string
	texts []string
}

// senseTexts walks every sense in defs and returns its defining-text items
// in order. Non-sense elements are skipped; parallel sense groups ("pseq")
// are descended into.
func senseTexts(defs []collegiateDef) []dtItem {
	var out []dtItem
	for _, d := range defs {
		for _, seq := range d.Sseq {
			for _, elem := range seq {
				out = append(out, senseElement(elem)...)
			}
		}
	}
	return out
}

func senseElement(raw json.RawMessage) []dtItem {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return nil
	}
	var tag string
	if err := json.Unmarshal(pair[0], &tag); err != nil {
		return nil
	}

	switch tag {
	case "sense":
		var sense struct {
			Dt []json.RawMessage `json:"dt"`
		}
		if err := json.Unmarshal(pair[1], &sense); err != nil {
			return nil
		}
		var out []dtItem
		for _, dt := range sense.Dt {
			if item, ok := parseDt(dt); ok {
				out = append(out, item)
			}
		}
		return out
	case "pseq":
		var inner []json.RawMessage
		if err := json.Unmarshal(pair[1], &inner); err != nil {
			return nil
		}
		var out []dtItem
		for _, e := range inner {
			out = append(out, senseElement(e)...)
		}
		return out
	default:
		return nil
	}
}

// parseDt decodes ["text", "..."] and ["vis", [{"t": "..."}]] elements.
func parseDt(raw json.RawMessage) (dtItem, bool) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return dtItem{}, false
	}
	var tag string
	if err := json.Unmarshal(pair[0], &tag); err != nil {
		return dtItem{}, false
	}

	switch tag {
	case "text":
		var s string
		if err := json.Unmarshal(pair[1], &s); err != nil {
			return dtItem{}, false
		}
		if c := cleanMarkup(s); c != "" {
			return dtItem{tag: tag, texts: []string{c}}, true
		}
	case "vis":
		var vis []struct {
			T string `json:"t"`
		}
		if err := json.Unmarshal(pair[1], &vis); err != nil {
			return dtItem{}, false
		}
		item := dtItem{tag: tag}
		for _, v := range vis {
			if c := cleanMarkup(v.T); c != "" {
				item.texts = append(item.texts, c)
			}
		}
		if len(item.texts) > 0 {
			return item, true
		}
	}
	return dtItem{}, false
}

// cleanMarkup strips formatting tokens and surrounding whitespace.
func cleanMarkup(s string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(s, ""))
}

// headword strips the homograph suffix from an entry id ("cat:1" → "cat").
func headword(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		return id[:i]
	}
	return id
}

func flatten(groups [][]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
