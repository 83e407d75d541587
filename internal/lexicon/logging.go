package lexicon

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that logs every lookup with its latency.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with lookup logging at Debug level.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		return p
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Name() string { return l.inner.Name() }

func (l *LoggingProvider) Definitions(ctx context.Context, word string) (*Result, error) {
	return l.observe(ctx, word, AttrDefinitions)
}

func (l *LoggingProvider) Synonyms(ctx context.Context, word string) (*Result, error) {
	return l.observe(ctx, word, AttrSynonyms)
}

func (l *LoggingProvider) Antonyms(ctx context.Context, word string) (*Result, error) {
	return l.observe(ctx, word, AttrAntonyms)
}

func (l *LoggingProvider) Examples(ctx context.Context, word string) (*Result, error) {
	return l.observe(ctx, word, AttrExamples)
}

func (l *LoggingProvider) observe(ctx context.Context, word string, attr Attribute) (*Result, error) {
	start := time.Now()
	res, err := Fetch(ctx, l.inner, word, attr)

	attrs := []any{
		"provider", l.inner.Name(),
		"word", word,
		"attribute", attr.String(),
		"latency_ms", time.Since(start).Milliseconds(),
		"success", err == nil,
	}
	if res != nil {
		attrs = append(attrs, "resolved", res.Word, "values", len(res.Values))
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	l.logger.DebugContext(ctx, "lexical lookup", attrs...)

	return res, err
}
