package llm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"vetwatch/internal/cache"
)

// ResponseCache is the slice of the cache used for generation results.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedGenerator serves repeated prompts from the cache so a re-run of
// a batch only pays for articles that were not finished the first time.
type CachedGenerator struct {
	inner Generator
	cache ResponseCache
	model string
	ttl   time.Duration
}

var _ Generator = (*CachedGenerator)(nil)

// WithCache decorates a Generator with a response cache.
func WithCache(inner Generator, c ResponseCache, model string, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{inner: inner, cache: c, model: model, ttl: ttl}
}

func (g *CachedGenerator) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	key := cache.ResponseKey(g.model, prompt, opts.MaxTokens)

	if data, err := g.cache.Get(ctx, key); err == nil {
		return string(data), nil
	} else if !errors.Is(err, cache.ErrKeyNotFound) {
		log.Warn().Err(err).Msg("response cache lookup failed")
	}

	text, err := g.inner.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}

	if text != "" {
		if err := g.cache.Set(ctx, key, text, g.ttl); err != nil {
			log.Warn().Err(err).Msg("response cache store failed")
		}
	}

	return text, nil
}
