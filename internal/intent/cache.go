package intent

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedExtractor memoises extraction results per utterance. Extraction
// is deterministic for a given text, so identical submissions (retries,
// re-rendered input) skip the underlying extractor.
type CachedExtractor struct {
	inner Extractor
	cache *lru.Cache[string, Result]
}

func NewCachedExtractor(inner Extractor, size int) (*CachedExtractor, error) {
	cache, err := lru.New[string, Result](size)
	if err != nil {
		return nil, err
	}
	return &CachedExtractor{inner: inner, cache: cache}, nil
}

func (e *CachedExtractor) Extract(ctx context.Context, text string) (Result, error) {
	if result, ok := e.cache.Get(text); ok {
		return result, nil
	}
	result, err := e.inner.Extract(ctx, text)
	if err != nil {
		return Result{}, err
	}
	e.cache.Add(text, result)
	return result, nil
}
