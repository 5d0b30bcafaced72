package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExtractor struct {
	inner Extractor
	calls int
}

func (c *countingExtractor) Extract(ctx context.Context, text string) (Result, error) {
	c.calls++
	return c.inner.Extract(ctx, text)
}

func TestCachedExtractorMemoises(t *testing.T) {
	counting := &countingExtractor{inner: NewHeuristicExtractor()}
	cached, err := NewCachedExtractor(counting, 8)
	require.NoError(t, err)

	first, err := cached.Extract(context.Background(), "Create a task for website testing")
	require.NoError(t, err)
	second, err := cached.Extract(context.Background(), "Create a task for website testing")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.calls)
}

func TestCachedExtractorDistinctInputs(t *testing.T) {
	counting := &countingExtractor{inner: NewHeuristicExtractor()}
	cached, err := NewCachedExtractor(counting, 8)
	require.NoError(t, err)

	_, err = cached.Extract(context.Background(), "what's the status?")
	require.NoError(t, err)
	_, err = cached.Extract(context.Background(), "tell me a joke")
	require.NoError(t, err)

	assert.Equal(t, 2, counting.calls)
}
