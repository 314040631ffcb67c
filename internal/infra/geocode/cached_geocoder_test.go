package geocode

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"harvest/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", errCacheMiss
	}

	return v, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.ttls[key] = ttl

	return nil
}

type countingGeocoder struct {
	calls  int
	result *orb.Point
	err    error
}

func (g *countingGeocoder) Resolve(context.Context, string) (*orb.Point, error) {
	g.calls++

	return g.result, g.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedGeocoder_CachesHits(t *testing.T) {
	upstream := &countingGeocoder{result: &orb.Point{100.5, 13.75}}
	store := newMemoryStore()
	geocoder := newCachedGeocoder(upstream, store, time.Hour, time.Minute, newDiscardLogger())

	first, err := geocoder.Resolve(t.Context(), "12 Farm Road, Chiang Mai")
	require.NoError(t, err)
	second, err := geocoder.Resolve(t.Context(), "  12 farm road,   CHIANG MAI ")
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.calls)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, time.Hour, store.ttls[cacheKey("12 Farm Road, Chiang Mai")])
}

func TestCachedGeocoder_CachesUnknownWithNegativeTTL(t *testing.T) {
	upstream := &countingGeocoder{}
	store := newMemoryStore()
	geocoder := newCachedGeocoder(upstream, store, time.Hour, time.Minute, newDiscardLogger())

	for range 3 {
		point, err := geocoder.Resolve(t.Context(), "nowhere")
		require.NoError(t, err)
		assert.Nil(t, point)
	}

	assert.Equal(t, 1, upstream.calls)
	assert.Equal(t, time.Minute, store.ttls[cacheKey("nowhere")])
}

func TestCachedGeocoder_DoesNotCacheErrors(t *testing.T) {
	upstream := &countingGeocoder{err: errors.New("quota exceeded")}
	store := newMemoryStore()
	geocoder := newCachedGeocoder(upstream, store, time.Hour, time.Minute, newDiscardLogger())

	_, err := geocoder.Resolve(t.Context(), "somewhere")
	require.Error(t, err)
	_, err = geocoder.Resolve(t.Context(), "somewhere")
	require.Error(t, err)

	assert.Equal(t, 2, upstream.calls)
	assert.Empty(t, store.data)
}

func TestNoopGeocoder(t *testing.T) {
	point, err := NewNoopGeocoder().Resolve(t.Context(), "anything")
	assert.NoError(t, err)
	assert.Nil(t, point)
}
