package geocode

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/paulmach/orb"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "geocode:"
	unknownValue = "unknown"
)

// store is the slice of Redis the cache needs.
type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errCacheMiss
	}

	return v, err
}

func (s redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

var errCacheMiss = errors.New("cache miss")

type cachedPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type cachedGeocoder struct {
	next        service.Geocoder
	store       store
	ttl         time.Duration
	negativeTTL time.Duration
	logger      *slog.Logger
}

// NewCachedGeocoder caches resolved and unresolvable addresses in Redis.
// Upstream errors are not cached.
func NewCachedGeocoder(next service.Geocoder, client *redis.Client, ttl, negativeTTL time.Duration, logger *slog.Logger) service.Geocoder {
	return newCachedGeocoder(next, redisStore{client: client}, ttl, negativeTTL, logger)
}

func newCachedGeocoder(next service.Geocoder, s store, ttl, negativeTTL time.Duration, logger *slog.Logger) *cachedGeocoder {
	return &cachedGeocoder{
		next:        next,
		store:       s,
		ttl:         ttl,
		negativeTTL: negativeTTL,
		logger:      logger,
	}
}

func (c *cachedGeocoder) Resolve(ctx context.Context, address string) (*orb.Point, error) {
	key := cacheKey(address)

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		if raw == unknownValue {
			return nil, nil
		}
		var p cachedPoint
		if jsonErr := json.Unmarshal([]byte(raw), &p); jsonErr == nil {
			return &orb.Point{p.Lng, p.Lat}, nil
		}
	case !errors.Is(err, errCacheMiss):
		c.logger.WarnContext(ctx, "Geocode cache read failed", slog.String("error", err.Error()))
	}

	point, err := c.next.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	value, ttl := unknownValue, c.negativeTTL
	if point != nil {
		encoded, _ := json.Marshal(cachedPoint{Lat: point.Lat(), Lng: point.Lon()})
		value, ttl = string(encoded), c.ttl
	}
	if ttl > 0 {
		if err := c.store.Set(ctx, key, value, ttl); err != nil {
			c.logger.WarnContext(ctx, "Geocode cache write failed", slog.String("error", err.Error()))
		}
	}

	return point, nil
}

func cacheKey(address string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(address)), " ")
	sum := sha1.Sum([]byte(normalized))

	return keyPrefix + hex.EncodeToString(sum[:])
}
