package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// OfferCache stores one origin leg's normalized offers per full query, so
// repeated single-destination searches inside the expiration window skip
// the provider entirely.
type OfferCache struct {
	redis RedisClient
}

func NewOfferCache(redis RedisClient) *OfferCache {
	return &OfferCache{
		redis: redis,
	}
}

func (c *OfferCache) GetCacheKey(query flightprovider.SearchQuery) string {
	return fmt.Sprintf("offers:cache:%s", queryKey(query))
}

func (c *OfferCache) GetLockKey(query flightprovider.SearchQuery) string {
	return fmt.Sprintf("offers:lock:%s", queryKey(query))
}

// queryKey includes every query field: a narrower key would conflate
// searches that differ only in limit or direct-only and return stale
// shapes.
func queryKey(query flightprovider.SearchQuery) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d:%d:%s:%t",
		query.Origin, query.Destination, query.DateFrom, query.DateTo,
		query.NightsFrom, query.NightsTo, query.Limit, query.Currency, query.DirectOnly)
}

func (c *OfferCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *OfferCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *OfferCache) SetOffers(ctx context.Context,
	key string,
	offers []dto.FlightOffer,
	expiration time.Duration,
) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set offers: %w", err)
	}

	return nil
}

func (c *OfferCache) GetOffers(ctx context.Context, key string) ([]dto.FlightOffer, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var offers []dto.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}
