package flight

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

func testCacheQuery() flightprovider.SearchQuery {
	return flightprovider.SearchQuery{
		Origin:      "BUD",
		Destination: "ZRH",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		NightsFrom:  3,
		NightsTo:    3,
		Limit:       50,
		Currency:    "EUR",
	}
}

func TestOfferCache_Keys_Closure(t *testing.T) {
	keyRequest := func(query flightprovider.SearchQuery, wantCache, wantLock string) func(t *testing.T) {
		return func(t *testing.T) {
			c := &OfferCache{}

			if got := c.GetCacheKey(query); got != wantCache {
				t.Fatalf("expected %s, got %s", wantCache, got)
			}
			if got := c.GetLockKey(query); got != wantLock {
				t.Fatalf("expected %s, got %s", wantLock, got)
			}
		}
	}

	t.Run("basic_keys", keyRequest(testCacheQuery(),
		"offers:cache:BUD:ZRH:2025-12-15:2025-12-30:3:3:50:EUR:false",
		"offers:lock:BUD:ZRH:2025-12-15:2025-12-30:3:3:50:EUR:false"))

	directQuery := testCacheQuery()
	directQuery.DirectOnly = true
	t.Run("direct_only_changes_key", keyRequest(directQuery,
		"offers:cache:BUD:ZRH:2025-12-15:2025-12-30:3:3:50:EUR:true",
		"offers:lock:BUD:ZRH:2025-12-15:2025-12-30:3:3:50:EUR:true"))

	nightsQuery := testCacheQuery()
	nightsQuery.NightsTo = 5
	t.Run("nights_to_changes_key", keyRequest(nightsQuery,
		"offers:cache:BUD:ZRH:2025-12-15:2025-12-30:3:5:50:EUR:false",
		"offers:lock:BUD:ZRH:2025-12-15:2025-12-30:3:5:50:EUR:false"))
}

func TestOfferCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewOfferCache(m)

			got, err := c.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestOfferCache_SetOffers_Closure(t *testing.T) {
	offers := []dto.FlightOffer{{DepartureAirport: "BUD", DepartureDate: "2025-12-20", Price: 80, Currency: "EUR"}}

	m := NewMockRedisClient(t)
	m.On("Set", mock.Anything, "test-cache", mock.Anything, 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
	c := NewOfferCache(m)

	if err := c.SetOffers(context.Background(), "test-cache", offers, 10*time.Minute); err != nil {
		t.Fatalf("SetOffers returned error: %v", err)
	}
}

func TestOfferCache_GetOffers_Closure(t *testing.T) {
	getOffersRequest := func(key string, mockSetup func(m *MockRedisClient), want []dto.FlightOffer, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewOfferCache(m)

			got, err := c.GetOffers(context.Background(), key)
			if (err != nil) != wantErr {
				t.Fatalf("GetOffers error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr {
				diff := cmp.Diff(want, got)
				if diff != "" {
					t.Fatalf("GetOffers mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	offers := []dto.FlightOffer{{DepartureAirport: "BUD", DepartureDate: "2025-12-20", Price: 80, Currency: "EUR"}}
	payload, _ := json.Marshal(offers)

	t.Run("cache_hit", getOffersRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult(string(payload), nil))
	}, offers, false))

	t.Run("cache_miss", getOffersRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult("", redis.Nil))
	}, nil, true))
}
