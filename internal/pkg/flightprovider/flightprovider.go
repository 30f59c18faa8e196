package flightprovider

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

// SearchQuery is one round-trip leg query: a single origin/destination pair
// over a date window with a fixed stay length. Limit caps how many offers
// the upstream is asked for, not a post-filter.
type SearchQuery struct {
	Origin      string
	Destination string
	DateFrom    string // YYYY-MM-DD
	DateTo      string // YYYY-MM-DD
	NightsFrom  int
	NightsTo    int
	Limit       int
	Currency    string
	DirectOnly  bool
}

// FlightProvider is the upstream flight-data capability. Implementations
// must return an empty slice (not an error) for upstream non-success or
// parse failures; errors are reserved for client misconfiguration and
// local quota exhaustion.
type FlightProvider interface {
	Search(ctx context.Context, query SearchQuery) ([]dto.FlightOffer, error)
}

// config for flight provider
type FlightProviderConfig struct {
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// FlightProviderRegistry holds the configured data sources by name so the
// active one can be selected from config. The scraper-based source ships
// separately and registers under its own name when built in.
type FlightProviderRegistry struct {
	providers map[string]FlightProvider
}

func NewFlightProviderRegistry() *FlightProviderRegistry {
	return &FlightProviderRegistry{
		providers: make(map[string]FlightProvider),
	}
}

func (r *FlightProviderRegistry) AddProvider(name string, provider FlightProvider) {
	r.providers[name] = provider
}

func (r *FlightProviderRegistry) GetProvider(name string) FlightProvider {
	return r.providers[name]
}
