package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flight"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider/providerutils"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/match"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/pacer"
)

// Per-flow provider result caps: the listing flows ask for depth so the
// matcher has dates to pair, exploration stays shallow to conserve quota.
const (
	searchOfferLimit     = 50
	bestMatchOfferLimit  = 100
	exploreOfferLimit    = 20
	everywhereOfferLimit = 5

	topOffersPerOrigin = 5
)

type OfferCacher interface {
	GetCacheKey(query flightprovider.SearchQuery) string
	GetLockKey(query flightprovider.SearchQuery) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetOffers(ctx context.Context, key string) ([]dto.FlightOffer, error)
	SetOffers(ctx context.Context, key string, offers []dto.FlightOffer, expiration time.Duration) error
}

type AirportDirectory interface {
	CodesByCountry(countryCode string) []string
	Codes(exclude []string) []string
}

// Pacing holds one pacer per flow; delays differ because the flows have
// very different per-call cost budgets.
type Pacing struct {
	Search     *pacer.Pacer
	BestMatch  *pacer.Pacer
	Explore    *pacer.Pacer
	Everywhere *pacer.Pacer
}

type MeetupService struct {
	Provider             flightprovider.FlightProvider
	Cache                OfferCacher
	Airports             AirportDirectory
	Pacing               Pacing
	OfferCacheExpiration time.Duration
	OfferLockTimeout     time.Duration
}

func NewMeetupService(provider flightprovider.FlightProvider, cache OfferCacher,
	airports AirportDirectory, pacing Pacing,
	offerCacheExpiration, offerLockTimeout time.Duration,
) *MeetupService {
	return &MeetupService{
		Provider:             provider,
		Cache:                cache,
		Airports:             airports,
		Pacing:               pacing,
		OfferCacheExpiration: offerCacheExpiration,
		OfferLockTimeout:     offerLockTimeout,
	}
}

// SearchFlights lists every origin's offers to one destination, sorted
// ascending by price.
// SearchFlights godoc
// @Summary      Search flights per origin
// @Tags         Flights
// @Description  Search round-trip offers from every origin to one destination
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.SearchFlightsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *MeetupService) SearchFlights(ctx context.Context,
	req dto.SearchRequest,
) (dto.SearchFlightsResponse, error) {
	query := originQuery{
		destination: req.Destination,
		dateFrom:    req.DateFrom,
		dateTo:      req.DateTo,
		tripDays:    req.TripDays,
		limit:       searchOfferLimit,
		currency:    req.Currency,
		directOnly:  req.DirectOnly,
	}

	results, err := s.searchOrigins(ctx, req.Origins, query, s.Pacing.Search, true)
	if err != nil {
		return dto.SearchFlightsResponse{}, err
	}

	return dto.SearchFlightsResponse{
		Parameters: req,
		Results:    results,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// SearchBestMatch lists the top offers per origin and pairs the origins'
// departure dates into ranked meeting candidates.
// SearchBestMatch godoc
// @Summary      Search flights and match departure dates
// @Tags         Flights
// @Description  Search all origins and rank date pairings by combined price
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.BestMatchResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/best-match [post]
func (s *MeetupService) SearchBestMatch(ctx context.Context,
	req dto.SearchRequest,
) (dto.BestMatchResponse, error) {
	query := originQuery{
		destination: req.Destination,
		dateFrom:    req.DateFrom,
		dateTo:      req.DateTo,
		tripDays:    req.TripDays,
		limit:       bestMatchOfferLimit,
		currency:    req.Currency,
		directOnly:  req.DirectOnly,
	}

	offersByOrigin, err := s.searchOrigins(ctx, req.Origins, query, s.Pacing.BestMatch, true)
	if err != nil {
		return dto.BestMatchResponse{}, err
	}

	bestMatches := match.BestDateMatches(offersByOrigin, req.Origins)

	results := make(map[string][]dto.FlightOffer, len(offersByOrigin))
	for origin, offers := range offersByOrigin {
		if len(offers) > topOffersPerOrigin {
			offers = offers[:topOffersPerOrigin]
		}
		results[origin] = offers
	}

	return dto.BestMatchResponse{
		Parameters:  req,
		Results:     results,
		BestMatches: bestMatches,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// originQuery is one run's shared leg parameters; only the origin varies
// across the sequential provider calls.
type originQuery struct {
	destination string
	dateFrom    string
	dateTo      string
	tripDays    int
	limit       int
	currency    string
	directOnly  bool
}

func (s *MeetupService) providerQuery(origin string, query originQuery) flightprovider.SearchQuery {
	return flightprovider.SearchQuery{
		Origin:      origin,
		Destination: query.destination,
		DateFrom:    query.dateFrom,
		DateTo:      query.dateTo,
		NightsFrom:  query.tripDays,
		NightsTo:    query.tripDays,
		Limit:       query.limit,
		Currency:    query.currency,
		DirectOnly:  query.directOnly,
	}
}

// searchOrigins queries the provider once per origin, strictly
// sequentially with the flow's pacing between calls. A failed call
// degrades to zero offers for that origin so the remaining origins still
// run; only a missing credential aborts, since no later call can succeed.
func (s *MeetupService) searchOrigins(ctx context.Context, origins []string,
	query originQuery, pace *pacer.Pacer, useCache bool,
) (map[string][]dto.FlightOffer, error) {
	results := make(map[string][]dto.FlightOffer, len(origins))

	for _, origin := range origins {
		if err := pace.Wait(ctx); err != nil {
			return nil, err
		}

		offers, err := s.searchOrigin(ctx, origin, query, useCache)
		if err != nil {
			if errors.Is(err, providerutils.ErrMissingCredential) {
				return nil, err
			}

			slog.WarnContext(ctx, "provider query failed, treating origin as empty",
				slog.String("origin", origin),
				slog.String("destination", query.destination),
				slog.Any("error", err))

			offers = []dto.FlightOffer{}
		}

		results[origin] = flight.SortOffersByPrice(offers)
	}

	return results, nil
}

func (s *MeetupService) searchOrigin(ctx context.Context, origin string,
	query originQuery, useCache bool,
) ([]dto.FlightOffer, error) {
	providerQuery := s.providerQuery(origin, query)

	if !useCache || s.Cache == nil {
		return s.Provider.Search(ctx, providerQuery)
	}

	cacheKey := s.Cache.GetCacheKey(providerQuery)

	offers, err := s.Cache.GetOffers(ctx, cacheKey)
	if err == nil {
		return offers, nil
	}

	offers, err = s.Provider.Search(ctx, providerQuery)
	if err != nil {
		return nil, err
	}

	// Redis trouble never blocks a search; the fetched offers are simply
	// not cached this time.
	lockKey := s.Cache.GetLockKey(providerQuery)

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.OfferLockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire offer cache lock",
			slog.String("error", err.Error()))

		return offers, nil
	}

	if acquired {
		defer s.Cache.ReleaseLock(ctx, lockKey)

		if err := s.Cache.SetOffers(ctx, cacheKey, offers, s.OfferCacheExpiration); err != nil {
			slog.WarnContext(ctx, "failed to cache offers",
				slog.String("error", err.Error()))
		}
	}

	return offers, nil
}
