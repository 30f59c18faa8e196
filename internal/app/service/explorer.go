package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flight"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider/providerutils"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/match"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/pacer"
)

const (
	maxCountryAirports    = 5
	maxDestinationResults = 10

	// Open exploration stops after this many viable destinations; the
	// dataset is large and every destination costs one provider call per
	// origin.
	candidateBudget  = 15
	progressInterval = 10
)

// SearchBestDestinations scores every airport of one country as a meeting
// point and returns the cheapest viable ones.
// SearchBestDestinations godoc
// @Summary      Search best destinations in a country
// @Tags         Destinations
// @Description  Score a country's airports as meeting points by combined price
// @Param        request  body      dto.DestinationsRequest  true  "Destinations Request"
// @Success      200      {object}  dto.DestinationsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/destinations [post]
func (s *MeetupService) SearchBestDestinations(ctx context.Context,
	req dto.DestinationsRequest,
) (dto.DestinationsResponse, error) {
	destinations := s.Airports.CodesByCountry(req.CountryCode)
	if len(destinations) == 0 {
		return dto.DestinationsResponse{}, ErrNoAirportsInCountry
	}

	if len(destinations) > maxCountryAirports {
		destinations = destinations[:maxCountryAirports]
	}

	query := originQuery{
		dateFrom:   req.DateFrom,
		dateTo:     req.DateTo,
		tripDays:   req.TripDays,
		limit:      exploreOfferLimit,
		currency:   req.Currency,
		directOnly: req.DirectOnly,
	}

	candidates := make([]dto.DestinationCandidate, 0, len(destinations))

	for _, destination := range destinations {
		candidate, err := s.exploreDestination(ctx, req.Origins, destination, query, s.Pacing.Explore)
		if err != nil {
			return dto.DestinationsResponse{}, err
		}

		if candidate == nil {
			continue
		}

		slog.InfoContext(ctx, "viable meeting destination found",
			slog.String("destination", candidate.Destination),
			slog.Float64("combined_price", candidate.CombinedPrice))

		candidates = append(candidates, *candidate)
	}

	return destinationsResponse(candidates), nil
}

// SearchEverywhere scores every known airport outside the origins as a
// meeting point, stopping early once enough viable candidates are found.
// SearchEverywhere godoc
// @Summary      Search destinations everywhere
// @Tags         Destinations
// @Description  Score all known airports as meeting points by combined price
// @Param        request  body      dto.EverywhereRequest  true  "Everywhere Request"
// @Success      200      {object}  dto.DestinationsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/everywhere [post]
func (s *MeetupService) SearchEverywhere(ctx context.Context,
	req dto.EverywhereRequest,
) (dto.DestinationsResponse, error) {
	destinations := s.Airports.Codes(req.Origins)

	slog.InfoContext(ctx, "starting open destination exploration",
		slog.Int("destinations", len(destinations)),
		slog.Any("origins", req.Origins))

	query := originQuery{
		dateFrom:   req.DateFrom,
		dateTo:     req.DateTo,
		tripDays:   req.TripDays,
		limit:      everywhereOfferLimit,
		currency:   req.Currency,
		directOnly: req.DirectOnly,
	}

	candidates := make([]dto.DestinationCandidate, 0, candidateBudget)

	for checked, destination := range destinations {
		if err := ctx.Err(); err != nil {
			return dto.DestinationsResponse{}, err
		}

		if checked > 0 && checked%progressInterval == 0 {
			slog.InfoContext(ctx, "destination exploration progress",
				slog.Int("checked", checked),
				slog.Int("total", len(destinations)),
				slog.Int("found", len(candidates)))
		}

		candidate, err := s.exploreDestination(ctx, req.Origins, destination, query, s.Pacing.Everywhere)
		if err != nil {
			return dto.DestinationsResponse{}, err
		}

		if candidate == nil {
			continue
		}

		candidates = append(candidates, *candidate)
		if len(candidates) >= candidateBudget {
			break
		}
	}

	return destinationsResponse(candidates), nil
}

// exploreDestination probes one destination from all origins and keeps its
// best date pairing. A destination any origin cannot reach, or whose dates
// never line up, is rejected with a nil candidate; the first empty origin
// rejects without spending calls on the remaining ones.
func (s *MeetupService) exploreDestination(ctx context.Context, origins []string,
	destination string, query originQuery, pace *pacer.Pacer,
) (*dto.DestinationCandidate, error) {
	query.destination = destination

	offersByOrigin := make(map[string][]dto.FlightOffer, len(origins))

	for _, origin := range origins {
		if err := pace.Wait(ctx); err != nil {
			return nil, err
		}

		offers, err := s.Provider.Search(ctx, s.providerQuery(origin, query))
		if err != nil {
			if errors.Is(err, providerutils.ErrMissingCredential) {
				return nil, err
			}

			slog.WarnContext(ctx, "provider query failed, rejecting destination",
				slog.String("origin", origin),
				slog.String("destination", destination),
				slog.Any("error", err))

			return nil, nil
		}

		if len(offers) == 0 {
			return nil, nil
		}

		offersByOrigin[origin] = offers
	}

	matches := match.BestDateMatches(offersByOrigin, origins)
	if len(matches) == 0 {
		return nil, nil
	}

	best := matches[0]

	return &dto.DestinationCandidate{
		Destination:   destination,
		CombinedPrice: best.CombinedPrice,
		Currency:      best.Currency,
		DepartureDate: best.DepartureDate,
		ReturnDate:    best.ReturnDate,
		Flights:       best.Flights,
	}, nil
}

func destinationsResponse(candidates []dto.DestinationCandidate) dto.DestinationsResponse {
	flight.SortCandidatesByPrice(candidates)

	if len(candidates) > maxDestinationResults {
		candidates = candidates[:maxDestinationResults]
	}

	return dto.DestinationsResponse{
		Destinations: candidates,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}
