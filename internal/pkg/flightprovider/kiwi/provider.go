package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider/providerutils"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/utils"
)

const (
	ProviderName = "kiwi"

	searchPath = "/v2/search"
)

type Provider struct {
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	Client       *http.Client
	Limiter      *redis_rate.Limiter
	RateLimitRPS int
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		SearchAPIURL: config.SearchAPIURL,
		APIKey:       config.APIKey,
		Timeout:      config.Timeout,
		Client:       &http.Client{},
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
	}
}

// Search queries the Tequila round-trip search endpoint for one origin.
// Upstream failures (network, non-2xx, bad payload) degrade to zero offers
// so one bad leg never aborts the surrounding run; only a missing API key
// and local quota exhaustion are reported as errors.
func (p *Provider) Search(ctx context.Context,
	query flightprovider.SearchQuery,
) ([]dto.FlightOffer, error) {
	if p.APIKey == "" {
		return nil, providerutils.ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if p.Limiter != nil && p.RateLimitRPS > 0 {
		res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", ProviderName),
			redis_rate.PerSecond(p.RateLimitRPS))
		if err != nil {
			return nil, fmt.Errorf("failed to rate limit: %w", err)
		}

		if res.Allowed == 0 {
			return nil, providerutils.ErrProviderRateLimitExceeded
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	req.Header.Set("apikey", p.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "kiwi search request failed",
			slog.String("origin", query.Origin),
			slog.String("destination", query.Destination),
			slog.Any("error", err))

		return []dto.FlightOffer{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "kiwi search returned non-success status",
			slog.String("origin", query.Origin),
			slog.String("destination", query.Destination),
			slog.Int("status", resp.StatusCode))

		return []dto.FlightOffer{}, nil
	}

	var response SearchFlightResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		slog.WarnContext(ctx, "failed to decode kiwi search response",
			slog.String("origin", query.Origin),
			slog.Any("error", err))

		return []dto.FlightOffer{}, nil
	}

	return p.offersFromResponse(response, query), nil
}

func (p *Provider) searchURL(query flightprovider.SearchQuery) string {
	params := url.Values{}
	params.Set("fly_from", query.Origin)
	params.Set("fly_to", query.Destination)
	params.Set("date_from", formatKiwiDate(query.DateFrom))
	params.Set("date_to", formatKiwiDate(query.DateTo))
	params.Set("nights_in_dst_from", strconv.Itoa(query.NightsFrom))
	params.Set("nights_in_dst_to", strconv.Itoa(query.NightsTo))
	params.Set("flight_type", "round")
	params.Set("one_for_city", "0")
	params.Set("adults", "1")
	params.Set("curr", query.Currency)
	params.Set("locale", "en")
	params.Set("sort", "price")
	params.Set("asc", "1")
	params.Set("limit", strconv.Itoa(query.Limit))

	if query.DirectOnly {
		params.Set("max_stopovers", "0")
	}

	return p.SearchAPIURL + searchPath + "?" + params.Encode()
}

func (p *Provider) offersFromResponse(response SearchFlightResponse,
	query flightprovider.SearchQuery,
) []dto.FlightOffer {
	results := make([]dto.FlightOffer, 0, len(response.Data))

	for _, item := range response.Data {
		var outbound, inbound []Segment
		for _, segment := range item.Route {
			if segment.Return == 0 {
				outbound = append(outbound, segment)
			} else {
				inbound = append(inbound, segment)
			}
		}

		offer := dto.FlightOffer{
			DepartureAirport: query.Origin,
			ArrivalAirport:   query.Destination,
			DepartureDate:    localDate(item.LocalDeparture),
			Price:            item.Price,
			Currency:         item.Currency,
			Link:             item.DeepLink,
		}

		if offer.Currency == "" {
			offer.Currency = query.Currency
		}

		if len(outbound) > 0 {
			offer.Airline = outbound[0].Airline
			offer.DepartureTime = localDateTime(outbound[0].LocalDeparture)
			offer.ArrivalTime = localDateTime(outbound[len(outbound)-1].LocalArrival)
			offer.Stops = len(outbound) - 1
		}

		outboundSeconds := item.Duration.Departure
		if outboundSeconds == 0 {
			outboundSeconds = item.Duration.Total
		}
		offer.Duration = utils.FormatDurationSeconds(outboundSeconds)

		if len(inbound) > 0 {
			last := inbound[len(inbound)-1]
			offer.ReturnDate = localDate(last.LocalArrival)
			offer.ReturnDepartureTime = localDateTime(inbound[0].LocalDeparture)
			offer.ReturnArrivalTime = localDateTime(last.LocalArrival)
			offer.ReturnStops = len(inbound) - 1

			if item.Duration.Return > 0 {
				offer.ReturnDuration = utils.FormatDurationSeconds(item.Duration.Return)
			}
		}

		results = append(results, offer)
	}

	return results
}

// formatKiwiDate converts YYYY-MM-DD to the DD/MM/YYYY format Tequila
// expects. A value that does not parse is passed through untouched and
// left for the upstream to reject.
func formatKiwiDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}

	return t.Format("02/01/2006")
}

// localDate trims a local timestamp like 2025-12-20T10:30:00 to its date.
func localDate(timestamp string) string {
	if len(timestamp) < 10 {
		return ""
	}

	return timestamp[:10]
}

// localDateTime trims a local timestamp to minute precision for display.
func localDateTime(timestamp string) string {
	if len(timestamp) < 16 {
		return ""
	}

	return strings.Replace(timestamp[:16], "T", " ", 1)
}
