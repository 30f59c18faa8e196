package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/exception"
)

const dateLayout = "2006-01-02"

// DefaultCurrency is applied when a request does not pin one. Every origin
// within a run is queried with the same currency so combined prices stay
// comparable.
const DefaultCurrency = "EUR"

// FlightOffer is one priced round-trip itinerary for a single origin,
// normalized from the upstream provider response. Offers are built only by
// provider adapters and never mutated afterwards.
type FlightOffer struct {
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureDate    string  `json:"departure_date"`
	ReturnDate       string  `json:"return_date"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	Airline          string  `json:"airline,omitempty"`
	DepartureTime    string  `json:"departure_time,omitempty"`
	ArrivalTime      string  `json:"arrival_time,omitempty"`
	Duration         string  `json:"duration,omitempty"`
	Stops            int     `json:"stops"`
	Link             string  `json:"link,omitempty"`

	ReturnDepartureTime string `json:"return_departure_time,omitempty"`
	ReturnArrivalTime   string `json:"return_arrival_time,omitempty"`
	ReturnDuration      string `json:"return_duration,omitempty"`
	ReturnStops         int    `json:"return_stops"`
}

// DateMatch is a candidate meeting point: one offer per origin whose
// departure dates align exactly or within one day. CombinedPrice is the sum
// of the contributing offers and all contributing offers share Currency.
type DateMatch struct {
	DepartureDate string        `json:"departure_date"`
	ReturnDate    string        `json:"return_date"`
	CombinedPrice float64       `json:"combined_price"`
	Currency      string        `json:"currency"`
	Kind          string        `json:"date_match"`
	Flights       []FlightOffer `json:"flights"`
}

// DestinationCandidate is one destination's best finding during
// exploration. It exists only when every origin produced at least one offer
// to the destination.
type DestinationCandidate struct {
	Destination   string        `json:"destination"`
	CombinedPrice float64       `json:"combined_price"`
	Currency      string        `json:"currency"`
	DepartureDate string        `json:"departure_date"`
	ReturnDate    string        `json:"return_date"`
	Flights       []FlightOffer `json:"flights"`
}

// SearchRequest is a single-destination, multi-origin search. DateFrom,
// DateTo and TripDays form the search window: every queried itinerary
// departs inside the window and stays exactly TripDays nights.
type SearchRequest struct {
	Origins     []string `json:"origins" validate:"required,min=1,max=5,dive,min=2,max=3"`
	Destination string   `json:"destination" validate:"required,min=2,max=3"`
	DateFrom    string   `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string   `json:"date_to" validate:"required,datetime=2006-01-02"`
	TripDays    int      `json:"trip_days" validate:"required,min=1"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	DirectOnly  bool     `json:"direct_only"`
}

func (r *SearchRequest) Bind(_ *http.Request) error {
	r.normalize()

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return validateWindow(r.DateFrom, r.DateTo)
}

func (r *SearchRequest) normalize() {
	for i, origin := range r.Origins {
		r.Origins[i] = strings.ToUpper(strings.TrimSpace(origin))
	}

	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))

	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Currency = strings.ToUpper(r.Currency)
}

// DestinationsRequest asks for the cheapest meeting airports within one
// country. Exploration needs at least two origins to ever produce a
// candidate, so fewer is rejected up front.
type DestinationsRequest struct {
	Origins     []string `json:"origins" validate:"required,min=2,max=5,dive,min=2,max=3"`
	CountryCode string   `json:"country_code" validate:"required,len=2"`
	DateFrom    string   `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string   `json:"date_to" validate:"required,datetime=2006-01-02"`
	TripDays    int      `json:"trip_days" validate:"required,min=1"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	DirectOnly  bool     `json:"direct_only"`
}

func (r *DestinationsRequest) Bind(_ *http.Request) error {
	for i, origin := range r.Origins {
		r.Origins[i] = strings.ToUpper(strings.TrimSpace(origin))
	}

	r.CountryCode = strings.ToUpper(strings.TrimSpace(r.CountryCode))

	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Currency = strings.ToUpper(r.Currency)

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return validateWindow(r.DateFrom, r.DateTo)
}

// EverywhereRequest asks for the cheapest meeting airports worldwide.
type EverywhereRequest struct {
	Origins    []string `json:"origins" validate:"required,min=2,max=5,dive,min=2,max=3"`
	DateFrom   string   `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo     string   `json:"date_to" validate:"required,datetime=2006-01-02"`
	TripDays   int      `json:"trip_days" validate:"required,min=1"`
	Currency   string   `json:"currency" validate:"omitempty,len=3"`
	DirectOnly bool     `json:"direct_only"`
}

func (r *EverywhereRequest) Bind(_ *http.Request) error {
	for i, origin := range r.Origins {
		r.Origins[i] = strings.ToUpper(strings.TrimSpace(origin))
	}

	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	r.Currency = strings.ToUpper(r.Currency)

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return validateWindow(r.DateFrom, r.DateTo)
}

func validateWindow(dateFrom, dateTo string) error {
	from, err := time.Parse(dateLayout, dateFrom)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("invalid date_from %s", dateFrom),
		}
	}

	to, err := time.Parse(dateLayout, dateTo)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("invalid date_to %s", dateTo),
		}
	}

	if to.Before(from) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "date_to must be on or after date_from",
		}
	}

	return nil
}

// SearchFlightsResponse lists every origin's offers sorted by ascending
// price, echoing the request so stored payloads stay self-describing.
type SearchFlightsResponse struct {
	Parameters SearchRequest            `json:"parameters"`
	Results    map[string][]FlightOffer `json:"results"`
	Timestamp  string                   `json:"timestamp"`
}

// BestMatchResponse carries the top offers per origin plus the ranked date
// matches across origins.
type BestMatchResponse struct {
	Parameters  SearchRequest            `json:"parameters"`
	Results     map[string][]FlightOffer `json:"results"`
	BestMatches []DateMatch              `json:"best_matches"`
	Timestamp   string                   `json:"timestamp"`
}

// DestinationsResponse is shared by both exploration modes: candidates
// sorted by ascending combined price.
type DestinationsResponse struct {
	Destinations []DestinationCandidate `json:"destinations"`
	Timestamp    string                 `json:"timestamp"`
}
