//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearchRequest_Bind(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	bindRequest := func(req SearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Bind() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	validRequest := SearchRequest{
		Origins:     []string{"BUD", "CGN"},
		Destination: "ZRH",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}

	t.Run("valid_request", bindRequest(validRequest, false, ""))

	t.Run("missing_origins", bindRequest(SearchRequest{
		Destination: "ZRH",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}, true, "origins is a required field"))

	t.Run("bad_date_format", bindRequest(SearchRequest{
		Origins:     []string{"BUD", "CGN"},
		Destination: "ZRH",
		DateFrom:    "15-12-2025",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}, true, "date_from does not match the 2006-01-02 format"))

	t.Run("inverted_window", bindRequest(SearchRequest{
		Origins:     []string{"BUD", "CGN"},
		Destination: "ZRH",
		DateFrom:    "2025-12-30",
		DateTo:      "2025-12-15",
		TripDays:    3,
	}, true, "date_to must be on or after date_from"))

	t.Run("zero_trip_days", bindRequest(SearchRequest{
		Origins:     []string{"BUD", "CGN"},
		Destination: "ZRH",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
	}, true, "trip_days is a required field"))
}

func TestSearchRequest_Bind_Normalizes(t *testing.T) {
	_ = InitValidator()

	req := SearchRequest{
		Origins:     []string{"bud", " cgn "},
		Destination: "zrh",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}

	if err := req.Bind(nil); err != nil {
		t.Fatalf("Bind() returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"BUD", "CGN"}, req.Origins); diff != "" {
		t.Fatalf("origins not normalized (-want +got):\n%s", diff)
	}
	if req.Destination != "ZRH" {
		t.Fatalf("destination not normalized: %s", req.Destination)
	}
	if req.Currency != DefaultCurrency {
		t.Fatalf("expected default currency %s, got %s", DefaultCurrency, req.Currency)
	}
}

func TestDestinationsRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(req DestinationsRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_request", bindRequest(DestinationsRequest{
		Origins:     []string{"BUD", "CGN"},
		CountryCode: "ch",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}, false))

	// A single origin can never produce a meeting candidate.
	t.Run("single_origin_rejected", bindRequest(DestinationsRequest{
		Origins:     []string{"BUD"},
		CountryCode: "CH",
		DateFrom:    "2025-12-15",
		DateTo:      "2025-12-30",
		TripDays:    3,
	}, true))

	t.Run("missing_country", bindRequest(DestinationsRequest{
		Origins:  []string{"BUD", "CGN"},
		DateFrom: "2025-12-15",
		DateTo:   "2025-12-30",
		TripDays: 3,
	}, true))
}
