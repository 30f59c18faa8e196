package match

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

func offer(origin, date string, price float64) dto.FlightOffer {
	return dto.FlightOffer{
		DepartureAirport: origin,
		ArrivalAirport:   "ZRH",
		DepartureDate:    date,
		ReturnDate:       "2025-12-23",
		Price:            price,
		Currency:         "EUR",
	}
}

func TestBestDateMatches_Closure(t *testing.T) {
	matchRequest := func(offersByOrigin map[string][]dto.FlightOffer, origins []string, want []dto.DateMatch) func(t *testing.T) {
		return func(t *testing.T) {
			got := BestDateMatches(offersByOrigin, origins)

			diff := cmp.Diff(want, got)
			if diff != "" {
				t.Fatalf("BestDateMatches() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	budOffer := offer("BUD", "2025-12-20", 80)
	cgnSameDay := offer("CGN", "2025-12-20", 95)
	cgnNextDay := offer("CGN", "2025-12-21", 95)

	t.Run("same_day_match", matchRequest(
		map[string][]dto.FlightOffer{
			"BUD": {budOffer},
			"CGN": {cgnSameDay},
		},
		[]string{"BUD", "CGN"},
		[]dto.DateMatch{
			{
				DepartureDate: "2025-12-20",
				ReturnDate:    "2025-12-23",
				CombinedPrice: 175,
				Currency:      "EUR",
				Kind:          KindSameDay,
				Flights:       []dto.FlightOffer{budOffer, cgnSameDay},
			},
		},
	))

	t.Run("one_day_diff_match", matchRequest(
		map[string][]dto.FlightOffer{
			"BUD": {budOffer},
			"CGN": {cgnNextDay},
		},
		[]string{"BUD", "CGN"},
		[]dto.DateMatch{
			{
				DepartureDate: "2025-12-20",
				ReturnDate:    "2025-12-23",
				CombinedPrice: 175,
				Currency:      "EUR",
				Kind:          KindOneDayDiff,
				Flights:       []dto.FlightOffer{budOffer, cgnNextDay},
			},
		},
	))

	t.Run("single_origin_yields_nothing", matchRequest(
		map[string][]dto.FlightOffer{"BUD": {budOffer}},
		[]string{"BUD"},
		nil,
	))

	t.Run("empty_side_yields_nothing", matchRequest(
		map[string][]dto.FlightOffer{
			"BUD": {budOffer},
			"CGN": {},
		},
		[]string{"BUD", "CGN"},
		nil,
	))

	t.Run("no_nearby_dates_yields_nothing", matchRequest(
		map[string][]dto.FlightOffer{
			"BUD": {budOffer},
			"CGN": {offer("CGN", "2025-12-25", 95)},
		},
		[]string{"BUD", "CGN"},
		nil,
	))
}

func TestBestDateMatches_CheapestOfferPerDate(t *testing.T) {
	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": {
			offer("BUD", "2025-12-20", 120),
			offer("BUD", "2025-12-20", 80),
		},
		"CGN": {
			offer("CGN", "2025-12-20", 95),
			offer("CGN", "2025-12-20", 200),
		},
	}, []string{"BUD", "CGN"})

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].CombinedPrice != 175 {
		t.Fatalf("expected combined price 175, got %v", got[0].CombinedPrice)
	}
}

func TestBestDateMatches_SameDayWinsOverCheaperAdjacentDay(t *testing.T) {
	// Offsets are probed same-day first, so a cheaper adjacent-day pairing
	// is shadowed for that anchor date.
	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": {offer("BUD", "2025-12-20", 80)},
		"CGN": {
			offer("CGN", "2025-12-20", 95),
			offer("CGN", "2025-12-21", 10),
		},
	}, []string{"BUD", "CGN"})

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Kind != KindSameDay {
		t.Fatalf("expected %s, got %s", KindSameDay, got[0].Kind)
	}
	if got[0].CombinedPrice != 175 {
		t.Fatalf("expected combined price 175, got %v", got[0].CombinedPrice)
	}
}

func TestBestDateMatches_RankedAndCapped(t *testing.T) {
	offersBUD := make([]dto.FlightOffer, 0, 8)
	offersCGN := make([]dto.FlightOffer, 0, 8)
	for i := 0; i < 8; i++ {
		date := fmt.Sprintf("2025-12-%02d", 10+i*2)
		offersBUD = append(offersBUD, offer("BUD", date, float64(100-i*10)))
		offersCGN = append(offersCGN, offer("CGN", date, 50))
	}

	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": offersBUD,
		"CGN": offersCGN,
	}, []string{"BUD", "CGN"})

	if len(got) != 5 {
		t.Fatalf("expected at most 5 matches, got %d", len(got))
	}

	for i := 1; i < len(got); i++ {
		if got[i].CombinedPrice < got[i-1].CombinedPrice {
			t.Fatalf("matches not sorted ascending by combined price: %v before %v",
				got[i-1].CombinedPrice, got[i].CombinedPrice)
		}
	}
}

func TestBestDateMatches_CurrencyMismatchRejected(t *testing.T) {
	budOffer := offer("BUD", "2025-12-20", 80)

	cgnOffer := offer("CGN", "2025-12-20", 95)
	cgnOffer.Currency = "USD"

	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": {budOffer},
		"CGN": {cgnOffer},
	}, []string{"BUD", "CGN"})

	// Prices in different currencies are never summed into one figure.
	if len(got) != 0 {
		t.Fatalf("expected no matches for mismatched currencies, got %d", len(got))
	}
}

func TestBestDateMatches_UnparseableAnchorDateSkipped(t *testing.T) {
	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": {
			offer("BUD", "not-a-date", 10),
			offer("BUD", "2025-12-20", 80),
		},
		"CGN": {offer("CGN", "2025-12-20", 95)},
	}, []string{"BUD", "CGN"})

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].DepartureDate != "2025-12-20" {
		t.Fatalf("expected match on 2025-12-20, got %s", got[0].DepartureDate)
	}
}

func TestBestDateMatches_ThreeOrigins(t *testing.T) {
	got := BestDateMatches(map[string][]dto.FlightOffer{
		"BUD": {offer("BUD", "2025-12-20", 80)},
		"CGN": {offer("CGN", "2025-12-21", 95)},
		"WAW": {offer("WAW", "2025-12-20", 60)},
	}, []string{"BUD", "CGN", "WAW"})

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}

	want := dto.DateMatch{
		DepartureDate: "2025-12-20",
		ReturnDate:    "2025-12-23",
		CombinedPrice: 235,
		Currency:      "EUR",
		Kind:          KindOneDayDiff,
		Flights: []dto.FlightOffer{
			offer("BUD", "2025-12-20", 80),
			offer("CGN", "2025-12-21", 95),
			offer("WAW", "2025-12-20", 60),
		},
	}

	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("BestDateMatches() mismatch (-want +got):\n%s", diff)
	}
}
