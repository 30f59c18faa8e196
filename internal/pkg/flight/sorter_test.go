//go:build unit

package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

func TestSortOffersByPrice_Closure(t *testing.T) {
	offers := []dto.FlightOffer{
		{DepartureDate: "2025-12-20", Price: 120},
		{DepartureDate: "2025-12-21", Price: 80},
		{DepartureDate: "2025-12-22", Price: 95},
	}

	sortRequest := func(offers []dto.FlightOffer, wantPrices []float64) func(t *testing.T) {
		return func(t *testing.T) {
			// Copy to avoid shared state
			oCopy := make([]dto.FlightOffer, len(offers))
			copy(oCopy, offers)

			got := SortOffersByPrice(oCopy)
			gotPrices := make([]float64, len(got))
			for i, o := range got {
				gotPrices[i] = o.Price
			}

			diff := cmp.Diff(wantPrices, gotPrices)
			if diff != "" {
				t.Fatalf("SortOffersByPrice result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("ascending_by_price", sortRequest(offers, []float64{80, 95, 120}))
	t.Run("empty", sortRequest(nil, []float64{}))
}

func TestSortOffersByPrice_StableOnTies(t *testing.T) {
	offers := []dto.FlightOffer{
		{DepartureDate: "2025-12-20", Price: 80},
		{DepartureDate: "2025-12-21", Price: 80},
	}

	got := SortOffersByPrice(offers)

	if got[0].DepartureDate != "2025-12-20" || got[1].DepartureDate != "2025-12-21" {
		t.Fatalf("equal prices should keep provider order, got %v then %v",
			got[0].DepartureDate, got[1].DepartureDate)
	}
}

func TestSortCandidatesByPrice_Closure(t *testing.T) {
	candidates := []dto.DestinationCandidate{
		{Destination: "ZRH", CombinedPrice: 300},
		{Destination: "GVA", CombinedPrice: 175},
		{Destination: "BSL", CombinedPrice: 220},
	}

	got := SortCandidatesByPrice(candidates)

	want := []string{"GVA", "BSL", "ZRH"}
	gotCodes := make([]string, len(got))
	for i, c := range got {
		gotCodes[i] = c.Destination
	}

	if diff := cmp.Diff(want, gotCodes); diff != "" {
		t.Fatalf("SortCandidatesByPrice result mismatch (-want +got):\n%s", diff)
	}
}
