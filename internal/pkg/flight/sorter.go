package flight

import (
	"sort"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

// SortOffersByPrice orders one origin's offers ascending by price, in
// place. Equal prices keep their provider order.
func SortOffersByPrice(offers []dto.FlightOffer) []dto.FlightOffer {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})

	return offers
}

// SortCandidatesByPrice orders destination candidates ascending by combined
// price, in place.
func SortCandidatesByPrice(candidates []dto.DestinationCandidate) []dto.DestinationCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CombinedPrice < candidates[j].CombinedPrice
	})

	return candidates
}
