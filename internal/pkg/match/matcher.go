package match

import (
	"sort"
	"time"

	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
)

const (
	// KindSameDay tags matches where every origin departs on the same date.
	KindSameDay = "same_day"
	// KindOneDayDiff tags matches where at least one origin departs a day
	// off the anchor date.
	KindOneDayDiff = "1_day_diff"

	dateLayout = "2006-01-02"

	// maxMatches caps the ranked result.
	maxMatches = 5
)

// dayOffsets are probed in priority order: a same-day pairing wins over an
// adjacent-day one for the same anchor date, even when the adjacent day
// would be cheaper.
var dayOffsets = [3]int{0, 1, -1}

// BestDateMatches pairs offers across origins by nearby departure dates and
// ranks the pairings by combined price, cheapest first, at most 5.
//
// The first origin anchors the scan: for each of its departure dates every
// other origin is probed at offsets 0, +1, -1 days, and a match is emitted
// only when all origins hit some offset. Per date and origin only the
// cheapest offer contributes. Offers priced in different currencies are
// never combined. Fewer than two origins, or any origin without offers,
// yields an empty result rather than an error.
func BestDateMatches(offersByOrigin map[string][]dto.FlightOffer, origins []string) []dto.DateMatch {
	if len(origins) < 2 {
		return nil
	}

	buckets := make([]map[string]dto.FlightOffer, len(origins))
	for i, origin := range origins {
		offers := offersByOrigin[origin]
		if len(offers) == 0 {
			return nil
		}

		buckets[i] = cheapestByDate(offers)
	}

	anchor := buckets[0]

	anchorDates := make([]string, 0, len(anchor))
	for date := range anchor {
		anchorDates = append(anchorDates, date)
	}
	sort.Strings(anchorDates)

	var matches []dto.DateMatch

	for _, date := range anchorDates {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			// A malformed date only poisons its own bucket.
			continue
		}

		anchorOffer := anchor[date]

		flights := make([]dto.FlightOffer, 0, len(origins))
		flights = append(flights, anchorOffer)

		combined := anchorOffer.Price
		sameDay := true
		complete := true

		for _, bucket := range buckets[1:] {
			offer, offset, ok := probeOffsets(bucket, day)
			if !ok {
				complete = false
				break
			}

			if offer.Currency != anchorOffer.Currency {
				// Mixed currencies cannot be summed into one price.
				complete = false
				break
			}

			if offset != 0 {
				sameDay = false
			}

			combined += offer.Price
			flights = append(flights, offer)
		}

		if !complete {
			continue
		}

		kind := KindSameDay
		if !sameDay {
			kind = KindOneDayDiff
		}

		matches = append(matches, dto.DateMatch{
			DepartureDate: date,
			ReturnDate:    anchorOffer.ReturnDate,
			CombinedPrice: combined,
			Currency:      anchorOffer.Currency,
			Kind:          kind,
			Flights:       flights,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CombinedPrice < matches[j].CombinedPrice
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}

	return matches
}

// cheapestByDate reduces an origin's offers to one bucket per departure
// date, keeping the lowest price. Ties keep the first seen offer.
func cheapestByDate(offers []dto.FlightOffer) map[string]dto.FlightOffer {
	buckets := make(map[string]dto.FlightOffer)

	for _, offer := range offers {
		current, ok := buckets[offer.DepartureDate]
		if !ok || offer.Price < current.Price {
			buckets[offer.DepartureDate] = offer
		}
	}

	return buckets
}

// probeOffsets returns the bucket at the first populated offset around the
// anchor day, along with the offset that hit.
func probeOffsets(bucket map[string]dto.FlightOffer, day time.Time) (dto.FlightOffer, int, bool) {
	for _, offset := range dayOffsets {
		date := day.AddDate(0, 0, offset).Format(dateLayout)

		if offer, ok := bucket[date]; ok {
			return offer, offset, true
		}
	}

	return dto.FlightOffer{}, 0, false
}
