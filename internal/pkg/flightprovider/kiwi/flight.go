package kiwi

// Wire types for the Tequila /v2/search response. Only the fields the
// normalization needs are mapped.

type SearchFlightResponse struct {
	Data     []Itinerary `json:"data"`
	Currency string      `json:"currency"`
}

type Itinerary struct {
	ID             string    `json:"id"`
	FlyFrom        string    `json:"flyFrom"`
	FlyTo          string    `json:"flyTo"`
	LocalDeparture string    `json:"local_departure"`
	LocalArrival   string    `json:"local_arrival"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	Duration       Duration  `json:"duration"`
	Route          []Segment `json:"route"`
	DeepLink       string    `json:"deep_link"`
}

// Duration values are reported in seconds per direction.
type Duration struct {
	Departure int `json:"departure"`
	Return    int `json:"return"`
	Total     int `json:"total"`
}

// Segment is one flown leg. Return is 0 on the outbound direction and 1 on
// the way back.
type Segment struct {
	Return         int    `json:"return"`
	Airline        string `json:"airline"`
	FlightNo       int    `json:"flight_no"`
	LocalDeparture string `json:"local_departure"`
	LocalArrival   string `json:"local_arrival"`
}
