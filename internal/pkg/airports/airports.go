package airports

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed airports.json
var dataFS embed.FS

type Airport struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type directoryFile struct {
	Airports  []Airport `json:"airports"`
	Countries []Country `json:"countries"`
}

// Directory is the static airport reference data, built once at startup and
// read-only afterwards.
type Directory struct {
	airports  []Airport
	countries []Country
	byCountry map[string][]Airport
}

// NewDirectory parses the embedded dataset. Construction is explicit so
// there is no lazy shared state to race on.
func NewDirectory() (*Directory, error) {
	raw, err := dataFS.ReadFile("airports.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded airport data: %w", err)
	}

	var file directoryFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse airport data: %w", err)
	}

	byCountry := make(map[string][]Airport)
	for _, airport := range file.Airports {
		cc := strings.ToUpper(airport.CountryCode)
		byCountry[cc] = append(byCountry[cc], airport)
	}

	return &Directory{
		airports:  file.Airports,
		countries: file.Countries,
		byCountry: byCountry,
	}, nil
}

// Search matches the query against code, name, city and country,
// case-insensitive. Exact code matches rank first, then code prefixes,
// then city prefixes; within a rank results order by city.
func (d *Directory) Search(query string, limit int) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Airport{}
	}

	results := make([]Airport, 0)
	for _, airport := range d.airports {
		if strings.Contains(strings.ToLower(airport.Code), query) ||
			strings.Contains(strings.ToLower(airport.Name), query) ||
			strings.Contains(strings.ToLower(airport.City), query) ||
			strings.Contains(strings.ToLower(airport.Country), query) {
			results = append(results, airport)
		}
	}

	rank := func(a Airport) int {
		code := strings.ToLower(a.Code)
		city := strings.ToLower(a.City)

		switch {
		case code == query:
			return 0
		case strings.HasPrefix(code, query):
			return 1
		case strings.HasPrefix(city, query):
			return 2
		default:
			return 3
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := rank(results[i]), rank(results[j])
		if ri != rj {
			return ri < rj
		}

		return results[i].City < results[j].City
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

func (d *Directory) Countries() []Country {
	return d.countries
}

func (d *Directory) AirportsByCountry(countryCode string) []Airport {
	return d.byCountry[strings.ToUpper(countryCode)]
}

// CodesByCountry returns the airport codes of one country in dataset order.
func (d *Directory) CodesByCountry(countryCode string) []string {
	airports := d.AirportsByCountry(countryCode)

	codes := make([]string, 0, len(airports))
	for _, airport := range airports {
		codes = append(codes, airport.Code)
	}

	return codes
}

// Codes returns every airport code except the given ones, in dataset order.
// Open exploration uses this with the search's own origins excluded.
func (d *Directory) Codes(exclude []string) []string {
	excluded := make(map[string]struct{}, len(exclude))
	for _, code := range exclude {
		excluded[strings.ToUpper(code)] = struct{}{}
	}

	codes := make([]string, 0, len(d.airports))
	for _, airport := range d.airports {
		if _, ok := excluded[airport.Code]; ok {
			continue
		}

		codes = append(codes, airport.Code)
	}

	return codes
}
