package transport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/config"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/endpoints"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/airports"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/exception"
	httptransport "github.com/meetonsamepage/flight-meetup-service/internal/pkg/transport/http"
)

const defaultAirportSearchLimit = 20

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	directory *airports.Directory,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/flights", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.MeetupEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/best-match", httptransport.MakeHandlerFunc(
			endpts.MeetupEndpoint.SearchBestMatch,
			httptransport.DecodeRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/destinations", httptransport.MakeHandlerFunc(
			endpts.MeetupEndpoint.SearchDestinations,
			httptransport.DecodeRequest[dto.DestinationsRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/everywhere", httptransport.MakeHandlerFunc(
			endpts.MeetupEndpoint.SearchEverywhere,
			httptransport.DecodeRequest[dto.EverywhereRequest],
			httptransport.ResponseWithBody,
		))
	})

	router.Route("/api/v1/airports", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/", searchAirportsHandler(directory))
		router.Get("/countries", listCountriesHandler(directory))
		router.Get("/country/{code}", airportsByCountryHandler(directory))
	})

	return router
}

func searchAirportsHandler(directory *airports.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		limit := defaultAirportSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				httptransport.ErrorResponse(r.Context(), exception.ApplicationError{
					StatusCode: http.StatusBadRequest,
					Message:    "limit must be a positive integer",
				}, w)

				return
			}

			limit = parsed
		}

		//nolint:errcheck
		httptransport.ResponseWithBody(r.Context(), w, map[string]interface{}{
			"airports": directory.Search(query, limit),
		})
	}
}

func listCountriesHandler(directory *airports.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		//nolint:errcheck
		httptransport.ResponseWithBody(r.Context(), w, map[string]interface{}{
			"countries": directory.Countries(),
		})
	}
}

func airportsByCountryHandler(directory *airports.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		found := directory.AirportsByCountry(code)
		if len(found) == 0 {
			httptransport.ErrorResponse(r.Context(), exception.ApplicationError{
				StatusCode: http.StatusNotFound,
				Message:    "no airports found for country",
			}, w)

			return
		}

		//nolint:errcheck
		httptransport.ResponseWithBody(r.Context(), w, map[string]interface{}{
			"airports": found,
		})
	}
}
