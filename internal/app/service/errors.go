package service

import (
	"net/http"

	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/exception"
)

var ErrNoAirportsInCountry = exception.ApplicationError{
	Message:    "no airports found for country",
	StatusCode: http.StatusNotFound,
}
