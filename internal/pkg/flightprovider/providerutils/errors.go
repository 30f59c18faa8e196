package providerutils

import (
	"net/http"

	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/exception"
)

// ErrMissingCredential is the only provider error that aborts a whole run:
// it means the client is misconfigured, so retrying other origins or
// destinations cannot help.
var ErrMissingCredential = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "provider API key is not configured",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}
