package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/service"
)

// errInvalidInput marks mapper failures caused by the request itself.
var errInvalidInput = errors.New("invalid input")

// MapErrorToStatusCode returns the HTTP status for err. Service errors
// carry their own status; anything else is a server error.
func MapErrorToStatusCode(err error) int {
	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.Status != 0 {
		return svcErr.Status
	}
	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the client message for err. Only service
// errors expose their message; everything else gets the generic one.
func GetSafeErrorMessage(err error) string {
	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return shared.MessageServerError
}

// HandleAPIError writes the response for a failed operation.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errInvalidInput) {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{{Message: "Request contains an invalid value"}})
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
