package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
)

// decodeAndValidate decodes the JSON body into dst and validates it. It
// writes the 400 response and returns false when either step fails.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *Validator, dst any) bool {
	if err := shared.DecodeJSON(r, dst); err != nil {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{{Message: "Request body must be valid JSON"}})
		return false
	}
	return validateRequest(w, r, v, dst)
}

// validateRequest writes the 400 response and returns false when req
// fails validation.
func validateRequest(w http.ResponseWriter, r *http.Request, v *Validator, req any) bool {
	if errs := v.Validate(req); len(errs) > 0 {
		shared.RespondWithValidationErrors(w, r, errs)
		return false
	}
	return true
}

// callerFrom returns the authenticated user. It writes a 401 and returns
// false when the route is not behind the auth middleware.
func callerFrom(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageUnauthorized)
		return nil, false
	}
	return user, true
}
