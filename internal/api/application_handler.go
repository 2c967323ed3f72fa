package api

import (
	"net/http"
	"strconv"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/service"
)

// ApplicationHandler handles the /p/applications routes.
type ApplicationHandler struct {
	applications service.ApplicationService
	validator    *Validator
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applications service.ApplicationService, validator *Validator) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, validator: validator}
}

// Create handles POST /p/applications.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	app, err := newApplicationFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.applications.Create(r.Context(), app)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, "Application created", created)
}

// Get handles GET /p/applications. uniqueIndex=true looks up the single
// application of a person and listing pair; otherwise personId takes
// precedence over listingId.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := ApplicationQuery{
		PersonID:    values.Get("personId"),
		ListingID:   values.Get("listingId"),
		UniqueIndex: values.Get("uniqueIndex"),
	}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	if pair, _ := strconv.ParseBool(q.UniqueIndex); pair {
		app, err := h.applications.GetByPair(r.Context(), q.PersonID, q.ListingID)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithData(w, r, http.StatusOK, "Application retrieved", app)
		return
	}

	var (
		apps any
		err  error
	)
	if q.PersonID != "" {
		apps, err = h.applications.GetByPersonID(r.Context(), q.PersonID)
	} else {
		apps, err = h.applications.GetByListingID(r.Context(), q.ListingID)
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "Applications retrieved", apps)
}

// Delete handles DELETE /p/applications?id= and
// DELETE /p/applications?personId=&listingId=.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := DeleteApplicationQuery{
		ID:        values.Get("id"),
		PersonID:  values.Get("personId"),
		ListingID: values.Get("listingId"),
	}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	var err error
	if q.ID != "" {
		err = h.applications.Delete(r.Context(), q.ID)
	} else {
		err = h.applications.DeleteByPair(r.Context(), q.PersonID, q.ListingID)
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
