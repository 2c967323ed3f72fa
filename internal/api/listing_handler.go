package api

import (
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/service"
)

// ListingHandler handles the /p/listings routes.
type ListingHandler struct {
	listings  service.ListingService
	validator *Validator
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listings service.ListingService, validator *Validator) *ListingHandler {
	return &ListingHandler{listings: listings, validator: validator}
}

// Create handles POST /p/listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	listing, err := newListingFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.listings.Create(r.Context(), listing)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusCreated, "Listing created", created)
}

// Update handles PUT /p/listings. The listing is named by the id field of
// the body.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateListingRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patch, err := listingPatchFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	updated, err := h.listings.Update(r.Context(), req.ID, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "Listing updated", updated)
}

// Get handles GET /p/listings. With an id it returns that listing,
// otherwise every listing matching the enum filters.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q := ListingQuery{
		ID:              values.Get("id"),
		Status:          values.Get("status"),
		WorkType:        values.Get("workType"),
		EmploymentType:  values.Get("employmentType"),
		ExperienceLevel: values.Get("experienceLevel"),
	}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	if q.ID != "" {
		listing, err := h.listings.GetByID(r.Context(), q.ID)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithData(w, r, http.StatusOK, "Listing retrieved", listing)
		return
	}

	filter, err := listingFilterFromQuery(q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	listings, err := h.listings.Find(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "Listings retrieved", listings)
}

// Delete handles DELETE /p/listings?id=.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	q := ListingIDQuery{ID: r.URL.Query().Get("id")}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	if err := h.listings.Delete(r.Context(), q.ID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
