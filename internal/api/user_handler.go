package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
)

// UserHandler handles the /p/users routes: the caller's account and
// personal profile, and user lookups.
type UserHandler struct {
	users     service.UserService
	persons   service.PersonService
	hasher    auth.PasswordHasher
	validator *Validator
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	users service.UserService,
	persons service.PersonService,
	hasher auth.PasswordHasher,
	validator *Validator,
) *UserHandler {
	return &UserHandler{
		users:     users,
		persons:   persons,
		hasher:    hasher,
		validator: validator,
	}
}

// CreateProfile handles POST /p/users. The profile belongs to the caller.
func (h *UserHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req CreatePersonRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	person, err := newPersonFromRequest(caller.Username, req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.persons.Create(r.Context(), person)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, "Profile created", created)
}

// UpdateProfile handles PUT /p/users. Account fields update the caller's
// user, profile fields the caller's person. Only admins may change a role.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if req.Role != nil && !caller.IsAdmin() {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Info("non-admin attempted a role change", slog.String("username", caller.Username))
		shared.RespondWithError(w, r, http.StatusForbidden, shared.MessageForbidden)
		return
	}

	userPatch, err := userPatchFromRequest(req, h.hasher)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	personPatch, err := personPatchFromRequest(req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if userPatch.IsEmpty() && personPatch.IsEmpty() {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{{Message: "At least one field must be provided"}})
		return
	}

	user, person, err := h.users.UpdateProfile(r.Context(), caller.Username, userPatch, personPatch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := ProfileResponse{}
	if user != nil {
		resp.User = user
	}
	if person != nil {
		resp.Person = person
	}
	shared.RespondWithData(w, r, http.StatusOK, "Profile updated", resp)
}

// GetByUsername handles GET /p/users/username?username=.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	q := UsernameQuery{Username: r.URL.Query().Get("username")}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	user, err := h.users.GetByUsername(r.Context(), q.Username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "User retrieved", user)
}

// GetByEmail handles GET /p/users/email?email=.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	q := EmailQuery{Email: r.URL.Query().Get("email")}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	user, err := h.users.GetByEmail(r.Context(), q.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "User retrieved", user)
}

// GetProfile handles GET /p/users/profile?username=.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	q := UsernameQuery{Username: r.URL.Query().Get("username")}
	if !validateRequest(w, r, h.validator, q) {
		return
	}

	person, err := h.persons.GetByUsername(r.Context(), q.Username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, "Profile retrieved", person)
}

// Delete handles DELETE /p/users, removing the caller's account and
// profile.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), caller.Username); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
