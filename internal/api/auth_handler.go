package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users     service.UserService
	hasher    auth.PasswordHasher
	validator *Validator
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, hasher auth.PasswordHasher, validator *Validator) *AuthHandler {
	return &AuthHandler{
		users:     users,
		hasher:    hasher,
		validator: validator,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := newUserFromRequest(req, h.hasher)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.users.Register(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, "User registered", created)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	token, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Login successful", LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
