package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/redact"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
)

// UserResolver loads the account named by a token subject.
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate validates the bearer token of the request, re-resolves the
// user it names and stores that user in the request context. Requests
// without a valid token or whose user no longer exists get 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), slog.Default())

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			log.Debug("missing or malformed authorization header")
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageUnauthorized)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			log.Debug("rejected bearer token", slog.String("error", redact.Error(err)))
			shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageUnauthorized)
			return
		}

		user, err := m.users.GetByUsername(r.Context(), claims.Username)
		if err != nil {
			if service.IsKind(err, service.KindNotFound) {
				log.Info("token subject no longer exists", slog.String("username", claims.Username))
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageUnauthorized)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MessageServerError, err)
			return
		}

		ctx := shared.WithUser(r.Context(), user)
		ctx = logger.WithLogger(ctx, log.With(slog.String("user_id", user.ID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects authenticated callers whose role differs from role
// with 403. It must run after Authenticate.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := shared.UserFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, shared.MessageUnauthorized)
				return
			}
			if user.Role != role {
				shared.RespondWithError(w, r, http.StatusForbidden, shared.MessageForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
