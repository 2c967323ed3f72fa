// Package auth issues and validates bearer tokens and hashes passwords.
package auth

import (
	"context"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// JWTService defines operations for managing bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token identifying user by username and
	// carrying the user's role. It returns the token and its expiry.
	GenerateToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a bearer token.
type Claims struct {
	// Username identifies the user the token was issued for; it is also the subject.
	Username string `json:"username"`

	// Role is the role the user held when the token was issued. Authorization
	// decisions use the role of the re-resolved user, not this claim.
	Role domain.Role `json:"role"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
