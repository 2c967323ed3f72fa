package auth

import "errors"

// Token validation errors.
var (
	// ErrInvalidToken indicates a malformed token or a bad signature.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token is past its exp claim.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates an nbf claim in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
)
