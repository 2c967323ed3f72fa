package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      now,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(testSecret, time.Hour, func() time.Time { return fixedTime })
	user := domain.NewUser("newUser", "random@mail.com", "hash", domain.RoleAdmin)

	token, expiresAt, err := svc.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, fixedTime.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "newUser", claims.Username)
	assert.Equal(t, "newUser", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	user := domain.NewUser("newUser", "random@mail.com", "hash", domain.RoleUser)

	issue := func(secret string, at time.Time) string {
		token, _, err := newTestJWTService(secret, time.Hour, func() time.Time { return at }).
			GenerateToken(context.Background(), user)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "valid token", token: issue(testSecret, fixedTime), now: fixedTime.Add(30 * time.Minute)},
		{name: "expired token", token: issue(testSecret, fixedTime), now: fixedTime.Add(2 * time.Hour), wantErr: ErrExpiredToken},
		{name: "issued in the future", token: issue(testSecret, fixedTime.Add(time.Hour)), now: fixedTime, wantErr: ErrInvalidToken},
		{name: "wrong secret", token: issue("wrong-secret-that-is-long-enough-for-testing", fixedTime), now: fixedTime, wantErr: ErrInvalidToken},
		{name: "malformed token", token: "not.a.token", now: fixedTime, wantErr: ErrInvalidToken},
		{name: "empty token", token: "", now: fixedTime, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestJWTService(testSecret, time.Hour, func() time.Time { return tt.now })
			claims, err := svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "newUser", claims.Username)
		})
	}
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwtCustomClaims{
		Username: "newUser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "newUser",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := newTestJWTService(testSecret, time.Hour, time.Now)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
