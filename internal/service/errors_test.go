package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	ctx := context.Background()
	log := slog.Default()

	tests := []struct {
		name        string
		err         error
		res         resource
		wantKind    Kind
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         fmt.Errorf("get: %w", store.ErrListingNotFound),
			res:         listingResource,
			wantKind:    KindNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Listing was not found",
		},
		{
			name:        "duplicate",
			err:         fmt.Errorf("%w: unique violation", store.ErrDuplicate),
			res:         userResource,
			wantKind:    KindUniqueConstraint,
			wantStatus:  http.StatusConflict,
			wantMessage: "A user with this username or email already exists",
		},
		{
			name:        "schema failure carries field messages",
			err:         &store.SchemaError{Collection: "listings", Messages: []string{"workType: must be one of the following: \"Remote\", \"Hybrid\", \"On-site\""}},
			res:         listingResource,
			wantKind:    KindConstraint,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed: workType: must be one of the following: \"Remote\", \"Hybrid\", \"On-site\"",
		},
		{
			name:        "missing reference",
			err:         fmt.Errorf("%w: foreign key violation", store.ErrInvalidEntity),
			res:         applicationResource,
			wantKind:    KindConstraint,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Referenced person or listing does not exist",
		},
		{
			name:        "anything else",
			err:         errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			res:         personResource,
			wantKind:    KindServer,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: ServerErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(ctx, log, "test.op", tt.res, tt.err)

			var svcErr *Error
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tt.wantKind, svcErr.Kind)
			assert.Equal(t, tt.wantStatus, svcErr.Status)
			assert.Equal(t, tt.wantMessage, svcErr.Message)
			assert.Equal(t, "test.op", svcErr.Op)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_PassesTypedErrorsThrough(t *testing.T) {
	original := NotFound("inner.op", "Person was not found", store.ErrPersonNotFound)

	err := classify(context.Background(), slog.Default(), "outer.op", userResource, fmt.Errorf("wrapped: %w", original))

	assert.Same(t, original, err)
}

func TestEmptyResult(t *testing.T) {
	err := emptyResult(context.Background(), slog.Default(), "application.get_by_person", applicationResource)

	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Applications were not found", err.(*Error).Message)
	assert.Equal(t, http.StatusNotFound, err.(*Error).Status)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unique_constraint", KindUniqueConstraint.String())
	assert.Equal(t, "constraint", KindConstraint.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "server", KindServer.String())
}

func TestUnauthorized(t *testing.T) {
	err := Unauthorized("user.authenticate", nil)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "Authentication failed", err.Message)
	assert.Equal(t, "user.authenticate: Authentication failed", err.Error())
}
