package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/mocks"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApplicationService(t *testing.T) (service.ApplicationService, *mocks.ApplicationStore) {
	t.Helper()
	applications := new(mocks.ApplicationStore)
	svc, err := service.NewApplicationService(applications, testLogger)
	require.NoError(t, err)
	return svc, applications
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		storeErr    error
		wantKind    service.Kind
		wantMessage string
	}{
		{name: "success"},
		{name: "already applied", storeErr: store.ErrDuplicate, wantKind: service.KindUniqueConstraint,
			wantMessage: "An application for this person and listing already exists"},
		{name: "unknown listing", storeErr: store.ErrInvalidEntity, wantKind: service.KindConstraint,
			wantMessage: "Referenced person or listing does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, applications := newApplicationService(t)
			app, err := domain.NewApplication(domain.NewID(), domain.NewID())
			require.NoError(t, err)
			applications.On("Create", mock.Anything, app).Return(tt.storeErr)

			got, err := svc.Create(ctx, app)
			if tt.wantMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, app.ID, got.ID)
				return
			}
			assert.Equal(t, tt.wantMessage, requireKind(t, err, tt.wantKind).Message)
		})
	}
}

func TestApplicationService_Reads(t *testing.T) {
	ctx := context.Background()
	svc, applications := newApplicationService(t)
	personID, listingID := domain.NewID(), domain.NewID()
	app, err := domain.NewApplication(personID, listingID)
	require.NoError(t, err)

	applications.On("FindByPersonID", mock.Anything, personID).Return([]*domain.Application{app}, nil)
	applications.On("FindByListingID", mock.Anything, listingID).Return([]*domain.Application{}, nil)
	applications.On("GetByPair", mock.Anything, personID, listingID).Return(app, nil)
	applications.On("GetByPair", mock.Anything, listingID, personID).Return(nil, store.ErrApplicationNotFound)

	byPerson, err := svc.GetByPersonID(ctx, personID)
	require.NoError(t, err)
	assert.Len(t, byPerson, 1)

	_, err = svc.GetByListingID(ctx, listingID)
	assert.Equal(t, "Applications were not found", requireKind(t, err, service.KindNotFound).Message)

	pair, err := svc.GetByPair(ctx, personID, listingID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, pair.ID)

	_, err = svc.GetByPair(ctx, listingID, personID)
	assert.Equal(t, "Application was not found", requireKind(t, err, service.KindNotFound).Message)
}

func TestApplicationService_Deletes(t *testing.T) {
	ctx := context.Background()
	svc, applications := newApplicationService(t)
	personID, listingID := domain.NewID(), domain.NewID()
	app, err := domain.NewApplication(personID, listingID)
	require.NoError(t, err)

	applications.On("Delete", mock.Anything, app.ID).Return(nil).Once()
	applications.On("Delete", mock.Anything, app.ID).Return(store.ErrApplicationNotFound)
	applications.On("DeleteByPair", mock.Anything, personID, listingID).Return(app, nil).Once()
	applications.On("DeleteByPair", mock.Anything, personID, listingID).Return(nil, store.ErrApplicationNotFound)

	require.NoError(t, svc.Delete(ctx, app.ID))
	requireKind(t, svc.Delete(ctx, app.ID), service.KindNotFound)
	requireKind(t, svc.Delete(ctx, app.ID), service.KindNotFound)

	require.NoError(t, svc.DeleteByPair(ctx, personID, listingID))
	requireKind(t, svc.DeleteByPair(ctx, personID, listingID), service.KindNotFound)
}
