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

func TestPersonService(t *testing.T) {
	ctx := context.Background()
	persons := new(mocks.PersonStore)
	svc, err := service.NewPersonService(persons, testLogger)
	require.NoError(t, err)

	person := domain.NewPerson("newUser")
	phone := "555-123-4567"
	patch := domain.PersonPatch{Phone: &phone}

	persons.On("Create", mock.Anything, person).Return(nil).Once()
	persons.On("Create", mock.Anything, person).Return(store.ErrDuplicate)
	persons.On("GetByUsername", mock.Anything, "ghost").Return(nil, store.ErrPersonNotFound)
	persons.On("UpdateByUsername", mock.Anything, "newUser", patch).Return(person, nil)

	created, err := svc.Create(ctx, person)
	require.NoError(t, err)
	assert.Equal(t, "newUser", created.Username)

	_, err = svc.Create(ctx, person)
	assert.Equal(t, "A profile already exists for this username", requireKind(t, err, service.KindUniqueConstraint).Message)

	_, err = svc.GetByUsername(ctx, "ghost")
	assert.Equal(t, "Person was not found", requireKind(t, err, service.KindNotFound).Message)

	_, err = svc.Update(ctx, "newUser", patch)
	require.NoError(t, err)
	persons.AssertExpectations(t)
}

func TestNewPersonService_NilStore(t *testing.T) {
	_, err := service.NewPersonService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
