package mocks

import (
	"context"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// UserStore is a testify mock of store.UserStore.
// WithTx returns the mock itself unless a different value is configured.
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, username, patch)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *UserStore) WithTx(tx store.DBTX) store.UserStore {
	return m
}

func userOrNil(v any) *domain.User {
	if u, ok := v.(*domain.User); ok {
		return u
	}
	return nil
}

// PersonStore is a testify mock of store.PersonStore.
type PersonStore struct {
	mock.Mock
}

var _ store.PersonStore = (*PersonStore)(nil)

func (m *PersonStore) Create(ctx context.Context, person *domain.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *PersonStore) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	return personOrNil(args.Get(0)), args.Error(1)
}

func (m *PersonStore) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	args := m.Called(ctx, username)
	return personOrNil(args.Get(0)), args.Error(1)
}

func (m *PersonStore) UpdateByUsername(
	ctx context.Context,
	username string,
	patch domain.PersonPatch,
) (*domain.Person, error) {
	args := m.Called(ctx, username, patch)
	return personOrNil(args.Get(0)), args.Error(1)
}

func (m *PersonStore) DeleteByUsername(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *PersonStore) WithTx(tx store.DBTX) store.PersonStore {
	return m
}

func personOrNil(v any) *domain.Person {
	if p, ok := v.(*domain.Person); ok {
		return p
	}
	return nil
}

// ListingStore is a testify mock of store.ListingStore.
type ListingStore struct {
	mock.Mock
}

var _ store.ListingStore = (*ListingStore)(nil)

func (m *ListingStore) Create(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *ListingStore) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*domain.Listing); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListingStore) Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	args := m.Called(ctx, filter)
	if l, ok := args.Get(0).([]*domain.Listing); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListingStore) Update(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error) {
	args := m.Called(ctx, id, patch)
	if l, ok := args.Get(0).(*domain.Listing); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListingStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ApplicationStore is a testify mock of store.ApplicationStore.
type ApplicationStore struct {
	mock.Mock
}

var _ store.ApplicationStore = (*ApplicationStore)(nil)

func (m *ApplicationStore) Create(ctx context.Context, application *domain.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *ApplicationStore) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	return applicationOrNil(args.Get(0)), args.Error(1)
}

func (m *ApplicationStore) FindByPersonID(ctx context.Context, personID string) ([]*domain.Application, error) {
	args := m.Called(ctx, personID)
	return applicationsOrNil(args.Get(0)), args.Error(1)
}

func (m *ApplicationStore) FindByListingID(ctx context.Context, listingID string) ([]*domain.Application, error) {
	args := m.Called(ctx, listingID)
	return applicationsOrNil(args.Get(0)), args.Error(1)
}

func (m *ApplicationStore) GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error) {
	args := m.Called(ctx, personID, listingID)
	return applicationOrNil(args.Get(0)), args.Error(1)
}

func (m *ApplicationStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ApplicationStore) DeleteByPair(ctx context.Context, personID, listingID string) (*domain.Application, error) {
	args := m.Called(ctx, personID, listingID)
	return applicationOrNil(args.Get(0)), args.Error(1)
}

func applicationOrNil(v any) *domain.Application {
	if a, ok := v.(*domain.Application); ok {
		return a
	}
	return nil
}

func applicationsOrNil(v any) []*domain.Application {
	if a, ok := v.([]*domain.Application); ok {
		return a
	}
	return nil
}
