package mocks

import (
	"context"
	"errors"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service"
)

var errUnexpectedCall = errors.New("unexpected call")

func unexpected(op string) error {
	return service.ServerError(op, errUnexpectedCall)
}

// UserService implements service.UserService with function fields.
type UserService struct {
	RegisterFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	AuthenticateFn  func(ctx context.Context, username, password string) (*service.AuthToken, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	UpdateFn        func(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, username string, userPatch domain.UserPatch, personPatch domain.PersonPatch) (*domain.User, *domain.Person, error)
	DeleteFn        func(ctx context.Context, username string) error
}

var _ service.UserService = (*UserService)(nil)

func (m *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.RegisterFn == nil {
		return nil, unexpected("user.register")
	}
	return m.RegisterFn(ctx, user)
}

func (m *UserService) Authenticate(ctx context.Context, username, password string) (*service.AuthToken, error) {
	if m.AuthenticateFn == nil {
		return nil, unexpected("user.authenticate")
	}
	return m.AuthenticateFn(ctx, username, password)
}

func (m *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, unexpected("user.get_by_username")
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn == nil {
		return nil, unexpected("user.get_by_email")
	}
	return m.GetByEmailFn(ctx, email)
}

func (m *UserService) Update(ctx context.Context, username string, patch domain.UserPatch) (*domain.User, error) {
	if m.UpdateFn == nil {
		return nil, unexpected("user.update")
	}
	return m.UpdateFn(ctx, username, patch)
}

func (m *UserService) UpdateProfile(
	ctx context.Context,
	username string,
	userPatch domain.UserPatch,
	personPatch domain.PersonPatch,
) (*domain.User, *domain.Person, error) {
	if m.UpdateProfileFn == nil {
		return nil, nil, unexpected("user.update_profile")
	}
	return m.UpdateProfileFn(ctx, username, userPatch, personPatch)
}

func (m *UserService) Delete(ctx context.Context, username string) error {
	if m.DeleteFn == nil {
		return unexpected("user.delete")
	}
	return m.DeleteFn(ctx, username)
}

// PersonService implements service.PersonService with function fields.
type PersonService struct {
	CreateFn        func(ctx context.Context, person *domain.Person) (*domain.Person, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Person, error)
	UpdateFn        func(ctx context.Context, username string, patch domain.PersonPatch) (*domain.Person, error)
}

var _ service.PersonService = (*PersonService)(nil)

func (m *PersonService) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if m.CreateFn == nil {
		return nil, unexpected("person.create")
	}
	return m.CreateFn(ctx, person)
}

func (m *PersonService) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	if m.GetByUsernameFn == nil {
		return nil, unexpected("person.get_by_username")
	}
	return m.GetByUsernameFn(ctx, username)
}

func (m *PersonService) Update(ctx context.Context, username string, patch domain.PersonPatch) (*domain.Person, error) {
	if m.UpdateFn == nil {
		return nil, unexpected("person.update")
	}
	return m.UpdateFn(ctx, username, patch)
}

// ListingService implements service.ListingService with function fields.
type ListingService struct {
	CreateFn  func(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Listing, error)
	FindFn    func(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	UpdateFn  func(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error)
	DeleteFn  func(ctx context.Context, id string) error
}

var _ service.ListingService = (*ListingService)(nil)

func (m *ListingService) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if m.CreateFn == nil {
		return nil, unexpected("listing.create")
	}
	return m.CreateFn(ctx, listing)
}

func (m *ListingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if m.GetByIDFn == nil {
		return nil, unexpected("listing.get_by_id")
	}
	return m.GetByIDFn(ctx, id)
}

func (m *ListingService) Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	if m.FindFn == nil {
		return nil, unexpected("listing.find")
	}
	return m.FindFn(ctx, filter)
}

func (m *ListingService) Update(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error) {
	if m.UpdateFn == nil {
		return nil, unexpected("listing.update")
	}
	return m.UpdateFn(ctx, id, patch)
}

func (m *ListingService) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return unexpected("listing.delete")
	}
	return m.DeleteFn(ctx, id)
}

// ApplicationService implements service.ApplicationService with function fields.
type ApplicationService struct {
	CreateFn         func(ctx context.Context, application *domain.Application) (*domain.Application, error)
	GetByPersonIDFn  func(ctx context.Context, personID string) ([]*domain.Application, error)
	GetByListingIDFn func(ctx context.Context, listingID string) ([]*domain.Application, error)
	GetByPairFn      func(ctx context.Context, personID, listingID string) (*domain.Application, error)
	DeleteFn         func(ctx context.Context, id string) error
	DeleteByPairFn   func(ctx context.Context, personID, listingID string) error
}

var _ service.ApplicationService = (*ApplicationService)(nil)

func (m *ApplicationService) Create(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	if m.CreateFn == nil {
		return nil, unexpected("application.create")
	}
	return m.CreateFn(ctx, application)
}

func (m *ApplicationService) GetByPersonID(ctx context.Context, personID string) ([]*domain.Application, error) {
	if m.GetByPersonIDFn == nil {
		return nil, unexpected("application.get_by_person")
	}
	return m.GetByPersonIDFn(ctx, personID)
}

func (m *ApplicationService) GetByListingID(ctx context.Context, listingID string) ([]*domain.Application, error) {
	if m.GetByListingIDFn == nil {
		return nil, unexpected("application.get_by_listing")
	}
	return m.GetByListingIDFn(ctx, listingID)
}

func (m *ApplicationService) GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error) {
	if m.GetByPairFn == nil {
		return nil, unexpected("application.get_by_pair")
	}
	return m.GetByPairFn(ctx, personID, listingID)
}

func (m *ApplicationService) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return unexpected("application.delete")
	}
	return m.DeleteFn(ctx, id)
}

func (m *ApplicationService) DeleteByPair(ctx context.Context, personID, listingID string) error {
	if m.DeleteByPairFn == nil {
		return unexpected("application.delete_by_pair")
	}
	return m.DeleteByPairFn(ctx, personID, listingID)
}
