package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// PersonService manages personal profiles.
type PersonService interface {
	// Create stores a new profile.
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// GetByUsername retrieves the profile of username.
	GetByUsername(ctx context.Context, username string) (*domain.Person, error)

	// Update applies a partial update to the profile of username.
	Update(ctx context.Context, username string, patch domain.PersonPatch) (*domain.Person, error)
}

type personService struct {
	persons store.PersonStore
	logger  *slog.Logger
}

// NewPersonService creates a new PersonService.
func NewPersonService(persons store.PersonStore, logger *slog.Logger) (PersonService, error) {
	if persons == nil {
		return nil, domain.NewValidationError("persons", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &personService{
		persons: persons,
		logger:  logger.With(slog.String("component", "person_service")),
	}, nil
}

// Create implements PersonService.Create
func (s *personService) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	const op = "person.create"
	if err := s.persons.Create(ctx, person); err != nil {
		return nil, classify(ctx, s.logger, op, personResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("person created",
		slog.String("operation", op),
		slog.String("person_id", person.ID))
	return person, nil
}

// GetByUsername implements PersonService.GetByUsername
func (s *personService) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	person, err := s.persons.GetByUsername(ctx, username)
	if err != nil {
		return nil, classify(ctx, s.logger, "person.get_by_username", personResource, err)
	}
	return person, nil
}

// Update implements PersonService.Update
func (s *personService) Update(ctx context.Context, username string, patch domain.PersonPatch) (*domain.Person, error) {
	person, err := s.persons.UpdateByUsername(ctx, username, patch)
	if err != nil {
		return nil, classify(ctx, s.logger, "person.update", personResource, err)
	}
	return person, nil
}
