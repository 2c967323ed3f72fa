package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// ApplicationService manages applications of persons to listings.
type ApplicationService interface {
	Create(ctx context.Context, application *domain.Application) (*domain.Application, error)

	// GetByPersonID and GetByListingID report an empty result as KindNotFound.
	GetByPersonID(ctx context.Context, personID string) ([]*domain.Application, error)
	GetByListingID(ctx context.Context, listingID string) ([]*domain.Application, error)

	GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error)
	Delete(ctx context.Context, id string) error

	// DeleteByPair removes the application of personID to listingID atomically.
	DeleteByPair(ctx context.Context, personID, listingID string) error
}

type applicationService struct {
	applications store.ApplicationStore
	logger       *slog.Logger
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applications store.ApplicationStore, logger *slog.Logger) (ApplicationService, error) {
	if applications == nil {
		return nil, domain.NewValidationError("applications", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &applicationService{
		applications: applications,
		logger:       logger.With(slog.String("component", "application_service")),
	}, nil
}

// Create implements ApplicationService.Create
func (s *applicationService) Create(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	const op = "application.create"
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, classify(ctx, s.logger, op, applicationResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("application created",
		slog.String("operation", op),
		slog.String("application_id", application.ID))
	return application, nil
}

// GetByPersonID implements ApplicationService.GetByPersonID
func (s *applicationService) GetByPersonID(ctx context.Context, personID string) ([]*domain.Application, error) {
	const op = "application.get_by_person"
	applications, err := s.applications.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, classify(ctx, s.logger, op, applicationResource, err)
	}
	if len(applications) == 0 {
		return nil, emptyResult(ctx, s.logger, op, applicationResource)
	}
	return applications, nil
}

// GetByListingID implements ApplicationService.GetByListingID
func (s *applicationService) GetByListingID(ctx context.Context, listingID string) ([]*domain.Application, error) {
	const op = "application.get_by_listing"
	applications, err := s.applications.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, classify(ctx, s.logger, op, applicationResource, err)
	}
	if len(applications) == 0 {
		return nil, emptyResult(ctx, s.logger, op, applicationResource)
	}
	return applications, nil
}

// GetByPair implements ApplicationService.GetByPair
func (s *applicationService) GetByPair(ctx context.Context, personID, listingID string) (*domain.Application, error) {
	application, err := s.applications.GetByPair(ctx, personID, listingID)
	if err != nil {
		return nil, classify(ctx, s.logger, "application.get_by_pair", applicationResource, err)
	}
	return application, nil
}

// Delete implements ApplicationService.Delete
func (s *applicationService) Delete(ctx context.Context, id string) error {
	const op = "application.delete"
	if err := s.applications.Delete(ctx, id); err != nil {
		return classify(ctx, s.logger, op, applicationResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("application deleted",
		slog.String("operation", op),
		slog.String("application_id", id))
	return nil
}

// DeleteByPair implements ApplicationService.DeleteByPair
func (s *applicationService) DeleteByPair(ctx context.Context, personID, listingID string) error {
	const op = "application.delete_by_pair"
	removed, err := s.applications.DeleteByPair(ctx, personID, listingID)
	if err != nil {
		return classify(ctx, s.logger, op, applicationResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("application deleted",
		slog.String("operation", op),
		slog.String("application_id", removed.ID))
	return nil
}
