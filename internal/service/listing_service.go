package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// ListingService manages job listings.
type ListingService interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// Find returns the listings matching filter. An empty result is a
	// KindNotFound error.
	Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)

	Update(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}

type listingService struct {
	listings store.ListingStore
	logger   *slog.Logger
}

// NewListingService creates a new ListingService.
func NewListingService(listings store.ListingStore, logger *slog.Logger) (ListingService, error) {
	if listings == nil {
		return nil, domain.NewValidationError("listings", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &listingService{
		listings: listings,
		logger:   logger.With(slog.String("component", "listing_service")),
	}, nil
}

// Create implements ListingService.Create
func (s *listingService) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	const op = "listing.create"
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, classify(ctx, s.logger, op, listingResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("listing created",
		slog.String("operation", op),
		slog.String("listing_id", listing.ID))
	return listing, nil
}

// GetByID implements ListingService.GetByID
func (s *listingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, classify(ctx, s.logger, "listing.get_by_id", listingResource, err)
	}
	return listing, nil
}

// Find implements ListingService.Find
func (s *listingService) Find(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	const op = "listing.find"
	listings, err := s.listings.Find(ctx, filter)
	if err != nil {
		return nil, classify(ctx, s.logger, op, listingResource, err)
	}
	if len(listings) == 0 {
		return nil, emptyResult(ctx, s.logger, op, listingResource)
	}
	return listings, nil
}

// Update implements ListingService.Update
func (s *listingService) Update(ctx context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error) {
	listing, err := s.listings.Update(ctx, id, patch)
	if err != nil {
		return nil, classify(ctx, s.logger, "listing.update", listingResource, err)
	}
	return listing, nil
}

// Delete implements ListingService.Delete
func (s *listingService) Delete(ctx context.Context, id string) error {
	const op = "listing.delete"
	if err := s.listings.Delete(ctx, id); err != nil {
		return classify(ctx, s.logger, op, listingResource, err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("listing deleted",
		slog.String("operation", op),
		slog.String("listing_id", id))
	return nil
}
