// Package mocks provides shared test doubles.
//
// Stores are testify mocks (configure with On/Return). Services, the JWT
// service and the password helpers use function fields so handler tests can
// set only the behavior they exercise:
//
//	listings := &mocks.ListingService{
//	    FindFn: func(ctx context.Context, f domain.ListingFilter) ([]*domain.Listing, error) {
//	        return nil, service.NotFound("listing.find", "Listings were not found", nil)
//	    },
//	}
//
// A service method whose function field is nil returns a server error so an
// unexpected call fails loudly.
package mocks
