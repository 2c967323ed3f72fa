package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/mocks"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingHandler_Get(t *testing.T) {
	t.Run("no remote listings", func(t *testing.T) {
		listings := &mocks.ListingService{
			FindFn: func(_ context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
				require.NotNil(t, filter.WorkType)
				assert.Equal(t, domain.WorkTypeRemote, *filter.WorkType)
				assert.Nil(t, filter.Status)
				return nil, service.NotFound("listing.find", "Listings were not found", nil)
			},
		}
		h := NewListingHandler(listings, NewValidator())

		rr := httptest.NewRecorder()
		h.Get(rr, newRequest(t, http.MethodGet, "/p/listings?workType=Remote", nil, testUser))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Listings were not found"}`, rr.Body.String())
	})

	t.Run("filtered results", func(t *testing.T) {
		listing := domain.NewListing()
		listing.Title = "Backend Engineer"
		listings := &mocks.ListingService{
			FindFn: func(context.Context, domain.ListingFilter) ([]*domain.Listing, error) {
				return []*domain.Listing{listing}, nil
			},
		}
		h := NewListingHandler(listings, NewValidator())

		rr := httptest.NewRecorder()
		h.Get(rr, newRequest(t, http.MethodGet, "/p/listings?status=Open&experienceLevel=Senior", nil, testUser))

		require.Equal(t, http.StatusOK, rr.Code)
		var data []map[string]any
		require.NoError(t, json.Unmarshal(decodeResponse(t, rr).Data, &data))
		require.Len(t, data, 1)
		assert.Equal(t, "Backend Engineer", data[0]["title"])
	})

	t.Run("by id", func(t *testing.T) {
		listing := domain.NewListing()
		listings := &mocks.ListingService{
			GetByIDFn: func(_ context.Context, id string) (*domain.Listing, error) {
				assert.Equal(t, listing.ID, id)
				return listing, nil
			},
		}
		h := NewListingHandler(listings, NewValidator())

		rr := httptest.NewRecorder()
		h.Get(rr, newRequest(t, http.MethodGet, "/p/listings?id="+listing.ID, nil, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Listing retrieved", decodeResponse(t, rr).Message)
	})

	t.Run("unknown enum value", func(t *testing.T) {
		h := NewListingHandler(&mocks.ListingService{}, NewValidator())

		rr := httptest.NewRecorder()
		h.Get(rr, newRequest(t, http.MethodGet, "/p/listings?employmentType=Gig", nil, testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t,
			[]string{"Employment type must be one of: Full-time, Part-time, Contract, Internship, Temporary"},
			messages(decodeResponse(t, rr).Errors))
	})
}

func TestListingHandler_Create(t *testing.T) {
	t.Run("salary given as number and string", func(t *testing.T) {
		var created *domain.Listing
		listings := &mocks.ListingService{
			CreateFn: func(_ context.Context, l *domain.Listing) (*domain.Listing, error) {
				created = l
				return l, nil
			},
		}
		h := NewListingHandler(listings, NewValidator())

		body := `{"title":"Backend Engineer","organizationName":"Acme","workType":"Hybrid",
			"employmentType":"Contract","experienceLevel":"Mid","city":"Berlin","country":"Germany",
			"description":"Build APIs.","salaryRange":{"minAmount":60000,"maxAmount":"90000"}}`
		rr := httptest.NewRecorder()
		h.Create(rr, newRequest(t, http.MethodPost, "/p/listings", body, testAdmin))

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, created)
		require.NotNil(t, created.SalaryRange)
		assert.Equal(t, 60000.0, created.SalaryRange.MinAmount)
		assert.Equal(t, 90000.0, created.SalaryRange.MaxAmount)
		assert.Equal(t, domain.ListingStatusOpen, created.Status)
		assert.Contains(t, rr.Body.String(), `"minAmount":60000`)
	})

	t.Run("schema rejection", func(t *testing.T) {
		listings := &mocks.ListingService{
			CreateFn: func(context.Context, *domain.Listing) (*domain.Listing, error) {
				return nil, service.Constraint("listing.create", "Validation failed: title: String length must be greater than or equal to 3", nil)
			},
		}
		h := NewListingHandler(listings, NewValidator())

		req := validListingRequest()
		rr := httptest.NewRecorder()
		h.Create(rr, newRequest(t, http.MethodPost, "/p/listings", req, testAdmin))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Validation failed: title: String length must be greater than or equal to 3", decodeResponse(t, rr).Message)
	})
}

func TestListingHandler_UpdateAndDelete(t *testing.T) {
	listing := domain.NewListing()
	closed := domain.ListingStatusClosed

	listings := &mocks.ListingService{
		UpdateFn: func(_ context.Context, id string, patch domain.ListingPatch) (*domain.Listing, error) {
			assert.Equal(t, listing.ID, id)
			require.NotNil(t, patch.Status)
			assert.Equal(t, closed, *patch.Status)
			assert.Nil(t, patch.Title)
			listing.Status = *patch.Status
			return listing, nil
		},
		DeleteFn: func(_ context.Context, id string) error {
			if id == listing.ID {
				return nil
			}
			return service.NotFound("listing.delete", "Listing was not found", nil)
		},
	}
	h := NewListingHandler(listings, NewValidator())

	rr := httptest.NewRecorder()
	h.Update(rr, newRequest(t, http.MethodPut, "/p/listings",
		map[string]string{"id": listing.ID, "status": "Closed"}, testAdmin))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"Closed"`)

	rr = httptest.NewRecorder()
	h.Delete(rr, newRequest(t, http.MethodDelete, "/p/listings?id="+listing.ID, nil, testAdmin))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	h.Delete(rr, newRequest(t, http.MethodDelete, "/p/listings?id="+otherValidID, nil, testAdmin))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
