package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validID      = "65a1b2c3d4e5f6a7b8c9d0e1"
	otherValidID = "65a1b2c3d4e5f6a7b8c9d0e2"
)

func validListingRequest() CreateListingRequest {
	return CreateListingRequest{
		Title:            "Backend Engineer",
		OrganizationName: "Acme",
		WorkType:         "Remote",
		EmploymentType:   "Full-time",
		ExperienceLevel:  "Senior",
		City:             "New York",
		Country:          "United States",
		Description:      "Build APIs.",
	}
}

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want []string
	}{
		{
			name: "valid registration",
			req:  RegisterRequest{Username: "newUser", Email: "random@mail.com", Password: "5W]L8t1m4@PcTTO", Role: "User"},
		},
		{
			name: "registration missing everything",
			req:  RegisterRequest{},
			want: []string{"Username is required", "Email is required", "Password is required"},
		},
		{
			name: "registration bad values",
			req:  RegisterRequest{Username: "ab", Email: "nope", Password: "short", Role: "Root"},
			want: []string{
				"Username must be at least 3 characters long",
				"Email must be a valid email address",
				"Password must be at least 8 characters long",
				"Role must be one of: Admin, User",
			},
		},
		{
			name: "listing id too short",
			req:  CreateApplicationRequest{PersonID: validID, ListingID: "65a1b2c3d4e5f6a7b"},
			want: []string{"Listing ID must be 24 characters long"},
		},
		{
			name: "listing id not hex",
			req:  CreateApplicationRequest{PersonID: validID, ListingID: "zzzzzzzzzzzzzzzzzzzzzzzz"},
			want: []string{"Listing ID must be a valid hexadecimal ID"},
		},
		{
			name: "application ids missing",
			req:  CreateApplicationRequest{},
			want: []string{"Person ID is required", "Listing ID is required"},
		},
		{
			name: "listing enums",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.WorkType = "Office"
				r.Status = "Archived"
				return r
			}(),
			want: []string{"Work type must be one of: Remote, Hybrid, On-site", "Status must be one of: Open, Closed"},
		},
		{
			name: "salary range",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.SalaryRange = &SalaryRangeRequest{MinAmount: "abc", MaxAmount: "-5"}
				return r
			}(),
			want: []string{"Minimum salary must be a number", "Maximum salary cannot be negative"},
		},
		{
			name: "salary range inverted",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.SalaryRange = &SalaryRangeRequest{MinAmount: "90000", MaxAmount: "60000"}
				return r
			}(),
			want: []string{"Maximum salary cannot be less than minimum salary"},
		},
		{
			name: "negative maximum is reported once",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.SalaryRange = &SalaryRangeRequest{MinAmount: "100", MaxAmount: "-1"}
				return r
			}(),
			want: []string{"Maximum salary cannot be negative"},
		},
		{
			name: "exponent notation is not a number",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.SalaryRange = &SalaryRangeRequest{MinAmount: "6e4", MaxAmount: "-1"}
				return r
			}(),
			want: []string{"Minimum salary must be a number", "Maximum salary cannot be negative"},
		},
		{
			name: "description too long",
			req: func() CreateListingRequest {
				r := validListingRequest()
				r.Description = strings.Repeat("a", 5001)
				return r
			}(),
			want: []string{"Description must be at most 5000 characters long"},
		},
		{
			name: "nested person entries",
			req: CreatePersonRequest{
				FirstName: "Ada", LastName: "Lovelace", Phone: "555-123-4567", Address: "12 Main Street",
				Education: []EducationRequest{
					{DegreeTitle: "BSc", Institution: "MIT", StartingDate: "2010-09-01"},
					{DegreeTitle: "M", Institution: "MIT", StartingDate: "2014-13-01"},
				},
				WorkExperience: []WorkExperienceRequest{{
					JobTitle: "Engineer", Organization: "Acme", City: "Paris", StartingDate: "2015-01-01",
					Tasks: []TaskRequest{{Name: "x", Description: "Did things"}},
				}},
			},
			want: []string{
				"Degree title must be at least 2 characters long",
				"Education starting date must be a valid date (YYYY-MM-DD)",
				"Task name must be at least 2 characters long",
			},
		},
		{
			name: "person name letters",
			req:  CreatePersonRequest{FirstName: "Ada1", LastName: "Lovelace", Phone: "555 1234", Address: "12 Main Street"},
			want: []string{"First name must contain only letters", "Phone must contain only digits and hyphens"},
		},
		{
			name: "person names accept unicode letters",
			req:  CreatePersonRequest{FirstName: "José", LastName: "Łukasiewicz", Phone: "555-1234", Address: "12 Main Street"},
		},
		{
			name: "application query needs an id",
			req:  ApplicationQuery{},
			want: []string{"Person ID is required", "Listing ID is required"},
		},
		{
			name: "pair lookup needs both ids",
			req:  ApplicationQuery{PersonID: validID, UniqueIndex: "true"},
			want: []string{"Listing ID is required"},
		},
		{
			name: "pair delete needs both ids",
			req:  DeleteApplicationQuery{PersonID: validID},
			want: []string{"Listing ID is required"},
		},
		{
			name: "delete by id",
			req:  DeleteApplicationQuery{ID: "123"},
			want: []string{"Application ID must be 24 characters long"},
		},
		{
			name: "delete needs something",
			req:  DeleteApplicationQuery{},
			want: []string{"Application ID is required"},
		},
		{
			name: "update listing without id",
			req:  UpdateListingRequest{},
			want: []string{"Listing ID is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.req)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, messages(got))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-01-31"},
		{in: "2024-01-31T10:00:00Z"},
		{in: "2024-02-30", wantErr: true},
		{in: "31/01/2024", wantErr: true},
		{in: "2024-01-31T10:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseDate(tt.in)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestNumericString_UnmarshalJSON(t *testing.T) {
	var r SalaryRangeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"minAmount":60000,"maxAmount":"80000.50"}`), &r))
	assert.Equal(t, NumericString("60000"), r.MinAmount)
	assert.Equal(t, NumericString("80000.50"), r.MaxAmount)

	require.NoError(t, json.Unmarshal([]byte(`{"minAmount":null}`), &r))
	assert.Equal(t, NumericString(""), r.MinAmount)

	assert.Error(t, json.Unmarshal([]byte(`{"minAmount":true}`), &r))
}
