package domain

import "time"

// DescriptionMaxLength bounds the length of a listing description.
const DescriptionMaxLength = 5000

// Listing is a job offer published by an administrator.
type Listing struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	OrganizationName string          `json:"organizationName"`
	DatePosted       time.Time       `json:"datePosted"`
	WorkType         WorkType        `json:"workType"`
	EmploymentType   EmploymentType  `json:"employmentType"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel"`
	City             string          `json:"city"`
	Country          string          `json:"country"`
	Description      string          `json:"description"`
	SalaryRange      *SalaryRange    `json:"salaryRange,omitempty"`
	Status           ListingStatus   `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// SalaryRange is the advertised pay band of a listing.
type SalaryRange struct {
	MinAmount float64 `json:"minAmount"`
	MaxAmount float64 `json:"maxAmount"`
}

// NewListing creates an empty Listing with a fresh ID and timestamps.
func NewListing() *Listing {
	now := time.Now().UTC()
	return &Listing{
		ID:         NewID(),
		DatePosted: now,
		Status:     ListingStatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ListingPatch holds the fields of a partial listing update.
type ListingPatch struct {
	Title            *string
	OrganizationName *string
	DatePosted       *time.Time
	WorkType         *WorkType
	EmploymentType   *EmploymentType
	ExperienceLevel  *ExperienceLevel
	City             *string
	Country          *string
	Description      *string
	SalaryRange      *SalaryRange
	Status           *ListingStatus
}

// ListingFilter selects listings by any combination of their enum fields.
// Nil fields do not constrain the result.
type ListingFilter struct {
	Status          *ListingStatus
	WorkType        *WorkType
	EmploymentType  *EmploymentType
	ExperienceLevel *ExperienceLevel
}
