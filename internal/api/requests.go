package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumericString holds a number sent either as a JSON number or as a
// string, keeping its text for validation.
type NumericString string

// UnmarshalJSON accepts 60000, "60000" and null.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("salary amount must be a number: %w", err)
		}
		*n = NumericString(num)
	}
	return nil
}

// Auth

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin User"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// Users and persons

// EducationRequest is one education entry of a profile request.
type EducationRequest struct {
	DegreeTitle    string `json:"degreeTitle"    validate:"required,min=2,max=100"`
	Institution    string `json:"institution"    validate:"required,min=2,max=100"`
	StartingDate   string `json:"startingDate"   validate:"required,isodate"`
	GraduationDate string `json:"graduationDate" validate:"omitempty,isodate"`
	IsOngoing      bool   `json:"isOngoing"`
}

// TaskRequest is one task of a work experience entry.
type TaskRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
}

// WorkExperienceRequest is one work experience entry of a profile request.
type WorkExperienceRequest struct {
	JobTitle     string        `json:"jobTitle"     validate:"required,min=2,max=100"`
	Organization string        `json:"organization" validate:"required,min=2,max=100"`
	City         string        `json:"city"         validate:"required,min=2,max=100,lettersspace"`
	Country      string        `json:"country"      validate:"omitempty,min=2,max=100,lettersspace"`
	StartingDate string        `json:"startingDate" validate:"required,isodate"`
	EndingDate   string        `json:"endingDate"   validate:"omitempty,isodate"`
	IsOngoing    bool          `json:"isOngoing"`
	Tasks        []TaskRequest `json:"tasks"        validate:"omitempty,dive"`
}

// CreatePersonRequest is the body of POST /p/users.
type CreatePersonRequest struct {
	FirstName      string                  `json:"firstName"      validate:"required,min=2,max=50,alphaunicode"`
	LastName       string                  `json:"lastName"       validate:"required,min=2,max=50,alphaunicode"`
	Phone          string                  `json:"phone"          validate:"required,min=7,max=20,phone"`
	Address        string                  `json:"address"        validate:"required,min=5,max=200"`
	DateOfBirth    string                  `json:"dateOfBirth"    validate:"omitempty,isodate"`
	Education      []EducationRequest      `json:"education"      validate:"omitempty,dive"`
	WorkExperience []WorkExperienceRequest `json:"workExperience" validate:"omitempty,dive"`
}

// UpdateProfileRequest is the body of PUT /p/users. Absent fields are left
// unchanged; history arrays replace the stored ones.
type UpdateProfileRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role"     validate:"omitempty,oneof=Admin User"`

	FirstName      *string                 `json:"firstName"      validate:"omitempty,min=2,max=50,alphaunicode"`
	LastName       *string                 `json:"lastName"       validate:"omitempty,min=2,max=50,alphaunicode"`
	Phone          *string                 `json:"phone"          validate:"omitempty,min=7,max=20,phone"`
	Address        *string                 `json:"address"        validate:"omitempty,min=5,max=200"`
	DateOfBirth    *string                 `json:"dateOfBirth"    validate:"omitempty,isodate"`
	Education      []EducationRequest      `json:"education"      validate:"omitempty,dive"`
	WorkExperience []WorkExperienceRequest `json:"workExperience" validate:"omitempty,dive"`
}

// UsernameQuery is the query of GET /p/users/username and /p/users/profile.
type UsernameQuery struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
}

// EmailQuery is the query of GET /p/users/email.
type EmailQuery struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileResponse is the data of PUT /p/users. Only the updated records
// are present.
type ProfileResponse struct {
	User   any `json:"user,omitempty"`
	Person any `json:"person,omitempty"`
}

// Listings

// SalaryRangeRequest is the optional pay band of a listing.
type SalaryRangeRequest struct {
	MinAmount NumericString `json:"minAmount" validate:"required,numeric,nonnegative"`
	MaxAmount NumericString `json:"maxAmount" validate:"required,numeric,nonnegative"`
}

// CreateListingRequest is the body of POST /p/listings.
type CreateListingRequest struct {
	Title            string              `json:"title"            validate:"required,min=3,max=100"`
	OrganizationName string              `json:"organizationName" validate:"required,min=2,max=100"`
	DatePosted       string              `json:"datePosted"       validate:"omitempty,isodate"`
	WorkType         string              `json:"workType"         validate:"required,oneof=Remote Hybrid On-site"`
	EmploymentType   string              `json:"employmentType"   validate:"required,oneof=Full-time Part-time Contract Internship Temporary"`
	ExperienceLevel  string              `json:"experienceLevel"  validate:"required,oneof=Entry Junior Mid Senior Lead Executive"`
	City             string              `json:"city"             validate:"required,min=2,max=100,lettersspace"`
	Country          string              `json:"country"          validate:"required,min=2,max=100,lettersspace"`
	Description      string              `json:"description"      validate:"required,max=5000"`
	SalaryRange      *SalaryRangeRequest `json:"salaryRange"      validate:"omitempty"`
	Status           string              `json:"status"           validate:"omitempty,oneof=Open Closed"`
}

// UpdateListingRequest is the body of PUT /p/listings.
type UpdateListingRequest struct {
	ID               string              `json:"id"               validate:"required,len=24,objectid"`
	Title            *string             `json:"title"            validate:"omitempty,min=3,max=100"`
	OrganizationName *string             `json:"organizationName" validate:"omitempty,min=2,max=100"`
	DatePosted       *string             `json:"datePosted"       validate:"omitempty,isodate"`
	WorkType         *string             `json:"workType"         validate:"omitempty,oneof=Remote Hybrid On-site"`
	EmploymentType   *string             `json:"employmentType"   validate:"omitempty,oneof=Full-time Part-time Contract Internship Temporary"`
	ExperienceLevel  *string             `json:"experienceLevel"  validate:"omitempty,oneof=Entry Junior Mid Senior Lead Executive"`
	City             *string             `json:"city"             validate:"omitempty,min=2,max=100,lettersspace"`
	Country          *string             `json:"country"          validate:"omitempty,min=2,max=100,lettersspace"`
	Description      *string             `json:"description"      validate:"omitempty,max=5000"`
	SalaryRange      *SalaryRangeRequest `json:"salaryRange"      validate:"omitempty"`
	Status           *string             `json:"status"           validate:"omitempty,oneof=Open Closed"`
}

// ListingQuery is the query of GET /p/listings.
type ListingQuery struct {
	ID              string `json:"id"              validate:"omitempty,len=24,objectid"`
	Status          string `json:"status"          validate:"omitempty,oneof=Open Closed"`
	WorkType        string `json:"workType"        validate:"omitempty,oneof=Remote Hybrid On-site"`
	EmploymentType  string `json:"employmentType"  validate:"omitempty,oneof=Full-time Part-time Contract Internship Temporary"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=Entry Junior Mid Senior Lead Executive"`
}

// ListingIDQuery is the query of DELETE /p/listings.
type ListingIDQuery struct {
	ID string `json:"id" validate:"required,len=24,objectid"`
}

// Applications

// CreateApplicationRequest is the body of POST /p/applications.
type CreateApplicationRequest struct {
	PersonID  string `json:"personId"  validate:"required,len=24,objectid"`
	ListingID string `json:"listingId" validate:"required,len=24,objectid"`
}

// ApplicationQuery is the query of GET /p/applications.
type ApplicationQuery struct {
	PersonID    string `json:"personId"    validate:"required_without=ListingID,omitempty,len=24,objectid"`
	ListingID   string `json:"listingId"   validate:"required_without=PersonID,omitempty,len=24,objectid"`
	UniqueIndex string `json:"uniqueIndex" validate:"omitempty,boolean"`
}

// DeleteApplicationQuery is the query of DELETE /p/applications: either
// an application ID or a person and listing pair.
type DeleteApplicationQuery struct {
	ID        string `json:"id"        validate:"required_without_all=PersonID ListingID,omitempty,len=24,objectid"`
	PersonID  string `json:"personId"  validate:"required_with=ListingID,omitempty,len=24,objectid"`
	ListingID string `json:"listingId" validate:"required_with=PersonID,omitempty,len=24,objectid"`
}

// fieldLabels names fields in messages. Keys are JSON paths, optionally
// prefixed with the request type when the label depends on it.
var fieldLabels = map[string]string{
	"username":         "Username",
	"email":            "Email",
	"password":         "Password",
	"role":             "Role",
	"firstName":        "First name",
	"lastName":         "Last name",
	"phone":            "Phone",
	"address":          "Address",
	"dateOfBirth":      "Date of birth",
	"title":            "Title",
	"organizationName": "Organization name",
	"datePosted":       "Date posted",
	"workType":         "Work type",
	"employmentType":   "Employment type",
	"experienceLevel":  "Experience level",
	"city":             "City",
	"country":          "Country",
	"description":      "Description",
	"status":           "Status",
	"id":               "Listing ID",
	"personId":         "Person ID",
	"listingId":        "Listing ID",
	"uniqueIndex":      "Unique index",

	"salaryRange.minAmount": "Minimum salary",
	"salaryRange.maxAmount": "Maximum salary",

	"education.degreeTitle":    "Degree title",
	"education.institution":    "Institution",
	"education.startingDate":   "Education starting date",
	"education.graduationDate": "Graduation date",

	"workExperience.jobTitle":          "Job title",
	"workExperience.organization":      "Organization",
	"workExperience.city":              "Work experience city",
	"workExperience.country":           "Work experience country",
	"workExperience.startingDate":      "Work experience starting date",
	"workExperience.endingDate":        "Work experience ending date",
	"workExperience.tasks.name":        "Task name",
	"workExperience.tasks.description": "Task description",

	"DeleteApplicationQuery.id": "Application ID",
}

// messageOverrides replaces the generated message for a path and rule.
var messageOverrides = map[string]string{
	"salaryRange.maxAmount.gtefield": "Maximum salary cannot be less than minimum salary",
}
