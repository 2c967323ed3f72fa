package domain

import "fmt"

// Role is the authorization level of a user.
type Role string

// Role values.
const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// WorkType describes where the work of a listing happens.
type WorkType string

// WorkType values.
const (
	WorkTypeRemote WorkType = "Remote"
	WorkTypeHybrid WorkType = "Hybrid"
	WorkTypeOnSite WorkType = "On-site"
)

// EmploymentType describes the contract form of a listing.
type EmploymentType string

// EmploymentType values.
const (
	EmploymentTypeFullTime   EmploymentType = "Full-time"
	EmploymentTypePartTime   EmploymentType = "Part-time"
	EmploymentTypeContract   EmploymentType = "Contract"
	EmploymentTypeInternship EmploymentType = "Internship"
	EmploymentTypeTemporary  EmploymentType = "Temporary"
)

// ExperienceLevel describes the seniority a listing asks for.
type ExperienceLevel string

// ExperienceLevel values.
const (
	ExperienceLevelEntry     ExperienceLevel = "Entry"
	ExperienceLevelJunior    ExperienceLevel = "Junior"
	ExperienceLevelMid       ExperienceLevel = "Mid"
	ExperienceLevelSenior    ExperienceLevel = "Senior"
	ExperienceLevelLead      ExperienceLevel = "Lead"
	ExperienceLevelExecutive ExperienceLevel = "Executive"
)

// ListingStatus tells whether a listing accepts applications.
type ListingStatus string

// ListingStatus values.
const (
	ListingStatusOpen   ListingStatus = "Open"
	ListingStatusClosed ListingStatus = "Closed"
)

// Closed value sets, in declaration order.
var (
	Roles            = []Role{RoleAdmin, RoleUser}
	WorkTypes        = []WorkType{WorkTypeRemote, WorkTypeHybrid, WorkTypeOnSite}
	EmploymentTypes  = []EmploymentType{EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeInternship, EmploymentTypeTemporary}
	ExperienceLevels = []ExperienceLevel{ExperienceLevelEntry, ExperienceLevelJunior, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelLead, ExperienceLevelExecutive}
	ListingStatuses  = []ListingStatus{ListingStatusOpen, ListingStatusClosed}
)

// lookup builds a string-keyed table for an enum value set.
func lookup[T ~string](values []T) map[string]T {
	m := make(map[string]T, len(values))
	for _, v := range values {
		m[string(v)] = v
	}
	return m
}

var (
	roleLookup            = lookup(Roles)
	workTypeLookup        = lookup(WorkTypes)
	employmentTypeLookup  = lookup(EmploymentTypes)
	experienceLevelLookup = lookup(ExperienceLevels)
	listingStatusLookup   = lookup(ListingStatuses)
)

func parseEnum[T ~string](table map[string]T, kind, s string) (T, error) {
	v, ok := table[s]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidEnum, s, kind)
	}
	return v, nil
}

// ParseRole resolves s to a Role.
func ParseRole(s string) (Role, error) {
	return parseEnum(roleLookup, "role", s)
}

// ParseWorkType resolves s to a WorkType.
func ParseWorkType(s string) (WorkType, error) {
	return parseEnum(workTypeLookup, "work type", s)
}

// ParseEmploymentType resolves s to an EmploymentType.
func ParseEmploymentType(s string) (EmploymentType, error) {
	return parseEnum(employmentTypeLookup, "employment type", s)
}

// ParseExperienceLevel resolves s to an ExperienceLevel.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	return parseEnum(experienceLevelLookup, "experience level", s)
}

// ParseListingStatus resolves s to a ListingStatus.
func ParseListingStatus(s string) (ListingStatus, error) {
	return parseEnum(listingStatusLookup, "listing status", s)
}
