package domain

import "time"

// Application links a person to a listing they applied to. The
// (PersonID, ListingID) pair is unique.
type Application struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"personId"`
	ListingID string    `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewApplication creates a new Application for the given person and listing.
// Returns an error if either identifier is malformed.
func NewApplication(personID, listingID string) (*Application, error) {
	if err := ValidateID("personId", personID); err != nil {
		return nil, err
	}
	if err := ValidateID("listingId", listingID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Application{
		ID:        NewID(),
		PersonID:  personID,
		ListingID: listingID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
