package domain

import (
	"errors"
	"testing"
)

func TestNewApplication(t *testing.T) {
	personID := NewID()
	listingID := NewID()

	app, err := NewApplication(personID, listingID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if app.PersonID != personID || app.ListingID != listingID {
		t.Errorf("Expected pair (%s, %s), got (%s, %s)", personID, listingID, app.PersonID, app.ListingID)
	}
	if !IsValidID(app.ID) {
		t.Errorf("Expected a valid application ID, got %s", app.ID)
	}

	if _, err := NewApplication("short", listingID); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID for bad person ID, got %v", err)
	}
	if _, err := NewApplication(personID, "short"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID for bad listing ID, got %v", err)
	}
}

func TestNewPersonNormalizesHistory(t *testing.T) {
	p := NewPerson("newUser")
	if p.Education == nil || p.WorkExperience == nil {
		t.Error("Expected history slices to be non-nil")
	}
	if !(PersonPatch{}).IsEmpty() {
		t.Error("Expected zero patch to be empty")
	}
	if (PersonPatch{Education: []Education{}}).IsEmpty() {
		t.Error("Expected an explicit empty education list to count as a change")
	}
}
