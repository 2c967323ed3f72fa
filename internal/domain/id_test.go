package domain

import (
	"errors"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != IDLength {
			t.Fatalf("Expected ID length %d, got %d (%s)", IDLength, len(id), id)
		}
		if !IsValidID(id) {
			t.Fatalf("Expected generated ID %s to be valid", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"5f8d0d55b54764421b7156c3", true},
		{"5f8d0d55b54764421", false},
		{"5F8D0D55B54764421B7156C3", false},
		{"5f8d0d55b54764421b7156cz", false},
		{"5f8d0d55b54764421b7156c3a", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidID(tt.id); got != tt.valid {
			t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.valid)
		}
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("listingId", "5f8d0d55b54764421b7156c3"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	err := ValidateID("listingId", "abc")
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("Expected ErrInvalidID, got %v", err)
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "listingId" {
		t.Errorf("Expected a ValidationError for listingId, got %v", err)
	}
}
