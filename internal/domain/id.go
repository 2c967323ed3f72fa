package domain

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// IDLength is the length of every record identifier.
const IDLength = 24

// idRegex matches a 24-character lowercase hexadecimal identifier.
var idRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewID generates a new record identifier. The first four bytes hold the
// creation time in unix seconds (big endian) and the remaining eight are
// random, so identifiers sort roughly by creation time.
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b[4:])
	return hex.EncodeToString(b[:])
}

// IsValidID reports whether s is a well-formed record identifier.
func IsValidID(s string) bool {
	return idRegex.MatchString(s)
}

// ValidateID returns ErrInvalidID wrapped with the field name when id is malformed.
func ValidateID(field, id string) error {
	if !IsValidID(id) {
		return NewValidationError(field, "must be a 24-character hexadecimal ID", ErrInvalidID)
	}
	return nil
}
