package domain

import (
	"time"
)

// User represents a registered account. Username and email are unique
// across all users.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with a fresh ID and timestamps.
//
// NOTE: hashedPassword must already be hashed; the domain never sees
// plaintext passwords.
func NewUser(username, email, hashedPassword string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:             NewID(),
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch holds the fields of a partial user update. Nil fields are left
// unchanged.
type UserPatch struct {
	Email          *string
	HashedPassword *string
	Role           *Role
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.HashedPassword == nil && p.Role == nil
}
