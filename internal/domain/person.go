package domain

import "time"

// Person is the personal profile of a user, matched to the user by username.
type Person struct {
	ID             string           `json:"id"`
	Username       string           `json:"username"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	DateOfBirth    *time.Time       `json:"dateOfBirth,omitempty"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"workExperience"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Education is one entry of a person's education history.
type Education struct {
	DegreeTitle    string     `json:"degreeTitle"`
	Institution    string     `json:"institution"`
	StartingDate   time.Time  `json:"startingDate"`
	GraduationDate *time.Time `json:"graduationDate,omitempty"`
	IsOngoing      bool       `json:"isOngoing"`
}

// WorkExperience is one entry of a person's employment history.
type WorkExperience struct {
	JobTitle     string     `json:"jobTitle"`
	Organization string     `json:"organization"`
	City         string     `json:"city"`
	Country      string     `json:"country,omitempty"`
	StartingDate time.Time  `json:"startingDate"`
	EndingDate   *time.Time `json:"endingDate,omitempty"`
	IsOngoing    bool       `json:"isOngoing"`
	Tasks        []Task     `json:"tasks,omitempty"`
}

// Task is a responsibility held during a work experience.
type Task struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewPerson creates a new Person for username with a fresh ID and timestamps.
// Nil history slices are normalized to empty ones.
func NewPerson(username string) *Person {
	now := time.Now().UTC()
	return &Person{
		ID:             NewID(),
		Username:       username,
		Education:      []Education{},
		WorkExperience: []WorkExperience{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PersonPatch holds the fields of a partial profile update. Nil fields are
// left unchanged; non-nil history slices replace the stored ones wholesale.
type PersonPatch struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *string
	DateOfBirth    *time.Time
	Education      []Education
	WorkExperience []WorkExperience
}

// IsEmpty reports whether the patch changes nothing.
func (p PersonPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil &&
		p.Address == nil && p.DateOfBirth == nil &&
		p.Education == nil && p.WorkExperience == nil
}
