package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func validListing() *domain.Listing {
	l := domain.NewListing()
	l.Title = "Backend Engineer"
	l.OrganizationName = "Acme"
	l.DatePosted = fixedTime
	l.WorkType = domain.WorkTypeRemote
	l.EmploymentType = domain.EmploymentTypeFullTime
	l.ExperienceLevel = domain.ExperienceLevelMid
	l.City = "Berlin"
	l.Country = "Germany"
	l.Description = "Build and run services."
	l.SalaryRange = &domain.SalaryRange{MinAmount: 60000, MaxAmount: 80000}
	return l
}

func validPerson() *domain.Person {
	p := domain.NewPerson("newUser")
	p.FirstName = "Jane"
	p.LastName = "Doe"
	p.Phone = "555-123-4567"
	p.Address = "1 Main Street"
	p.Education = []domain.Education{{
		DegreeTitle:  "BSc Computer Science",
		Institution:  "State University",
		StartingDate: fixedTime.AddDate(-6, 0, 0),
		IsOngoing:    false,
	}}
	return p
}
