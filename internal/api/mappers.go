package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
)

// Mappers turn validated requests into domain records. A mapping error
// wraps errInvalidInput; only password hashing can fail otherwise.

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", errInvalidInput, err)
}

func mapDate(s string) (time.Time, error) {
	t, err := parseDate(s)
	if err != nil {
		return time.Time{}, invalidInput(err)
	}
	return t.UTC(), nil
}

// mapOptionalDate maps "" to nil.
func mapOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := mapDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapEnum[T ~string](s string, parse func(string) (T, error)) (T, error) {
	v, err := parse(s)
	if err != nil {
		return v, invalidInput(err)
	}
	return v, nil
}

// mapOptionalEnum maps nil to nil.
func mapOptionalEnum[T ~string](s *string, parse func(string) (T, error)) (*T, error) {
	if s == nil {
		return nil, nil
	}
	v, err := mapEnum(*s, parse)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// newUserFromRequest hashes the password and builds the account. The role
// defaults to User.
func newUserFromRequest(req RegisterRequest, hasher auth.PasswordHasher) (*domain.User, error) {
	role := domain.RoleUser
	if req.Role != "" {
		r, err := mapEnum(req.Role, domain.ParseRole)
		if err != nil {
			return nil, err
		}
		role = r
	}

	hashed, err := hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return domain.NewUser(req.Username, req.Email, hashed, role), nil
}

// userPatchFromRequest picks the account fields of a profile update,
// hashing a new password when one is present.
func userPatchFromRequest(req UpdateProfileRequest, hasher auth.PasswordHasher) (domain.UserPatch, error) {
	var patch domain.UserPatch
	patch.Email = req.Email

	role, err := mapOptionalEnum(req.Role, domain.ParseRole)
	if err != nil {
		return patch, err
	}
	patch.Role = role

	if req.Password != nil {
		hashed, err := hasher.Hash(*req.Password)
		if err != nil {
			return patch, fmt.Errorf("hash password: %w", err)
		}
		patch.HashedPassword = &hashed
	}
	return patch, nil
}

func educationFromRequest(reqs []EducationRequest) ([]domain.Education, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]domain.Education, 0, len(reqs))
	for _, r := range reqs {
		start, err := mapDate(r.StartingDate)
		if err != nil {
			return nil, err
		}
		graduation, err := mapOptionalDate(r.GraduationDate)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Education{
			DegreeTitle:    r.DegreeTitle,
			Institution:    r.Institution,
			StartingDate:   start,
			GraduationDate: graduation,
			IsOngoing:      r.IsOngoing,
		})
	}
	return out, nil
}

func workExperienceFromRequest(reqs []WorkExperienceRequest) ([]domain.WorkExperience, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]domain.WorkExperience, 0, len(reqs))
	for _, r := range reqs {
		start, err := mapDate(r.StartingDate)
		if err != nil {
			return nil, err
		}
		end, err := mapOptionalDate(r.EndingDate)
		if err != nil {
			return nil, err
		}

		var tasks []domain.Task
		if len(r.Tasks) > 0 {
			tasks = make([]domain.Task, 0, len(r.Tasks))
			for _, t := range r.Tasks {
				tasks = append(tasks, domain.Task{Name: t.Name, Description: t.Description})
			}
		}

		out = append(out, domain.WorkExperience{
			JobTitle:     r.JobTitle,
			Organization: r.Organization,
			City:         r.City,
			Country:      r.Country,
			StartingDate: start,
			EndingDate:   end,
			IsOngoing:    r.IsOngoing,
			Tasks:        tasks,
		})
	}
	return out, nil
}

// newPersonFromRequest builds the profile of username.
func newPersonFromRequest(username string, req CreatePersonRequest) (*domain.Person, error) {
	person := domain.NewPerson(username)
	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Phone = req.Phone
	person.Address = req.Address

	dob, err := mapOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	person.DateOfBirth = dob

	education, err := educationFromRequest(req.Education)
	if err != nil {
		return nil, err
	}
	if education != nil {
		person.Education = education
	}

	work, err := workExperienceFromRequest(req.WorkExperience)
	if err != nil {
		return nil, err
	}
	if work != nil {
		person.WorkExperience = work
	}
	return person, nil
}

// personPatchFromRequest picks the profile fields of a profile update.
func personPatchFromRequest(req UpdateProfileRequest) (domain.PersonPatch, error) {
	patch := domain.PersonPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if req.DateOfBirth != nil {
		dob, err := mapDate(*req.DateOfBirth)
		if err != nil {
			return patch, err
		}
		patch.DateOfBirth = &dob
	}

	var err error
	if patch.Education, err = educationFromRequest(req.Education); err != nil {
		return patch, err
	}
	if patch.WorkExperience, err = workExperienceFromRequest(req.WorkExperience); err != nil {
		return patch, err
	}
	return patch, nil
}

func salaryRangeFromRequest(req *SalaryRangeRequest) (*domain.SalaryRange, error) {
	if req == nil {
		return nil, nil
	}
	lo, err := strconv.ParseFloat(string(req.MinAmount), 64)
	if err != nil {
		return nil, invalidInput(err)
	}
	hi, err := strconv.ParseFloat(string(req.MaxAmount), 64)
	if err != nil {
		return nil, invalidInput(err)
	}
	return &domain.SalaryRange{MinAmount: lo, MaxAmount: hi}, nil
}

// newListingFromRequest builds a listing. DatePosted defaults to now and
// Status to Open.
func newListingFromRequest(req CreateListingRequest) (*domain.Listing, error) {
	listing := domain.NewListing()
	listing.Title = req.Title
	listing.OrganizationName = req.OrganizationName
	listing.City = req.City
	listing.Country = req.Country
	listing.Description = req.Description

	var err error
	if req.DatePosted != "" {
		if listing.DatePosted, err = mapDate(req.DatePosted); err != nil {
			return nil, err
		}
	}
	if listing.WorkType, err = mapEnum(req.WorkType, domain.ParseWorkType); err != nil {
		return nil, err
	}
	if listing.EmploymentType, err = mapEnum(req.EmploymentType, domain.ParseEmploymentType); err != nil {
		return nil, err
	}
	if listing.ExperienceLevel, err = mapEnum(req.ExperienceLevel, domain.ParseExperienceLevel); err != nil {
		return nil, err
	}
	if req.Status != "" {
		if listing.Status, err = mapEnum(req.Status, domain.ParseListingStatus); err != nil {
			return nil, err
		}
	}
	if listing.SalaryRange, err = salaryRangeFromRequest(req.SalaryRange); err != nil {
		return nil, err
	}
	return listing, nil
}

func listingPatchFromRequest(req UpdateListingRequest) (domain.ListingPatch, error) {
	patch := domain.ListingPatch{
		Title:            req.Title,
		OrganizationName: req.OrganizationName,
		City:             req.City,
		Country:          req.Country,
		Description:      req.Description,
	}

	if req.DatePosted != nil {
		posted, err := mapDate(*req.DatePosted)
		if err != nil {
			return patch, err
		}
		patch.DatePosted = &posted
	}

	var err error
	if patch.WorkType, err = mapOptionalEnum(req.WorkType, domain.ParseWorkType); err != nil {
		return patch, err
	}
	if patch.EmploymentType, err = mapOptionalEnum(req.EmploymentType, domain.ParseEmploymentType); err != nil {
		return patch, err
	}
	if patch.ExperienceLevel, err = mapOptionalEnum(req.ExperienceLevel, domain.ParseExperienceLevel); err != nil {
		return patch, err
	}
	if patch.Status, err = mapOptionalEnum(req.Status, domain.ParseListingStatus); err != nil {
		return patch, err
	}
	if patch.SalaryRange, err = salaryRangeFromRequest(req.SalaryRange); err != nil {
		return patch, err
	}
	return patch, nil
}

// listingFilterFromQuery maps the enum parameters of a listing query.
func listingFilterFromQuery(q ListingQuery) (domain.ListingFilter, error) {
	var (
		filter domain.ListingFilter
		err    error
	)
	if filter.Status, err = mapOptionalEnum(optional(q.Status), domain.ParseListingStatus); err != nil {
		return filter, err
	}
	if filter.WorkType, err = mapOptionalEnum(optional(q.WorkType), domain.ParseWorkType); err != nil {
		return filter, err
	}
	if filter.EmploymentType, err = mapOptionalEnum(optional(q.EmploymentType), domain.ParseEmploymentType); err != nil {
		return filter, err
	}
	if filter.ExperienceLevel, err = mapOptionalEnum(optional(q.ExperienceLevel), domain.ParseExperienceLevel); err != nil {
		return filter, err
	}
	return filter, nil
}

// optional maps "" to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newApplicationFromRequest(req CreateApplicationRequest) (*domain.Application, error) {
	app, err := domain.NewApplication(req.PersonID, req.ListingID)
	if err != nil {
		return nil, invalidInput(err)
	}
	return app, nil
}
