package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/jobboard-api/internal/api/shared"
	"github.com/phrazzld/jobboard-api/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	lettersSpaceRegex = regexp.MustCompile(`^[\p{L} ]+$`)
	phoneRegex        = regexp.MustCompile(`^[0-9-]+$`)
	indexRegex        = regexp.MustCompile(`\[\d+\]`)
	// numericRegex matches what the numeric tag accepts.
	numericRegex = regexp.MustCompile(`^[-+]?[0-9]+(?:\.[0-9]+)?$`)
)

// Validator evaluates the validate tags of request DTOs and turns the
// failures into client messages.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom rules of this API
// registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "lettersspace", func(fl validator.FieldLevel) bool {
		return lettersSpaceRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
		f, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && f >= 0
	})

	v.RegisterStructValidation(salaryRangeRules, SalaryRangeRequest{})
	v.RegisterStructValidation(applicationQueryRules, ApplicationQuery{})

	return &Validator{validate: v}
}

// mustRegister panics when a rule cannot be registered, which only happens
// for an invalid tag name.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		// ALLOW-PANIC: programming error in a constant tag name
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Validate checks req and returns one message per failing field in
// declaration order. An empty result means req is valid.
func (v *Validator) Validate(req any) []shared.FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []shared.FieldError{{Message: "Request could not be validated"}}
	}

	out := make([]shared.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, shared.FieldError{Message: fieldMessage(fe)})
	}
	return out
}

// parseDate accepts YYYY-MM-DD optionally followed by an RFC 3339 time part.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		return time.Parse(time.RFC3339, s)
	}
	return time.Parse(dateLayout, s)
}

// fieldPath returns the JSON path of a failed field without the root type
// and array indexes, e.g. "workExperience.tasks.name".
func fieldPath(fe validator.FieldError) (root, path string) {
	root, path, _ = strings.Cut(fe.Namespace(), ".")
	return root, indexRegex.ReplaceAllString(path, "")
}

// normalizeTag folds the conditional required rules into "required".
func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, "required") {
		return "required"
	}
	return tag
}

func fieldMessage(fe validator.FieldError) string {
	root, path := fieldPath(fe)
	tag := normalizeTag(fe.Tag())

	for _, key := range []string{root + "." + path + "." + tag, path + "." + tag} {
		if msg, ok := messageOverrides[key]; ok {
			return msg
		}
	}

	label := fieldLabel(root, path)
	switch tag {
	case "required":
		return label + " is required"
	case "len":
		return fmt.Sprintf("%s must be %s characters long", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "objectid":
		return label + " must be a valid hexadecimal ID"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "email":
		return label + " must be a valid email address"
	case "alphanum":
		return label + " must contain only letters and numbers"
	case "alphaunicode":
		return label + " must contain only letters"
	case "lettersspace":
		return label + " must contain only letters and spaces"
	case "phone":
		return label + " must contain only digits and hyphens"
	case "isodate":
		return label + " must be a valid date (YYYY-MM-DD)"
	case "numeric":
		return label + " must be a number"
	case "nonnegative":
		return label + " cannot be negative"
	case "boolean":
		return label + " must be true or false"
	default:
		return label + " is invalid"
	}
}

func fieldLabel(root, path string) string {
	if label, ok := fieldLabels[root+"."+path]; ok {
		return label
	}
	if label, ok := fieldLabels[path]; ok {
		return label
	}
	return path
}

// salaryAmount parses s when it passes both the numeric and nonnegative
// rules.
func salaryAmount(s string) (float64, bool) {
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil && f >= 0
}

// salaryRangeRules rejects a range whose maximum is below its minimum. It
// only runs once both amounts passed their field rules, so a field never
// gets two messages.
func salaryRangeRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(SalaryRangeRequest)
	lo, okLo := salaryAmount(string(r.MinAmount))
	hi, okHi := salaryAmount(string(r.MaxAmount))
	if !okLo || !okHi {
		return
	}
	if hi < lo {
		sl.ReportError(r.MaxAmount, "maxAmount", "MaxAmount", "gtefield", "minAmount")
	}
}

// applicationQueryRules requires both IDs when a pair lookup is requested.
// A missing ID already reported by required_without is not reported twice.
func applicationQueryRules(sl validator.StructLevel) {
	q := sl.Current().Interface().(ApplicationQuery)
	if pair, _ := strconv.ParseBool(q.UniqueIndex); !pair {
		return
	}
	if q.PersonID == "" && q.ListingID != "" {
		sl.ReportError(q.PersonID, "personId", "PersonID", "required", "")
	}
	if q.ListingID == "" && q.PersonID != "" {
		sl.ReportError(q.ListingID, "listingId", "ListingID", "required", "")
	}
}
