package validation

import (
	"strconv"
	"strings"
)

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Gender          string
	NationalID      string
	Age             string
	Location        string
}

// RegisterFields is the typed result of a successful registration validation.
type RegisterFields struct {
	Name       string
	Email      string
	Password   string
	Gender     string
	NationalID string
	Age        int
	Location   string
}

// ValidateRegistration checks every registration field and returns either the
// parsed fields or the per-field failures.
func ValidateRegistration(in RegisterInput) (*RegisterFields, []FieldError) {
	var errs []FieldError

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	gender := strings.TrimSpace(in.Gender)
	nationalID := strings.TrimSpace(in.NationalID)
	location := strings.TrimSpace(in.Location)

	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}

	if err := ValidateEmail(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: err.Error()})
	}

	if err := ValidatePassword(in.Password); err != nil {
		errs = append(errs, FieldError{Field: "password", Message: err.Error()})
	} else if in.Password != in.PasswordConfirm {
		errs = append(errs, FieldError{Field: "password2", Message: "passwords do not match"})
	}

	if gender == "" {
		errs = append(errs, FieldError{Field: "gender", Message: "gender is required"})
	}

	if nationalID == "" {
		errs = append(errs, FieldError{Field: "national_id", Message: "national ID is required"})
	}

	age := 0
	if strings.TrimSpace(in.Age) == "" {
		errs = append(errs, FieldError{Field: "age", Message: "age is required"})
	} else {
		parsed, err := strconv.Atoi(strings.TrimSpace(in.Age))
		if err != nil || parsed <= 0 {
			errs = append(errs, FieldError{Field: "age", Message: "age must be a positive number"})
		} else {
			age = parsed
		}
	}

	if location == "" {
		errs = append(errs, FieldError{Field: "location", Message: "location is required"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &RegisterFields{
		Name:       name,
		Email:      email,
		Password:   in.Password,
		Gender:     gender,
		NationalID: nationalID,
		Age:        age,
		Location:   location,
	}, nil
}
