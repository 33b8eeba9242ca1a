package validation

import (
	"strconv"
	"strings"
)

// BatInput carries the raw listing form fields.
type BatInput struct {
	BrandName       string
	Price           string
	Description     string
	BrandAmbassador string
}

// BatFields is the typed result of a successful listing validation.
type BatFields struct {
	BrandName       string
	Price           float64
	Description     string
	BrandAmbassador string
}

// ValidateBat checks the listing form fields and coerces price to a number.
func ValidateBat(in BatInput) (*BatFields, []FieldError) {
	var errs []FieldError

	brandName := strings.TrimSpace(in.BrandName)
	description := strings.TrimSpace(in.Description)
	ambassador := strings.TrimSpace(in.BrandAmbassador)

	if brandName == "" {
		errs = append(errs, FieldError{Field: "brand_name", Message: "brand name is required"})
	}

	price := 0.0
	if strings.TrimSpace(in.Price) == "" {
		errs = append(errs, FieldError{Field: "price", Message: "price is required"})
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
		if err != nil || parsed < 0 {
			errs = append(errs, FieldError{Field: "price", Message: "price must be a number"})
		} else {
			price = parsed
		}
	}

	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}

	if ambassador == "" {
		errs = append(errs, FieldError{Field: "brand_ambassador", Message: "brand ambassador is required"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &BatFields{
		BrandName:       brandName,
		Price:           price,
		Description:     description,
		BrandAmbassador: ambassador,
	}, nil
}

// ValidateBatUpdate checks only the mutable listing fields.
func ValidateBatUpdate(priceRaw, description, ambassador string) (float64, string, string, []FieldError) {
	var errs []FieldError

	description = strings.TrimSpace(description)
	ambassador = strings.TrimSpace(ambassador)

	price := 0.0
	if strings.TrimSpace(priceRaw) == "" {
		errs = append(errs, FieldError{Field: "price", Message: "price is required"})
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
		if err != nil || parsed < 0 {
			errs = append(errs, FieldError{Field: "price", Message: "price must be a number"})
		} else {
			price = parsed
		}
	}

	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}

	if ambassador == "" {
		errs = append(errs, FieldError{Field: "brand_ambassador", Message: "brand ambassador is required"})
	}

	return price, description, ambassador, errs
}
