package validation

import (
	"errors"
)

// ValidatePassword enforces the registration password rules.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password should be at least 6 characters")
	}

	// bcrypt silently truncates input beyond 72 bytes
	if len(password) > 72 {
		return errors.New("password must not exceed 72 characters")
	}

	return nil
}
