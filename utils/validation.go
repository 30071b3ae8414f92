package utils

import "errors"

// ValidateCredentials checks the registration and login form fields.
// Both are required; no further rules are imposed on either.
func ValidateCredentials(username string, password string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}
