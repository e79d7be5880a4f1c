package service

import (
	"errors"
	"regexp"
)

var (
	ErrNameEmpty   = errors.New("name cannot be empty")
	ErrNameInvalid = errors.New("name should not contain special characters")
)

var (
	// Names may contain letters, digits, dashes, spaces and dots.
	nameRe = regexp.MustCompile(`^[a-zA-Z0-9 .-]+$`)

	emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// validateName applies the shared naming rules for lists and items.
func validateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if !nameRe.MatchString(name) {
		return ErrNameInvalid
	}
	return nil
}

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

// validPassword requires at least 8 alphanumeric characters including
// at least one letter and one digit.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}
