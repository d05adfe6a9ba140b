package validation

import (
	"fmt"
	"regexp"
	"strings"

	"edumarket/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password can be stored
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) > maxPasswordBytes {
		return ValidationError{Field: "password", Message: "password must be at most 72 bytes"}
	}
	return nil
}

// ValidateName checks if a display name is valid
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

// ValidateRole checks that role is student or tutor
func ValidateRole(role models.Role) error {
	if !role.Valid() {
		return ValidationError{Field: "role", Message: "role must be student or tutor"}
	}
	return nil
}

// ValidateRating checks a review rating is within 1..5
func ValidateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return ValidationError{Field: "rating", Message: fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating)}
	}
	return nil
}

// ValidateCourse checks the fields a tutor supplies when creating a course
func ValidateCourse(title, subject string, totalPrice float64, sections int) error {
	if strings.TrimSpace(title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(subject) == "" {
		return ValidationError{Field: "subject", Message: "subject is required"}
	}
	if totalPrice < 0 {
		return ValidationError{Field: "totalPrice", Message: "price cannot be negative"}
	}
	if sections < 1 {
		return ValidationError{Field: "numberOfSections", Message: "a course needs at least one section"}
	}
	return nil
}
