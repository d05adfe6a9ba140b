package validation

import (
	"errors"
	"strings"
	"testing"

	"edumarket/internal/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "test@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "user@mail.example.com",
			wantErr: false,
		},
		{
			name:    "valid email with plus",
			email:   "user+tag@example.com",
			wantErr: false,
		},
		{
			name:    "missing @",
			email:   "testexample.com",
			wantErr: true,
		},
		{
			name:    "missing domain",
			email:   "test@",
			wantErr: true,
		},
		{
			name:    "missing local part",
			email:   "@example.com",
			wantErr: true,
		},
		{
			name:    "empty string",
			email:   "",
			wantErr: true,
		},
		{
			name:    "spaces in email",
			email:   "test @example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid name",
			input:   "John Doe",
			wantErr: false,
		},
		{
			name:    "single letter",
			input:   "A",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "name with apostrophe",
			input:   "O'Brien",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "single character",
			password: "p",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "exactly 72 bytes",
			password: strings.Repeat("a", 72),
			wantErr:  false,
		},
		{
			name:     "longer than bcrypt accepts",
			password: strings.Repeat("a", 73),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleStudent, models.RoleTutor} {
		if err := ValidateRole(role); err != nil {
			t.Errorf("ValidateRole(%q) unexpected error: %v", role, err)
		}
	}
	if err := ValidateRole("admin"); err == nil {
		t.Error("ValidateRole(admin) should fail")
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{3, false},
		{5, false},
		{6, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateRating(tt.rating)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateRating(%d) error = %v, wantErr %v", tt.rating, err, tt.wantErr)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateEmail("")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Field != "email" || err.Error() != "email: email is required" {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestValidateCourse(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		subject   string
		price     float64
		sections  int
		wantField string
	}{
		{name: "valid", title: "Calculus", subject: "Math", price: 80, sections: 4},
		{name: "free course", title: "Intro", subject: "Math", price: 0, sections: 1},
		{name: "blank title", title: "  ", subject: "Math", price: 80, sections: 4, wantField: "title"},
		{name: "missing subject", title: "Calculus", price: 80, sections: 4, wantField: "subject"},
		{name: "negative price", title: "Calculus", subject: "Math", price: -1, sections: 4, wantField: "totalPrice"},
		{name: "no sections", title: "Calculus", subject: "Math", price: 80, sections: 0, wantField: "numberOfSections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCourse(tt.title, tt.subject, tt.price, tt.sections)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateCourse() unexpected error: %v", err)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Errorf("ValidateCourse() error = %v, want field %s", err, tt.wantField)
			}
		})
	}
}
