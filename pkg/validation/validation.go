// Package validation implements the input rules for accounts and tasks:
// email and phone shape, password strength, and due-date format.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailPattern: non-whitespace-non-@ characters, '@', more of the same,
// '.', then non-whitespace-non-@ characters.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PasswordReason identifies which strength rule a password failed.
type PasswordReason string

const (
	TooShort         PasswordReason = "too_short"
	MissingUppercase PasswordReason = "missing_uppercase"
	MissingLowercase PasswordReason = "missing_lowercase"
	MissingDigit     PasswordReason = "missing_digit"
)

// PasswordError reports the first strength rule a password failed.
type PasswordError struct {
	Reason PasswordReason
}

func (e *PasswordError) Error() string {
	switch e.Reason {
	case TooShort:
		return "password must be at least 6 characters"
	case MissingUppercase:
		return "password must contain at least one uppercase letter"
	case MissingLowercase:
		return "password must contain at least one lowercase letter"
	case MissingDigit:
		return "password must contain at least one number"
	default:
		return "invalid password"
	}
}

// Validator bundles the registered validation rules. It holds no state
// beyond the underlying validator instance and is safe for reuse.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the application's custom rules registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("appemail", func(fl validator.FieldLevel) bool {
		return isEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return isDigits(fl.Field().String())
	})
	return &Validator{v: v}
}

// ValidateEmail reports whether s has the shape local@domain.tld with no
// whitespace and no extra '@'.
func (va *Validator) ValidateEmail(s string) bool {
	return va.v.Var(s, "required,appemail") == nil
}

// ValidatePhone reports whether s is non-empty and contains only decimal
// digits.
func (va *Validator) ValidatePhone(s string) bool {
	return va.v.Var(s, "required,digits") == nil
}

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form.
func (va *Validator) ValidateDate(s string) bool {
	return va.v.Var(s, "required,datetime=2006-01-02") == nil
}

// ValidatePassword checks password strength. The rules are applied in a
// fixed order and the first failure is reported: minimum length 6, then at
// least one uppercase letter, one lowercase letter, and one digit.
func (va *Validator) ValidatePassword(s string) error {
	if len(s) < 6 {
		return &PasswordError{Reason: TooShort}
	}
	if !containsRange(s, 'A', 'Z') {
		return &PasswordError{Reason: MissingUppercase}
	}
	if !containsRange(s, 'a', 'z') {
		return &PasswordError{Reason: MissingLowercase}
	}
	if !containsRange(s, '0', '9') {
		return &PasswordError{Reason: MissingDigit}
	}
	return nil
}

func isEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
