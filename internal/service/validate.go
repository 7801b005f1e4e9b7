package service

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"regexp"
	"strings"
)

var (
	ErrEmptyUsername   = errors.New("username is empty")
	ErrInvalidUsername = errors.New("username contains invalid characters")
)

// usernamePattern allows 1-15 letters, digits, underscores or hyphens
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,15}$`)

var usernameValidator = newUsernameValidator()

func newUsernameValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("leetcode_username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateUsername checks raw user input before any lookup is attempted.  Blank input is ErrEmptyUsername; anything the
// pattern rejects, including surrounding whitespace, is ErrInvalidUsername.
func ValidateUsername(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyUsername
	}
	if err := usernameValidator.Var(raw, "leetcode_username"); err != nil {
		return ErrInvalidUsername
	}
	return nil
}
