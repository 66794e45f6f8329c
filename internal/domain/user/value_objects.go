package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidName   = errors.New("name must be between 1 and 120 characters")
	ErrEmptyPassword = errors.New("password is required")
)

const maxNameLength = 120

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > maxNameLength {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Profile holds the optional identity fields collected at signup.
type Profile struct {
	DNI    *string
	Phone  *string
	Plate  *string
	Gender *string
}

// ReconstructEmail rebuilds a stored email without re-validating it.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}
