package auth

import (
	"errors"
	"strings"

	"estaciona-api/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUnknownProvider    = errors.New("unknown identity provider")
	ErrMissingEmail       = errors.New("identity provider did not return an email")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks presence; a malformed email is reported as
// invalid credentials so login does not leak which field was wrong.
func NewCredentials(emailStr, password string) (Credentials, error) {
	if strings.TrimSpace(emailStr) == "" || password == "" {
		return Credentials{}, ErrMissingCredentials
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

func NewProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(s)); p {
	case ProviderGoogle, ProviderMicrosoft:
		return p, nil
	default:
		return "", ErrUnknownProvider
	}
}

func (p Provider) String() string {
	return string(p)
}

// Identity is what an SSO provider vouches for after the code exchange.
type Identity struct {
	Provider Provider
	Email    string
	Name     string
}

func (i Identity) DisplayName() string {
	if n := strings.TrimSpace(i.Name); n != "" {
		return n
	}
	local, _, _ := strings.Cut(i.Email, "@")
	return local
}
