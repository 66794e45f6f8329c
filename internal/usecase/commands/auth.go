package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"estaciona-api/internal/domain/auth"
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/jwt"
	"estaciona-api/internal/pkg/password"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials    = errs.New("invalid email or password")
	ErrMissingCredentials    = errs.New("email and password are required")
	ErrProviderNotConfigured = errs.New("identity provider not configured")
	ErrIdentityExchange      = errs.New("identity provider exchange failed")
	ErrTokenGeneration       = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	Created     bool
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	AuthCodeURL(provider, state string) (string, error)
	// LoginWithProvider finds or creates the client account behind an SSO identity.
	LoginWithProvider(ctx context.Context, provider, code string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	providers  shared.IdentityProviders
	jwtService *jwt.Service
	policy     *tz.Policy
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	providers shared.IdentityProviders,
	jwtService *jwt.Service,
	policy *tz.Policy,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		providers:  providers,
		jwtService: jwtService,
		policy:     policy,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		if errs.Is(err, auth.ErrMissingCredentials) {
			return nil, ErrMissingCredentials
		}
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so emails cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issue(u, false)
}

func (a *authCommandsImpl) AuthCodeURL(provider, state string) (string, error) {
	p, err := a.lookup(provider)
	if err != nil {
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

func (a *authCommandsImpl) LoginWithProvider(ctx context.Context, provider, code string) (*LoginResult, error) {
	p, err := a.lookup(provider)
	if err != nil {
		return nil, err
	}

	identity, err := p.Identify(ctx, code)
	if err != nil {
		return nil, errs.Mark(err, ErrIdentityExchange)
	}

	email, err := user.NewEmail(identity.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrIdentityExchange)
	}

	existing, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err == nil {
		return a.issue(existing, false)
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	created, err := a.createSSOUser(ctx, identity, email)
	if err != nil {
		return nil, err
	}
	slog.Info("user created from SSO login",
		"provider", identity.Provider.String(),
		"user_id", created.ID().String())
	return a.issue(created, true)
}

func (a *authCommandsImpl) createSSOUser(ctx context.Context, identity auth.Identity, email user.Email) (*user.User, error) {
	name, err := user.NewName(identity.DisplayName())
	if err != nil {
		name = user.Name(email.Value())
	}

	hash, err := password.HashPassword(randomSecret())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(name, email, hash, user.RoleClient, user.Profile{}, a.policy.Now(a.clock))
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// a concurrent callback created the same account first
			return a.uow.CommandReads().UserByEmail(ctx, email.Value())
		}
		return nil, err
	}
	return u, nil
}

func (a *authCommandsImpl) lookup(provider string) (shared.IdentityProvider, error) {
	name, err := auth.NewProvider(provider)
	if err != nil {
		return nil, errs.Mark(err, ErrProviderNotConfigured)
	}
	p, ok := a.providers.Lookup(name)
	if !ok {
		return nil, ErrProviderNotConfigured
	}
	return p, nil
}

func (a *authCommandsImpl) issue(u *user.User, created bool) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{UserID: u.ID(), AccessToken: token, Created: created}, nil
}

// randomSecret produces a password nobody knows; SSO accounts sign in through
// their provider only.
func randomSecret() string {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uuid.NewString() + uuid.NewString()
	}
	return hex.EncodeToString(buf[:])
}
