package shared

import (
	"context"

	"estaciona-api/internal/domain/auth"
)

// IdentityProvider runs the authorization-code flow of one SSO provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (auth.Identity, error)
}

type IdentityProviders interface {
	// Lookup reports false for providers that are not configured.
	Lookup(provider auth.Provider) (IdentityProvider, bool)
}
