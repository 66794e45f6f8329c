package oauth

import (
	"log/slog"

	"estaciona-api/internal/domain/auth"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/usecase/shared"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
)

const (
	googleUserInfoURL    = "https://openidconnect.googleapis.com/v1/userinfo"
	microsoftUserInfoURL = "https://graph.microsoft.com/oidc/userinfo"
)

type Registry struct {
	providers map[auth.Provider]shared.IdentityProvider
}

// NewRegistry registers every provider whose client credentials are set.
func NewRegistry(cfg config.OAuthConfig) *Registry {
	r := &Registry{providers: make(map[auth.Provider]shared.IdentityProvider)}

	if cfg.GoogleEnabled() {
		r.providers[auth.ProviderGoogle] = NewGoogleProvider(cfg)
	}
	if cfg.MicrosoftEnabled() {
		r.providers[auth.ProviderMicrosoft] = NewMicrosoftProvider(cfg)
	}

	slog.Info("SSO providers configured",
		"google", cfg.GoogleEnabled(),
		"microsoft", cfg.MicrosoftEnabled())
	return r
}

func (r *Registry) Lookup(provider auth.Provider) (shared.IdentityProvider, bool) {
	p, ok := r.providers[provider]
	return p, ok
}

func NewGoogleProvider(cfg config.OAuthConfig) *OIDCProvider {
	return newOIDCProvider(auth.ProviderGoogle, &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, googleUserInfoURL)
}

func NewMicrosoftProvider(cfg config.OAuthConfig) *OIDCProvider {
	return newOIDCProvider(auth.ProviderMicrosoft, &oauth2.Config{
		ClientID:     cfg.MicrosoftClientID,
		ClientSecret: cfg.MicrosoftClientSecret,
		RedirectURL:  cfg.MicrosoftRedirectURL,
		Scopes:       []string{"openid", "email", "profile", "User.Read"},
		Endpoint:     microsoft.AzureADEndpoint(cfg.MicrosoftTenant),
	}, microsoftUserInfoURL)
}
