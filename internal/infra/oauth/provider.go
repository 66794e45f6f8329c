// Package oauth implements the SSO identity providers on top of
// golang.org/x/oauth2 and the providers' OpenID Connect userinfo endpoints.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"estaciona-api/internal/domain/auth"
	"estaciona-api/internal/pkg/errs"

	"golang.org/x/oauth2"
)

const maxUserInfoBytes = 1 << 20

type userInfo struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
}

type OIDCProvider struct {
	provider    auth.Provider
	config      *oauth2.Config
	userInfoURL string
}

func newOIDCProvider(provider auth.Provider, config *oauth2.Config, userInfoURL string) *OIDCProvider {
	return &OIDCProvider{
		provider:    provider,
		config:      config,
		userInfoURL: userInfoURL,
	}
}

func (p *OIDCProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Identify exchanges the authorization code and reads the userinfo document
// with the resulting token.
func (p *OIDCProvider) Identify(ctx context.Context, code string) (auth.Identity, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return auth.Identity{}, errs.Wrap(err, "failed to exchange code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return auth.Identity{}, errs.Wrap(err, "failed to build userinfo request")
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return auth.Identity{}, errs.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUserInfoBytes))
	if err != nil {
		return auth.Identity{}, errs.Wrap(err, "failed to read user info")
	}
	if resp.StatusCode != http.StatusOK {
		return auth.Identity{}, errs.New(fmt.Sprintf("%s userinfo error: %d %s", p.provider, resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var info userInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return auth.Identity{}, errs.Wrap(err, "failed to unmarshal user info")
	}

	email := info.Email
	if email == "" && strings.Contains(info.PreferredUsername, "@") {
		email = info.PreferredUsername
	}
	if email == "" {
		return auth.Identity{}, auth.ErrMissingEmail
	}

	return auth.Identity{
		Provider: p.provider,
		Email:    email,
		Name:     info.Name,
	}, nil
}
