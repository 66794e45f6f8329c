package cookie

import (
	"net/http"
	"time"

	"estaciona-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	OAuthStateCookieName  = "oauth_state"
)

func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, accessToken, int(expiry.Seconds()), "/")
}

func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1, "/")
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetOAuthState scopes the state cookie to the auth routes so it rides along
// on the provider callback only.
func SetOAuthState(c *gin.Context, cfg config.CookieConfig, state string, ttl time.Duration) {
	set(c, cfg, OAuthStateCookieName, state, int(ttl.Seconds()), "/api/auth")
}

// PopOAuthState returns the stored state and clears the cookie.
func PopOAuthState(c *gin.Context, cfg config.CookieConfig) string {
	state, _ := c.Cookie(OAuthStateCookieName)
	set(c, cfg, OAuthStateCookieName, "", -1, "/api/auth")
	return state
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int, path string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		path,
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
