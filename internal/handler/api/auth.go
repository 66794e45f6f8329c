package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"
	"time"

	reqdto "estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/handler/httperr"
	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/cookie"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errOAuthState = errs.New("oauth state mismatch")

// AuthSettings carries the cookie and SSO redirect options the handler needs.
type AuthSettings struct {
	Cookie   config.CookieConfig
	OAuth    config.OAuthConfig
	TokenTTL time.Duration
}

type AuthHandler struct {
	cmds     commands.AuthCommands
	users    queries.UserQueries
	settings AuthSettings
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, settings AuthSettings) *AuthHandler {
	return &AuthHandler{
		cmds:     cmds,
		users:    users,
		settings: settings,
	}
}

// @Summary User login
// @Description Login with email and password. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondToken(c, result)
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	view, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary User logout
// @Description Clear the access token cookie. Bearer tokens stay valid until they expire.
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.settings.Cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logged out"})
}

// @Summary Start SSO login
// @Description Redirect to the identity provider consent page
// @Tags auth
// @Param provider path string true "Identity provider" Enums(google, microsoft)
// @Success 302 "Redirect to provider"
// @Failure 404 {object} httperr.Response
// @Router /auth/{provider}/login [get]
func (h *AuthHandler) ProviderLogin(c *gin.Context) {
	state, err := newState()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	target, err := h.cmds.AuthCodeURL(c.Param("provider"), state)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetOAuthState(c, h.settings.Cookie, state, h.settings.OAuth.StateTTL)
	c.Redirect(http.StatusFound, target)
}

// @Summary Complete SSO login
// @Description Exchange the authorization code, find or create the user and issue a token.
// @Description With a success redirect configured the token is passed in the URL fragment.
// @Tags auth
// @Produce json
// @Param provider path string true "Identity provider" Enums(google, microsoft)
// @Param code query string true "Authorization code"
// @Param state query string true "State issued at login"
// @Success 200 {object} resdto.LoginResponse
// @Success 302 "Redirect to the frontend"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) ProviderCallback(c *gin.Context) {
	expected := cookie.PopOAuthState(c, h.settings.Cookie)

	if providerErr := c.Query("error"); providerErr != "" {
		err := errs.Mark(errs.New(providerErr), commands.ErrIdentityExchange)
		respondError(c, err)
		return
	}
	if expected == "" || c.Query("state") != expected {
		httperr.AbortWithError(c, http.StatusBadRequest, errOAuthState, "Invalid OAuth state", nil)
		return
	}
	code := c.Query("code")
	if code == "" {
		httperr.Abort(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	result, err := h.cmds.LoginWithProvider(c.Request.Context(), c.Param("provider"), code)
	if err != nil {
		respondError(c, err)
		return
	}

	if target := h.settings.OAuth.SuccessRedirectURL; target != "" {
		cookie.SetAccessTokenCookie(c, h.settings.Cookie, result.AccessToken, h.settings.TokenTTL)
		c.Redirect(http.StatusFound, target+"#access_token="+url.QueryEscape(result.AccessToken))
		return
	}
	h.respondToken(c, result)
}

func (h *AuthHandler) respondToken(c *gin.Context, result *commands.LoginResult) {
	view, err := h.users.GetByID(c.Request.Context(), result.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetAccessTokenCookie(c, h.settings.Cookie, result.AccessToken, h.settings.TokenTTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        view,
	})
}

func newState() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
