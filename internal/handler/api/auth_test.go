//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"estaciona-api/internal/handler/api"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/tests/common/builder"
	"estaciona-api/tests/common/httptest"
	"estaciona-api/tests/common/testutil"
	commandsmock "estaciona-api/tests/mock/commands"
	queriesmock "estaciona-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, api.AuthSettings{
		Cookie:   cfg.Cookie,
		OAuth:    cfg.OAuth,
		TokenTTL: time.Hour,
	})

	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.POST("/api/auth/logout", s.handler.Logout)
	s.router.GET("/api/auth/me", withPrincipal("client"), s.handler.Me)
	s.router.GET("/api/auth/:provider/login", s.handler.ProviderLogin)
	s.router.GET("/api/auth/:provider/callback", s.handler.ProviderCallback)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"

	userView := builder.NewUserBuilder().BuildView()
	auth := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.UserID = userView.ID })
	reqBody := auth.BuildDTO()

	s.Run("success: returns token, user and cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildInput()).
			Return(auth.BuildResult(), nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userView.ID).
			Return(userView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(auth.AccessToken, response.AccessToken)
		s.Equal(userView.Email, response.User.Email)

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal(auth.AccessToken, cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: malformed JSON is rejected before the use case", func() {
		req := strings.NewReader("{")
		rec := performRaw(s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			mutate         func(m map[string]any)
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing password",
				mutate:         testutil.Field("password", nil),
				commandsError:  commands.ErrMissingCredentials,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "email and password are required",
			},
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "invalid email or password",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody)
				if tc.mutate != nil {
					body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
				}
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears the access token cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, "")
		httptest.AssertMessageResponse(s.T(), rec, http.StatusOK, "Logged out")

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
		s.Negative(cookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"
	userView := builder.NewUserBuilder().With(func(u *builder.UserBuilder) { u.ID = principalID }).BuildView()

	s.Run("success: returns current user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), principalID).
			Return(userView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userView.Email, response["email"])
		s.Equal("50.00", response["balance"])
	})

	s.Run("error: 401 without an authenticated user", func() {
		router := gin.New()
		router.GET(url, s.handler.Me)
		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *AuthHandlerTestSuite) TestProviderLogin() {
	s.Run("success: redirects and stores state", func() {
		s.mockCommands.EXPECT().AuthCodeURL("google", gomock.Any()).
			DoAndReturn(func(_ string, state string) (string, error) {
				return "https://accounts.example.com/auth?state=" + state, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/google/login", nil, "")
		s.Equal(http.StatusFound, rec.Code)

		state := httptest.ExtractCookie(rec, "oauth_state")
		s.Require().NotNil(state)
		s.NotEmpty(state.Value)
		s.Equal("/api/auth", state.Path)
		s.Contains(rec.Header().Get("Location"), "state="+state.Value)
	})

	s.Run("error: 404 for a provider that is not configured", func() {
		s.mockCommands.EXPECT().AuthCodeURL("microsoft", gomock.Any()).
			Return("", commands.ErrProviderNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/microsoft/login", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "identity provider not configured")
	})
}

func (s *AuthHandlerTestSuite) TestProviderCallback() {
	stateCookie := &http.Cookie{Name: "oauth_state", Value: "expected-state"}
	userView := builder.NewUserBuilder().BuildView()

	s.Run("success: exchanges code and issues token", func() {
		s.mockCommands.EXPECT().LoginWithProvider(gomock.Any(), "google", "auth-code").
			Return(&commands.LoginResult{UserID: userView.ID, AccessToken: "sso.jwt.token"}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userView.ID).Return(userView, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?code=auth-code&state=expected-state", nil, []*http.Cookie{stateCookie}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("sso.jwt.token", response.AccessToken)
	})

	s.Run("error: 400 on state mismatch", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?code=auth-code&state=forged", nil, []*http.Cookie{stateCookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid OAuth state")
	})

	s.Run("error: 400 when the state cookie is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?code=auth-code&state=expected-state", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid OAuth state")
	})

	s.Run("error: 400 when the provider reports an error", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?error=access_denied&state=expected-state", nil, []*http.Cookie{stateCookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "SSO login failed")
	})

	s.Run("error: 400 when the code is missing", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?state=expected-state", nil, []*http.Cookie{stateCookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing authorization code")
	})

	s.Run("error: exchange failure maps to 400", func() {
		s.mockCommands.EXPECT().LoginWithProvider(gomock.Any(), "google", "bad-code").
			Return(nil, commands.ErrIdentityExchange).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet,
			"/api/auth/google/callback?code=bad-code&state=expected-state", nil, []*http.Cookie{stateCookie}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "SSO login failed")
	})
}
