//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/tests/common/authtest"
	"estaciona-api/tests/common/dbtest"
	"estaciona-api/tests/common/httptest"
	"estaciona-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
	clientID  uuid.UUID
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.clientID = dbtest.CreateTestUser(s.T(), s.DB, "client@example.com", string(user.RoleClient), 5000)
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner), 0)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid credentials",
			email:          "client@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "email is case insensitive",
			email:          "Client@Example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
		{
			name:           "wrong password",
			email:          "client@example.com",
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email and password are required",
		},
		{
			name:           "empty password",
			email:          "client@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "email and password are required",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				return
			}

			var loginRes resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
			require.NotEmpty(t, loginRes.AccessToken)
			require.NotNil(t, loginRes.User)
			require.Equal(t, "client@example.com", loginRes.User.Email)
			require.Equal(t, "50.00", loginRes.User.Balance.String())

			cookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, cookie, "access_token cookie missing")
			require.Equal(t, loginRes.AccessToken, cookie.Value)
			require.True(t, cookie.HttpOnly)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "token from login",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "owner@example.com", dbtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "expired token",
			token:          func() string { return s.jwtHelper.CreateExpiredToken(s.T(), s.clientID, user.RoleClient) },
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token has expired",
		},
		{
			name:           "garbage token",
			token:          func() string { return "not-a-token" },
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "no token",
			token:          func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Missing Authorization Header",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.token())

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				return
			}

			var me queries.UserView
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
			require.Equal(t, "owner@example.com", me.Email)
			require.Equal(t, string(user.RoleOwner), me.Role)
			require.NotContains(t, w.Body.String(), "password")
		})
	}
}

func (s *authSuite) TestCookieSession() {
	s.Run("cookie authenticates and logout clears it", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "client@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, me.Code, me.Body.String())

		out := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		httptest.AssertMessageResponse(t, out, http.StatusOK, "Logged out")
		cleared := httptest.ExtractCookie(out, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Less(t, cleared.MaxAge, 0)
	})

	s.Run("token issued by the helper is accepted", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, s.clientID, user.RoleClient)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestProviderLogin() {
	s.Run("unconfigured provider", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/google/login", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "identity provider not configured")
	})

	s.Run("unknown provider", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/github/login", nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestProtectedEndpoints() {
	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/"},
		{http.MethodGet, "/api/reservations/"},
		{http.MethodGet, "/api/payments/"},
		{http.MethodPost, "/api/parkings/"},
		{http.MethodGet, "/api/reports/summary"},
	}

	s.Run("reject anonymous callers", func() {
		for _, ep := range endpoints {
			w := httptest.PerformRequest(s.T(), s.Router, ep.method, ep.path, nil, "")
			require.Equal(s.T(), http.StatusUnauthorized, w.Code, ep.method+" "+ep.path)
		}
	})

	s.Run("reports need owner or admin", func() {
		client := s.jwtHelper.GenerateToken(s.T(), s.clientID, user.RoleClient)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reports/summary", nil, client)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
