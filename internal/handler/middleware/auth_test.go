//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/usecase"
	"estaciona-api/tests/common/httptest"
	usecasemock "estaciona-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	userID        uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()

	m := middleware.NewAuthMiddleware(s.mockValidator)
	s.router.GET("/whoami", m.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	})
	s.router.GET("/reports", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer header sets the principal", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").
			Return(usecase.Principal{UserID: s.userID, Role: user.RoleClient}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID.String(), body["user_id"])
		s.Equal("client", body["role"])
	})

	s.Run("success: falls back to the access_token cookie", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").
			Return(usecase.Principal{UserID: s.userID, Role: user.RoleAdmin}, nil).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: "access_token", Value: "cookie-token"}}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Missing Authorization Header")
	})

	s.Run("error: expired token", func() {
		s.mockValidator.EXPECT().ValidateToken("old-token").
			Return(usecase.Principal{}, usecase.ErrTokenExpired).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "old-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token has expired")
	})

	s.Run("error: invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("forged").
			Return(usecase.Principal{}, errors.New("signature mismatch")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	testCases := []struct {
		role       user.Role
		expectCode int
	}{
		{role: user.RoleClient, expectCode: http.StatusForbidden},
		{role: user.RoleOwner, expectCode: http.StatusNoContent},
		{role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}
	for _, tc := range testCases {
		s.Run(tc.role.String(), func() {
			s.mockValidator.EXPECT().ValidateToken("token").
				Return(usecase.Principal{UserID: s.userID, Role: tc.role}, nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reports", nil, "token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}
