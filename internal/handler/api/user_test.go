//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/api"
	reqdto "estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/tests/common/builder"
	"estaciona-api/tests/common/httptest"
	"estaciona-api/tests/common/testutil"
	commandsmock "estaciona-api/tests/mock/commands"
	queriesmock "estaciona-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/users/", h.List)
	s.router.POST("/api/users/", h.Create)
	s.router.GET("/api/users/:id", h.Get)
	s.router.PUT("/api/users/:id", h.Update)
	s.router.DELETE("/api/users/:id", h.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/api/users/"
	b := builder.NewUserBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Balance, response.Balance)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/users/" + view.ID.String()})
	})

	s.Run("error: 400 on binding errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "unknown role", mutate: testutil.Field("role", "superuser")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "duplicate email", err: commands.ErrEmailTaken, expectedStatus: http.StatusBadRequest, expectedMsg: "email already registered"},
			{name: "invalid email", err: user.ErrInvalidEmail, expectedStatus: http.StatusBadRequest, expectedMsg: "invalid email format"},
			{name: "database failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	view := builder.NewUserBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/"+view.ID.String(), nil, "")

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response.Email)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	views := []*queries.UserView{builder.NewUserBuilder().BuildView(), builder.NewUserBuilder().WithEmail("b@example.com").BuildView()}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/", nil, "")

	var response []queries.UserView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
}

func (s *UserHandlerTestSuite) TestUpdate() {
	view := builder.NewUserBuilder().WithBalance(2500).BuildView()
	url := "/api/users/" + view.ID.String()
	balance := money.FromCents(2500)
	reqBody := reqdto.UpdateUserRequest{Balance: &balance}

	s.Run("success: partial update returns the stored view", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody.ToCommand()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("25.00", response["balance"])
	})

	s.Run("error: invalid role is rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"role": "root"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: negative balance", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(user.ErrInvalidAmount).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"balance": "-1.00"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "amount cannot be negative")
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	view := builder.NewUserBuilder().BuildView()
	url := "/api/users/" + view.ID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertMessageResponse(s.T(), rec, http.StatusOK, "User deleted")
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
