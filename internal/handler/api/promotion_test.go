//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/handler/api"
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

type PromotionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	mockQueries  *queriesmock.MockPromotionQueries
}

func (s *PromotionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromotionQueries(s.mockCtrl)
	h := api.NewPromotionHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/promotions")
	g.GET("/by-parking/:id", h.ListByParking)
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *PromotionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromotionHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionHandlerTestSuite))
}

func (s *PromotionHandlerTestSuite) TestCreate() {
	b := builder.NewPromotionBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/", reqBody, "")

		var response queries.PromotionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Title, response.Title)
		s.Equal(*view.DiscountPercent, *response.DiscountPercent)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/promotions/" + view.ID.String()})
	})

	s.Run("error: 400 on binding errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("title", nil),
			testutil.Field("parking_id", nil),
			testutil.Field("start_date", nil),
			testutil.Field("discount_percent", 120),
			testutil.Field("discount_percent", -1),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/",
				testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "window", err: promotion.ErrInvalidWindow, expectedStatus: http.StatusBadRequest, expectedMsg: "end date must not be before start date"},
			{name: "date format", err: commands.ErrInvalidPromotionDate, expectedStatus: http.StatusBadRequest, expectedMsg: "ISO 8601"},
			{name: "parking", err: queries.ErrParkingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "parking not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/promotions/", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PromotionHandlerTestSuite) TestListByParking() {
	b := builder.NewPromotionBuilder()
	view := b.BuildView()

	s.mockQueries.EXPECT().ListCurrentByParking(gomock.Any(), b.ParkingID).
		Return([]*queries.PromotionView{view}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promotions/by-parking/"+b.ParkingID.String(), nil, "")

	var response []queries.PromotionView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.True(response[0].IsActive)
}

func (s *PromotionHandlerTestSuite) TestUpdateGetDelete() {
	view := builder.NewPromotionBuilder().With(func(p *builder.PromotionBuilder) { p.IsActive = false }).BuildView()
	url := "/api/promotions/" + view.ID.String()

	s.Run("update: deactivate", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ any, in commands.UpdatePromotionInput) error {
				s.Require().NotNil(in.IsActive)
				s.False(*in.IsActive)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"is_active": false}, "")

		var response queries.PromotionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsActive)
	})

	s.Run("get: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrPromotionNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "promotion not found")
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertMessageResponse(s.T(), rec, http.StatusOK, "Promotion deleted")
	})
}
