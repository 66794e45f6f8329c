//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"estaciona-api/internal/domain/user"
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

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	h := api.NewPaymentHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/payments")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.POST("/pay-reservation/:id", h.PayReservation)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreate() {
	b := builder.NewPaymentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/", reqBody, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("10.00", response["amount"])
		s.Equal("pending", response["status"])
	})

	s.Run("error: 400 on binding errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("reservation_id", nil),
			testutil.Field("amount", nil),
			testutil.Field("status", "refunded"),
			testutil.Field("amount", "ten"),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/",
				testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: unknown reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/payments/", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *PaymentHandlerTestSuite) TestPayReservation() {
	reservationID := builder.NewReservationBuilder().ID
	url := "/api/payments/pay-reservation/" + reservationID.String()
	walletRef := "WALLET-APP"
	view := builder.NewPaymentBuilder().AsPaid().With(func(p *builder.PaymentBuilder) {
		p.ReservationID = reservationID
		p.Method = "saldo"
		p.ProviderRef = &walletRef
	}).BuildView()

	s.Run("success: wallet payment returns 201 with the settlement", func() {
		s.mockCommands.EXPECT().PayReservation(gomock.Any(), reservationID, commands.PayReservationInput{Method: "saldo"}).
			Return(&commands.PayReservationResult{PaymentID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "saldo"}, "")

		var response queries.PaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("paid", response.Status)
		s.Equal(&walletRef, response.ProviderRef)
	})

	s.Run("success: empty body defaults the method downstream", func() {
		s.mockCommands.EXPECT().PayReservation(gomock.Any(), reservationID, commands.PayReservationInput{}).
			Return(&commands.PayReservationResult{PaymentID: view.ID, Replayed: true}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: insufficient balance", func() {
		s.mockCommands.EXPECT().PayReservation(gomock.Any(), reservationID, gomock.Any()).
			Return(nil, user.ErrInsufficientBalance).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "saldo"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "insufficient balance")
	})

	s.Run("error: unknown reservation", func() {
		s.mockCommands.EXPECT().PayReservation(gomock.Any(), reservationID, gomock.Any()).
			Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *PaymentHandlerTestSuite) TestUpdateAndDelete() {
	view := builder.NewPaymentBuilder().AsPaid().BuildView()
	url := "/api/payments/" + view.ID.String()

	s.Run("update: status only", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "paid"}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("update: invalid status rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "void"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("delete: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(queries.ErrPaymentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "payment not found")
	})

	s.Run("list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.PaymentView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}
