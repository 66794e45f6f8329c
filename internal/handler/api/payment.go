package api

import (
	"net/http"

	reqdto "estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary List payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.PaymentView
// @Router /payments/ [get]
func (h *PaymentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Record payment
// @Description Manual payment. Status paid also marks the reservation paid.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Create payment request"
// @Success 201 {object} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/ [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCreated(c, id)
}

// @Summary Pay reservation
// @Description Settle a reservation for its total amount. Method "saldo" debits the
// @Description reservation owner's wallet. An already paid reservation returns its first payment.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PayReservationRequest false "Payment method"
// @Success 201 {object} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/pay-reservation/{id} [post]
func (h *PaymentHandler) PayReservation(c *gin.Context) {
	reservationID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PayReservationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	result, err := h.cmds.PayReservation(c.Request.Context(), reservationID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondCreated(c, result.PaymentID)
}

// @Summary Get payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update payment
// @Description Partial update. Status paid also marks the reservation paid.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentRequest true "Update payment request"
// @Success 200 {object} queries.PaymentView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Payment deleted"})
}

func (h *PaymentHandler) respondCreated(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/payments/"+id.String())
	c.JSON(http.StatusCreated, view)
}
