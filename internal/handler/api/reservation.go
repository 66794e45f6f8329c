package api

import (
	"net/http"

	reqdto "estaciona-api/internal/handler/dto/request"
	resdto "estaciona-api/internal/handler/dto/response"
	"estaciona-api/internal/handler/httperr"
	"estaciona-api/internal/handler/middleware"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Description All reservations, newest first
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ReservationView
// @Failure 401 {object} httperr.Response
// @Router /reservations/ [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create reservation
// @Description Takes one free slot of the parking. user_id defaults to the caller and
// @Description total_amount to the estimate for the slot.
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/ [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), callerID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+id.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary Estimate cost
// @Description Whole hours rounded up with a one hour minimum, times the hourly price
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param parking_id query string true "Parking ID"
// @Param start query string true "Start (ISO 8601)"
// @Param end query string true "End (ISO 8601)"
// @Success 200 {object} queries.EstimateView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/estimate [get]
func (h *ReservationHandler) Estimate(c *gin.Context) {
	var query reqdto.EstimateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	view, err := h.q.Estimate(c.Request.Context(), query.ToQuery())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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

// @Summary Update reservation
// @Description Partial update validated like creation. Status changes into or out of
// @Description reserved, pending or paid take or release a slot.
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update reservation request"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
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

// @Summary Delete reservation
// @Description Deleting an active reservation frees its slot
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation deleted"})
}
