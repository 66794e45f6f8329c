package api

import (
	"net/http"

	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves read-only aggregates; routes require owner or admin.
type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Summary
// @Description Totals of users, parkings and reservations plus income from paid payments
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SummaryReport
// @Failure 403 {object} httperr.Response
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	report, err := h.q.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Revenue by parking
// @Description Sum of paid reservation totals per parking, highest first
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ParkingRevenue
// @Failure 403 {object} httperr.Response
// @Router /reports/revenue-by-parking [get]
func (h *ReportHandler) RevenueByParking(c *gin.Context) {
	rows, err := h.q.RevenueByParking(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Reservations by day
// @Description Reservation count per local calendar date of creation
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.DailyReservations
// @Failure 403 {object} httperr.Response
// @Router /reports/reservations-by-day [get]
func (h *ReportHandler) ReservationsByDay(c *gin.Context) {
	rows, err := h.q.ReservationsByDay(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Parkings by district
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.DistrictStats
// @Failure 403 {object} httperr.Response
// @Router /reports/stats-by-district [get]
func (h *ReportHandler) StatsByDistrict(c *gin.Context) {
	rows, err := h.q.StatsByDistrict(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Best parkings
// @Description Top five parkings by reservation count
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BestParking
// @Failure 403 {object} httperr.Response
// @Router /reports/best-parkings [get]
func (h *ReportHandler) BestParkings(c *gin.Context) {
	rows, err := h.q.BestParkings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
