package api

import (
	"net/http"

	"estaciona-api/internal/domain/auth"
	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/httperr"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/password"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target error
	status int
}

// errorTable is scanned in order; the first sentinel matched by errs.Is wins
// and its text becomes the response message.
var errorTable = []errorMapping{
	{queries.ErrUserNotFound, http.StatusNotFound},
	{queries.ErrParkingNotFound, http.StatusNotFound},
	{queries.ErrReservationNotFound, http.StatusNotFound},
	{queries.ErrPaymentNotFound, http.StatusNotFound},
	{queries.ErrPromotionNotFound, http.StatusNotFound},
	{commands.ErrProviderNotConfigured, http.StatusNotFound},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},

	{commands.ErrMissingCredentials, http.StatusBadRequest},
	{commands.ErrEmailTaken, http.StatusBadRequest},
	{commands.ErrInvalidReservationTime, http.StatusBadRequest},
	{commands.ErrInvalidPromotionDate, http.StatusBadRequest},
	{commands.ErrPaymentAmountRequired, http.StatusBadRequest},
	{queries.ErrMissingEstimateArgs, http.StatusBadRequest},
	{queries.ErrInvalidEstimateTime, http.StatusBadRequest},

	{reservation.ErrParkingFull, http.StatusBadRequest},
	{reservation.ErrOverlapping, http.StatusBadRequest},
	{reservation.ErrInvalidTimeSlot, http.StatusBadRequest},
	{reservation.ErrInvalidStatus, http.StatusBadRequest},
	{reservation.ErrNegativeAmount, http.StatusBadRequest},
	{user.ErrInsufficientBalance, http.StatusBadRequest},
	{user.ErrInvalidAmount, http.StatusBadRequest},
	{user.ErrInvalidEmail, http.StatusBadRequest},
	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrInvalidName, http.StatusBadRequest},
	{user.ErrEmptyPassword, http.StatusBadRequest},
	{auth.ErrUnknownProvider, http.StatusNotFound},
	{parking.ErrInvalidName, http.StatusBadRequest},
	{parking.ErrInvalidCapacity, http.StatusBadRequest},
	{parking.ErrInvalidPrice, http.StatusBadRequest},
	{parking.ErrInvalidLocation, http.StatusBadRequest},
	{payment.ErrInvalidStatus, http.StatusBadRequest},
	{payment.ErrNegativeAmount, http.StatusBadRequest},
	{promotion.ErrInvalidTitle, http.StatusBadRequest},
	{promotion.ErrInvalidWindow, http.StatusBadRequest},
	{promotion.ErrInvalidDiscountAmount, http.StatusBadRequest},
	{promotion.ErrInvalidDiscountPercent, http.StatusBadRequest},
	{password.ErrInvalidPassword, http.StatusBadRequest},
	{money.ErrInvalidAmount, http.StatusBadRequest},
	{money.ErrOutOfRange, http.StatusBadRequest},
	{tz.ErrInvalidTimestamp, http.StatusBadRequest},
}

// respondError translates a use case error into the JSON error body.
func respondError(c *gin.Context, err error) {
	if errs.Is(err, commands.ErrIdentityExchange) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "SSO login failed: "+err.Error(), nil)
		return
	}
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.target.Error(), nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
