//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/dto/request"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/tests/common/authtest"
	"estaciona-api/tests/common/dbtest"
	"estaciona-api/tests/common/httptest"
	"estaciona-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations/"

type reservationSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *reservationSuite) clientToken(email string) (uuid.UUID, string) {
	id := dbtest.CreateTestUser(s.T(), s.DB, email, string(user.RoleClient), 0)
	return id, s.jwtHelper.GenerateToken(s.T(), id, user.RoleClient)
}

func (s *reservationSuite) reserve(token string, parkingID uuid.UUID, start, end string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
		ParkingID: parkingID,
		StartTime: start,
		EndTime:   end,
	}, token)
}

func (s *reservationSuite) TestCreate() {
	s.Run("takes a slot and quotes whole hours", func() {
		t := s.T()
		userID, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 2, 2)

		w := s.reserve(token, parkingID, "2025-03-01T10:00:00", "2025-03-01T12:30:00")

		var view queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &view)
		require.Equal(t, userID, view.UserID)
		require.Equal(t, "reserved", view.Status)
		require.NotNil(t, view.TotalAmount)
		require.Equal(t, "15.00", view.TotalAmount.String())
		require.Equal(t, 1, dbtest.ParkingAvailable(t, s.DB, parkingID))
	})

	s.Run("overlapping slot of the same user is rejected", func() {
		t := s.T()
		_, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 5, 5)

		first := s.reserve(token, parkingID, "2025-03-01T10:00:00", "2025-03-01T12:00:00")
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		overlap := s.reserve(token, parkingID, "2025-03-01T11:00:00", "2025-03-01T13:00:00")
		httptest.AssertErrorResponse(t, overlap, http.StatusBadRequest, "already holds a reservation")

		touching := s.reserve(token, parkingID, "2025-03-01T12:00:00", "2025-03-01T13:00:00")
		require.Equal(t, http.StatusCreated, touching.Code, touching.Body.String())
		require.Equal(t, 3, dbtest.ParkingAvailable(t, s.DB, parkingID))
	})

	s.Run("full parking", func() {
		t := s.T()
		_, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Tiny", 500, 1, 0)

		w := s.reserve(token, parkingID, "2025-03-01T10:00:00", "2025-03-01T11:00:00")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "parking is full")
	})

	s.Run("input errors", func() {
		t := s.T()
		_, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 1, 1)

		httptest.AssertErrorResponse(t, s.reserve(token, parkingID, "yesterday", "2025-03-01T11:00:00"),
			http.StatusBadRequest, "ISO 8601")
		httptest.AssertErrorResponse(t, s.reserve(token, parkingID, "2025-03-01T11:00:00", "2025-03-01T10:00:00"),
			http.StatusBadRequest, "end time must be after start time")
		httptest.AssertErrorResponse(t, s.reserve(token, uuid.New(), "2025-03-01T10:00:00", "2025-03-01T11:00:00"),
			http.StatusNotFound, "parking not found")
		require.Equal(t, 1, dbtest.ParkingAvailable(t, s.DB, parkingID))
	})
}

func (s *reservationSuite) TestConcurrentCreateNeverOverbooks() {
	s.Run("only capacity requests succeed", func() {
		t := s.T()
		const capacity, clients = 2, 8
		parkingID := dbtest.CreateTestParking(t, s.DB, "Popular", 500, capacity, capacity)

		calls := make([]httptest.Call, clients)
		for i := range clients {
			_, token := s.clientToken(fmt.Sprintf("client%d@example.com", i))
			calls[i] = httptest.Call{
				Method: http.MethodPost,
				Path:   reservationsURL,
				Body: request.CreateReservationRequest{
					ParkingID: parkingID,
					StartTime: "2025-03-01T10:00:00",
					EndTime:   "2025-03-01T11:00:00",
				},
				AuthToken: token,
			}
		}

		created := 0
		for _, code := range httptest.ServeConcurrently(t, s.Router, calls) {
			if code == http.StatusCreated {
				created++
			} else {
				require.Equal(t, http.StatusBadRequest, code)
			}
		}
		require.Equal(t, capacity, created)
		require.Equal(t, 0, dbtest.ParkingAvailable(t, s.DB, parkingID))
	})

	s.Run("parking edits racing reservations keep the counter", func() {
		t := s.T()
		const capacity, clients, edits = 10, 6, 6
		parkingID := dbtest.CreateTestParking(t, s.DB, "Popular", 500, capacity, capacity)
		admin := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin), 0)
		adminToken := s.jwtHelper.GenerateToken(t, admin, user.RoleAdmin)

		var calls []httptest.Call
		for i := range clients {
			_, token := s.clientToken(fmt.Sprintf("client%d@example.com", i))
			calls = append(calls, httptest.Call{
				Method: http.MethodPost,
				Path:   reservationsURL,
				Body: request.CreateReservationRequest{
					ParkingID: parkingID,
					StartTime: "2025-03-01T10:00:00",
					EndTime:   "2025-03-01T11:00:00",
				},
				AuthToken: token,
			})
		}
		for i := range edits {
			calls = append(calls, httptest.Call{
				Method:    http.MethodPut,
				Path:      "/api/parkings/" + parkingID.String(),
				Body:      request.UpdateParkingRequest{Name: ptr.Of(fmt.Sprintf("Popular %d", i))},
				AuthToken: adminToken,
			})
		}

		for i, code := range httptest.ServeConcurrently(t, s.Router, calls) {
			if i < clients {
				require.Equal(t, http.StatusCreated, code)
			} else {
				require.Equal(t, http.StatusOK, code)
			}
		}
		require.Equal(t, capacity-clients, dbtest.ParkingAvailable(t, s.DB, parkingID))
	})
}

func (s *reservationSuite) TestUpdateAndDelete() {
	s.Run("status transitions move the counter", func() {
		t := s.T()
		userID, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 3, 2)
		start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestReservation(t, s.DB, parkingID, userID, start, start.Add(time.Hour), "reserved", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+id.String(),
			request.UpdateReservationRequest{Status: ptr.Of("cancelled")}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 3, dbtest.ParkingAvailable(t, s.DB, parkingID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+id.String(),
			request.UpdateReservationRequest{Status: ptr.Of("pending")}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 2, dbtest.ParkingAvailable(t, s.DB, parkingID))
		require.Equal(t, "pending", dbtest.ReservationStatus(t, s.DB, id))
	})

	s.Run("invalid partial update changes nothing", func() {
		t := s.T()
		userID, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 3, 2)
		start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestReservation(t, s.DB, parkingID, userID, start, start.Add(time.Hour), "reserved", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+id.String(),
			request.UpdateReservationRequest{EndTime: ptr.Of("2025-03-01T09:00:00")}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "end time must be after start time")
		require.Equal(t, "reserved", dbtest.ReservationStatus(t, s.DB, id))
	})

	s.Run("deleting an active reservation frees its slot", func() {
		t := s.T()
		userID, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 500, 3, 2)
		start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		id := dbtest.CreateTestReservation(t, s.DB, parkingID, userID, start, start.Add(time.Hour), "paid", 500)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+id.String(), nil, token)
		httptest.AssertMessageResponse(t, w, http.StatusOK, "Reservation deleted")
		require.Equal(t, 3, dbtest.ParkingAvailable(t, s.DB, parkingID))

		again := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+id.String(), nil, token)
		httptest.AssertErrorResponse(t, again, http.StatusNotFound, "reservation not found")
	})
}

func (s *reservationSuite) TestEstimate() {
	s.Run("rounds up to whole hours", func() {
		t := s.T()
		_, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", 350, 1, 1)

		url := fmt.Sprintf("%sestimate?parking_id=%s&start=2025-03-01T10:00:00&end=2025-03-01T11:10:00", reservationsURL, parkingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)

		var view queries.EstimateView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, int64(2), view.DurationHours)
		require.Equal(t, "7.00", view.EstimatedCost.String())
		require.Equal(t, "3.50", view.UnitPrice.String())
	})

	s.Run("total beyond the amount range", func() {
		t := s.T()
		_, token := s.clientToken("ana@example.com")
		parkingID := dbtest.CreateTestParking(t, s.DB, "Central", money.MaxCents, 1, 1)

		url := fmt.Sprintf("%sestimate?parking_id=%s&start=2025-03-01T10:00:00&end=2025-06-01T10:00:00", reservationsURL, parkingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "monetary amount out of range")
	})

	s.Run("missing arguments", func() {
		_, token := s.clientToken("ana@example.com")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"estimate", nil, token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})
}
