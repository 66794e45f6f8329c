//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/internal/usecase/commands"
	"estaciona-api/internal/usecase/queries"
	"estaciona-api/internal/usecase/shared"
	"estaciona-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	f        *txFixture
	commands commands.ReservationCommands
	ctx      context.Context
	callerID uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newTxFixture(s.ctrl)
	s.commands = commands.NewReservationCommands(s.f.uow, newServices(s.T()), s.f.publisher)
	s.ctx = context.Background()
	s.callerID = uuid.New()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) createInput(parkingID uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ParkingID: parkingID,
		StartTime: "2025-03-01T10:00:00",
		EndTime:   "2025-03-01T12:30:00Z",
	}
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("takes a slot and quotes the total", func() {
		p := builder.NewParkingBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c shared.OverlapCriteria) (int64, error) {
				s.Equal(s.callerID, c.UserID)
				s.Equal(p.ID(), c.ParkingID)
				s.Nil(c.ExcludeID)
				return 0, nil
			})
		s.f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), p.ID()).Return(true, nil)

		var saved *reservation.Reservation
		s.f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) error {
				saved = r
				return nil
			})
		s.f.publisher.EXPECT().Publish(gomock.Any(), eventNamed(shared.EventReservationCreated))

		id, err := s.commands.Create(s.ctx, s.callerID, s.createInput(p.ID()))

		s.Require().NoError(err)
		s.Require().NotNil(saved)
		s.Equal(saved.ID(), id)
		s.Equal(s.callerID, saved.UserID())
		s.Equal(reservation.StatusReserved, saved.Status())
		s.Equal(money.FromCents(1500), saved.AmountDue())
		s.True(saved.TimeSlot().Start().Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
		s.Equal("2025-03-01T05:00:00-05:00", saved.TimeSlot().Start().Format(time.RFC3339))
	})

	s.Run("explicit user and inactive status skip the slot", func() {
		p := builder.NewParkingBuilder().WithCapacity(10, 0).BuildDomain()
		other := uuid.New()
		in := s.createInput(p.ID())
		in.UserID = &other
		in.Status = "cancelled"

		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
		s.f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, r *reservation.Reservation) error {
				s.Equal(other, r.UserID())
				return nil
			})
		s.f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := s.commands.Create(s.ctx, s.callerID, in)
		s.NoError(err)
	})

	s.Run("unparseable timestamp fails before the transaction", func() {
		in := s.createInput(uuid.New())
		in.EndTime = "tomorrow"

		_, err := s.commands.Create(s.ctx, s.callerID, in)
		s.True(errs.Is(err, commands.ErrInvalidReservationTime))
	})

	s.Run("end before start", func() {
		in := s.createInput(uuid.New())
		in.EndTime = "2025-03-01T09:00:00"

		_, err := s.commands.Create(s.ctx, s.callerID, in)
		s.True(errs.Is(err, reservation.ErrInvalidTimeSlot))
	})

	s.Run("unknown parking", func() {
		id := uuid.New()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), id).Return(nil, notFoundErr("parking"))

		_, err := s.commands.Create(s.ctx, s.callerID, s.createInput(id))
		s.True(errs.Is(err, queries.ErrParkingNotFound))
	})

	s.Run("parking without free units", func() {
		p := builder.NewParkingBuilder().WithCapacity(10, 0).BuildDomain()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := s.commands.Create(s.ctx, s.callerID, s.createInput(p.ID()))
		s.True(errs.Is(err, reservation.ErrParkingFull))
	})

	s.Run("overlapping reservation of the same user", func() {
		p := builder.NewParkingBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		_, err := s.commands.Create(s.ctx, s.callerID, s.createInput(p.ID()))
		s.True(errs.Is(err, reservation.ErrOverlapping))
	})

	s.Run("last unit taken concurrently", func() {
		p := builder.NewParkingBuilder().WithCapacity(10, 1).BuildDomain()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		s.f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), p.ID()).Return(false, nil)

		_, err := s.commands.Create(s.ctx, s.callerID, s.createInput(p.ID()))
		s.True(errs.Is(err, reservation.ErrParkingFull))
	})

	s.Run("unknown user", func() {
		p := builder.NewParkingBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		s.f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), p.ID()).Return(true, nil)
		s.f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(foreignKeyErr())

		_, err := s.commands.Create(s.ctx, s.callerID, s.createInput(p.ID()))
		s.True(errs.Is(err, queries.ErrUserNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestUpdate() {
	s.Run("cancelling releases the slot", func() {
		r := builder.NewReservationBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.parkings.EXPECT().ReleaseSlot(gomock.Any(), gomock.Any(), r.ParkingID()).Return(nil)
		s.f.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), r).Return(nil)

		err := s.commands.Update(s.ctx, r.ID(), commands.UpdateReservationInput{Status: ptr.Of("cancelled")})

		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, r.Status())
	})

	s.Run("reactivating checks overlap excluding itself and takes a slot", func() {
		r := builder.NewReservationBuilder().WithStatus("cancelled").BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c shared.OverlapCriteria) (int64, error) {
				s.Require().NotNil(c.ExcludeID)
				s.Equal(r.ID(), *c.ExcludeID)
				return 0, nil
			})
		s.f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), r.ParkingID()).Return(true, nil)
		s.f.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), r).Return(nil)

		err := s.commands.Update(s.ctx, r.ID(), commands.UpdateReservationInput{Status: ptr.Of("pending")})
		s.NoError(err)
	})

	s.Run("reactivating into a full parking", func() {
		r := builder.NewReservationBuilder().WithStatus("completed").BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		s.f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), r.ParkingID()).Return(false, nil)

		err := s.commands.Update(s.ctx, r.ID(), commands.UpdateReservationInput{Status: ptr.Of("reserved")})
		s.True(errs.Is(err, reservation.ErrParkingFull))
	})

	s.Run("moving the slot re-runs the overlap check", func() {
		r := builder.NewReservationBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(2), nil)

		err := s.commands.Update(s.ctx, r.ID(), commands.UpdateReservationInput{EndTime: ptr.Of("2025-03-01T15:00:00")})
		s.True(errs.Is(err, reservation.ErrOverlapping))
	})

	s.Run("invalid timestamp", func() {
		err := s.commands.Update(s.ctx, uuid.New(), commands.UpdateReservationInput{StartTime: ptr.Of("01/03/2025")})
		s.True(errs.Is(err, commands.ErrInvalidReservationTime))
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr("reservation"))

		err := s.commands.Update(s.ctx, id, commands.UpdateReservationInput{Status: ptr.Of("paid")})
		s.True(errs.Is(err, queries.ErrReservationNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	s.Run("active reservation frees its slot", func() {
		r := builder.NewReservationBuilder().BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.parkings.EXPECT().ReleaseSlot(gomock.Any(), gomock.Any(), r.ParkingID()).Return(nil)
		s.f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), r.ID()).Return(nil)
		s.f.publisher.EXPECT().Publish(gomock.Any(), eventNamed(shared.EventReservationDeleted))

		s.NoError(s.commands.Delete(s.ctx, r.ID()))
	})

	s.Run("cancelled reservation leaves the counter alone", func() {
		r := builder.NewReservationBuilder().WithStatus("cancelled").BuildDomain()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		s.f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), r.ID()).Return(nil)
		s.f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		s.NoError(s.commands.Delete(s.ctx, r.ID()))
	})

	s.Run("not found publishes nothing", func() {
		id := uuid.New()
		s.f.expectWithin()
		s.f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr("reservation"))

		err := s.commands.Delete(s.ctx, id)
		s.True(errs.Is(err, queries.ErrReservationNotFound))
	})
}

func TestReservationCommands_EventPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTxFixture(ctrl)
	cmds := commands.NewReservationCommands(f.uow, newServices(t), f.publisher)
	p := builder.NewParkingBuilder().BuildDomain()

	f.expectWithin()
	f.reads.EXPECT().ParkingByID(gomock.Any(), p.ID()).Return(p, nil)
	f.reads.EXPECT().CountOverlapping(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.parkings.EXPECT().ReserveSlot(gomock.Any(), gomock.Any(), p.ID()).Return(true, nil)
	f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var published shared.Event
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e shared.Event) {
		published = e
	})

	id, err := cmds.Create(context.Background(), uuid.New(), commands.CreateReservationInput{
		ParkingID:   p.ID(),
		StartTime:   "2025-03-01 10:00",
		EndTime:     "2025-03-01 11:00",
		TotalAmount: ptr.Of(money.FromCents(900)),
	})

	require.NoError(t, err)
	assert.Equal(t, id, published.EntityID)
	assert.Equal(t, p.ID().String(), published.Data["parking_id"])
	assert.Equal(t, "9.00", published.Data["total_amount"])
	assert.Equal(t, "2025-03-01T10:00:00-05:00", published.OccurredAt.Format(time.RFC3339))
}
