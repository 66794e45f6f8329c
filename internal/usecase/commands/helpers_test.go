//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"estaciona-api/internal/domain/reservation"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/pkg/clock"
	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/tz"
	"estaciona-api/internal/usecase/shared"
	sharedmock "estaciona-api/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

// txFixture is a unit of work whose Within runs the callback on a mocked Tx.
type txFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	users        *sharedmock.MockUserRepository
	parkings     *sharedmock.MockParkingRepository
	reservations *sharedmock.MockReservationRepository
	payments     *sharedmock.MockPaymentRepository
	promotions   *sharedmock.MockPromotionRepository
	publisher    *sharedmock.MockEventPublisher
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		parkings:     sharedmock.NewMockParkingRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		payments:     sharedmock.NewMockPaymentRepository(ctrl),
		promotions:   sharedmock.NewMockPromotionRepository(ctrl),
		publisher:    sharedmock.NewMockEventPublisher(ctrl),
	}
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Parkings().Return(f.parkings).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Promotions().Return(f.promotions).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	return f
}

// expectWithin lets the next Within call run its callback against the mocked Tx.
func (f *txFixture) expectWithin() *gomock.Call {
	return f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func newServices(t *testing.T) *reservation.Services {
	t.Helper()
	return &reservation.Services{
		Clock:           clock.NewMockClock(fixedNow),
		PriceCalculator: reservation.NewHourlyPriceCalculator(),
		TimePolicy:      tz.NewPolicy(config.NewTestConfig().Reservation),
	}
}

func notFoundErr(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func foreignKeyErr() error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23503"})
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23505"})
}

func eventNamed(name string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(shared.Event)
		return ok && e.Name == name
	})
}
