//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/infra"
	"estaciona-api/internal/infra/pgstore"
	"estaciona-api/internal/infra/repository"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/tests/common/builder"
	repositorymock "estaciona-api/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParkingRepository_ReserveSlot(t *testing.T) {
	testCases := []struct {
		name     string
		rows     int64
		dbErr    error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "slot taken", rows: 1, want: true},
		{name: "no slot left", rows: 0, want: false},
		{name: "driver failure", dbErr: errors.New("conn closed"), wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockParkingWriteQueries(ctrl)
			id := uuid.New()
			q.EXPECT().ReserveParkingSlot(gomock.Any(), gomock.Nil(), id).Return(tc.rows, tc.dbErr).Times(1)

			got, err := repository.NewParkingRepository(q).ReserveSlot(context.Background(), nil, id)

			if tc.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParkingRepository_AdjustAvailable(t *testing.T) {
	t.Run("returns the new counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		id := uuid.New()
		q.EXPECT().AdjustParkingAvailable(gomock.Any(), gomock.Nil(), pgstore.AdjustParkingAvailableParams{ID: id, Delta: -2}).
			Return(int32(3), nil).Times(1)

		got, err := repository.NewParkingRepository(q).AdjustAvailable(context.Background(), nil, id, -2)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("unknown parking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		q.EXPECT().AdjustParkingAvailable(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int32(0), pgx.ErrNoRows).Times(1)

		_, err := repository.NewParkingRepository(q).AdjustAvailable(context.Background(), nil, uuid.New(), 1)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("check constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		q.EXPECT().AdjustParkingAvailable(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(int32(0), &pgconn.PgError{Code: "23514"}).Times(1)

		_, err := repository.NewParkingRepository(q).AdjustAvailable(context.Background(), nil, uuid.New(), 100)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})

	t.Run("delta beyond a database integer is bounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		id := uuid.New()
		q.EXPECT().AdjustParkingAvailable(gomock.Any(), gomock.Nil(),
			pgstore.AdjustParkingAvailableParams{ID: id, Delta: parking.MaxCapacity}).
			Return(int32(10), nil).Times(1)

		got, err := repository.NewParkingRepository(q).AdjustAvailable(context.Background(), nil, id, 4294967295)
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})
}

func TestParkingRepository_FindForUpdate(t *testing.T) {
	t.Run("reconstructs the locked row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		b := builder.NewParkingBuilder().WithCapacity(10, 4)
		q.EXPECT().GetParkingForUpdate(gomock.Any(), gomock.Nil(), b.ID).Return(b.BuildInfra(), nil).Times(1)

		got, err := repository.NewParkingRepository(q).FindForUpdate(context.Background(), nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, 4, got.Available())
		assert.Equal(t, b.PricePerHour, got.PricePerHour())
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		q.EXPECT().GetParkingForUpdate(gomock.Any(), gomock.Nil(), gomock.Any()).Return(pgstore.Parkings{}, pgx.ErrNoRows).Times(1)

		_, err := repository.NewParkingRepository(q).FindForUpdate(context.Background(), nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("driver failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockParkingWriteQueries(ctrl)
		q.EXPECT().GetParkingForUpdate(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(pgstore.Parkings{}, &pgconn.PgError{Code: "40P01"}).Times(1)

		_, err := repository.NewParkingRepository(q).FindForUpdate(context.Background(), nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create maps the aggregate to params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()

		want := pgstore.CreateReservationParams{
			ID:               b.ID,
			ParkingID:        b.ParkingID,
			UserID:           b.UserID,
			StartTime:        pgtype.Timestamptz{Time: b.StartTime, Valid: true},
			EndTime:          pgtype.Timestamptz{Time: b.EndTime, Valid: true},
			Status:           "reserved",
			TotalAmountCents: pgtype.Int8{Int64: 1000, Valid: true},
			CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		}
		q.EXPECT().CreateReservation(gomock.Any(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgstore.DBTX, got pgstore.CreateReservationParams) (pgstore.Reservations, error) {
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("CreateReservationParams mismatch (-want +got):\n%s", diff)
				}
				return pgstore.Reservations{}, nil
			}).Times(1)

		require.NoError(t, repository.NewReservationRepository(q).Create(ctx, nil, res))
	})

	t.Run("create without total stores null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.TotalAmount = nil }).BuildDomain()

		q.EXPECT().CreateReservation(gomock.Any(), gomock.Nil(), gomock.Cond(func(p pgstore.CreateReservationParams) bool {
			return !p.TotalAmountCents.Valid
		})).Return(pgstore.Reservations{}, nil).Times(1)

		require.NoError(t, repository.NewReservationRepository(q).Create(ctx, nil, res))
	})

	t.Run("create surfaces foreign key violations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().CreateReservation(gomock.Any(), gomock.Nil(), gomock.Any()).
			Return(pgstore.Reservations{}, &pgconn.PgError{Code: "23503"}).Times(1)

		err := repository.NewReservationRepository(q).Create(ctx, nil, builder.NewReservationBuilder().BuildDomain())
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("find for update reconstructs the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		b := builder.NewReservationBuilder().WithStatus("paid")
		q.EXPECT().GetReservationForUpdate(gomock.Any(), gomock.Nil(), b.ID).Return(b.BuildInfra(), nil).Times(1)

		got, err := repository.NewReservationRepository(q).FindForUpdate(ctx, nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.True(t, got.IsPaid())
		assert.True(t, got.TimeSlot().Start().Equal(b.StartTime))
		require.NotNil(t, got.TotalAmount())
		assert.Equal(t, money.Amount(1000), *got.TotalAmount())
	})

	t.Run("find for update of a missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		q.EXPECT().GetReservationForUpdate(gomock.Any(), gomock.Nil(), gomock.Any()).Return(pgstore.Reservations{}, pgx.ErrNoRows).Times(1)

		_, err := repository.NewReservationRepository(q).FindForUpdate(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("zero affected rows is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)
		q.EXPECT().DeleteReservation(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(0), nil).Times(1)
		q.EXPECT().UpdateReservation(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(0), nil).Times(1)

		assert.True(t, infra.IsKind(repo.Delete(ctx, nil, uuid.New()), infra.KindNotFound))
		assert.True(t, infra.IsKind(repo.Update(ctx, nil, builder.NewReservationBuilder().BuildDomain()), infra.KindNotFound))
	})

	t.Run("set status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		id := uuid.New()
		q.EXPECT().SetReservationStatus(gomock.Any(), gomock.Nil(), pgstore.SetReservationStatusParams{ID: id, Status: "paid"}).
			Return(int64(1), nil).Times(1)

		res := builder.NewReservationBuilder().BuildDomain()
		res.MarkPaid()
		require.NoError(t, repository.NewReservationRepository(q).SetStatus(ctx, nil, id, res.Status()))
	})
}

func TestUserRepository_DebitBalance(t *testing.T) {
	testCases := []struct {
		name string
		rows int64
		want bool
	}{
		{name: "covered", rows: 1, want: true},
		{name: "not enough funds", rows: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockUserWriteQueries(ctrl)
			id := uuid.New()
			q.EXPECT().DebitUserBalance(gomock.Any(), gomock.Nil(), pgstore.DebitUserBalanceParams{ID: id, AmountCents: 1500}).
				Return(tc.rows, nil).Times(1)

			got, err := repository.NewUserRepository(q).DebitBalance(context.Background(), nil, id, money.Amount(1500))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUserRepository_FindForUpdate(t *testing.T) {
	t.Run("reconstructs the locked row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		b := builder.NewUserBuilder()
		q.EXPECT().GetUserForUpdate(gomock.Any(), gomock.Nil(), b.ID).Return(b.BuildInfra(), nil).Times(1)

		got, err := repository.NewUserRepository(q).FindForUpdate(context.Background(), nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, b.Balance, got.Balance())
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockUserWriteQueries(ctrl)
		q.EXPECT().GetUserForUpdate(gomock.Any(), gomock.Nil(), gomock.Any()).Return(pgstore.Users{}, pgx.ErrNoRows).Times(1)

		_, err := repository.NewUserRepository(q).FindForUpdate(context.Background(), nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockUserWriteQueries(ctrl)
	q.EXPECT().CreateUser(gomock.Any(), gomock.Nil(), gomock.Any()).Return(pgstore.Users{}, &pgconn.PgError{Code: "23505"}).Times(1)

	err := repository.NewUserRepository(q).Create(context.Background(), nil, builder.NewUserBuilder().BuildDomain())
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestPaymentRepository_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockPaymentWriteQueries(ctrl)
	id := uuid.New()
	gomock.InOrder(
		q.EXPECT().DeletePayment(gomock.Any(), gomock.Nil(), id).Return(int64(1), nil),
		q.EXPECT().DeletePayment(gomock.Any(), gomock.Nil(), id).Return(int64(0), nil),
	)
	repo := repository.NewPaymentRepository(q)

	require.NoError(t, repo.Delete(context.Background(), nil, id))
	assert.True(t, infra.IsKind(repo.Delete(context.Background(), nil, id), infra.KindNotFound))
}
