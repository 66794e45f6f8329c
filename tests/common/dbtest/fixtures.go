//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err == nil {
			defaultHash = string(h)
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash default password")
	return defaultHash
}

// CreateTestUser inserts a user with DefaultPassword and the given wallet balance.
// An existing user with the same email is reused.
func CreateTestUser(t *testing.T, db DBLike, email, role string, balanceCents int64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, balance_cents) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, "Test User", email, passwordHash(t), role, balanceCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestParking(t *testing.T, db DBLike, name string, priceCents int64, capacity, available int) uuid.UUID {
	t.Helper()

	parkingID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO parkings (id, name, district, lat, lng, price_per_hour_cents, capacity, available)
		 VALUES ($1, $2, 'Miraflores', -12.1211, -77.0297, $3, $4, $5)`,
		parkingID, name, priceCents, capacity, available)
	require.NoError(t, err)

	return parkingID
}

func CreateTestReservation(t *testing.T, db DBLike, parkingID, userID uuid.UUID, start, end time.Time, status string, totalCents int64) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, parking_id, user_id, start_time, end_time, status, total_amount_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, parkingID, userID, start, end, status, totalCents)
	require.NoError(t, err)

	return reservationID
}

func ParkingAvailable(t *testing.T, db DBLike, parkingID uuid.UUID) int {
	t.Helper()

	var available int
	err := db.QueryRow(context.Background(), "SELECT available FROM parkings WHERE id = $1", parkingID).Scan(&available)
	require.NoError(t, err)
	return available
}

func UserBalanceCents(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(), "SELECT balance_cents FROM users WHERE id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func ReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
