//go:build unit

package parking_test

import (
	"testing"
	"time"

	"estaciona-api/internal/domain/parking"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewParking(t *testing.T) {
	loc := parking.Location{Lat: -12.12, Lng: -77.03}

	t.Run("available is clamped into [0, capacity]", func(t *testing.T) {
		testCases := []struct {
			name      string
			capacity  int
			available int
			want      int
		}{
			{name: "within range", capacity: 10, available: 4, want: 4},
			{name: "above capacity", capacity: 10, available: 15, want: 10},
			{name: "negative", capacity: 10, available: -2, want: 0},
			{name: "zero capacity", capacity: 0, available: 3, want: 0},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := parking.NewParking(nil, "Central", loc, money.FromCents(500), tc.capacity, tc.available, parking.Details{}, now)
				require.NoError(t, err)
				assert.Equal(t, tc.want, p.Available())
				assert.Equal(t, tc.available > 0 && tc.capacity > 0, p.HasAvailability())
			})
		}
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			title    string
			loc      parking.Location
			price    int64
			capacity int
			errIs    error
		}{
			{name: "blank name", title: "  ", loc: loc, price: 500, capacity: 1, errIs: parking.ErrInvalidName},
			{name: "negative capacity", title: "P", loc: loc, price: 500, capacity: -1, errIs: parking.ErrInvalidCapacity},
			{name: "capacity beyond a database integer", title: "P", loc: loc, price: 500, capacity: parking.MaxCapacity + 1, errIs: parking.ErrInvalidCapacity},
			{name: "largest capacity", title: "P", loc: loc, price: 500, capacity: parking.MaxCapacity},
			{name: "negative price", title: "P", loc: loc, price: -1, capacity: 1, errIs: parking.ErrInvalidPrice},
			{name: "latitude out of range", title: "P", loc: parking.Location{Lat: 91}, price: 500, capacity: 1, errIs: parking.ErrInvalidLocation},
			{name: "longitude out of range", title: "P", loc: parking.Location{Lng: -181}, price: 500, capacity: 1, errIs: parking.ErrInvalidLocation},
			{name: "free parking is allowed", title: "P", loc: loc, price: 0, capacity: 1},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := parking.NewParking(nil, tc.title, tc.loc, money.FromCents(tc.price), tc.capacity, tc.capacity, parking.Details{}, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

type parkingChanges struct {
	Name         *string
	PricePerHour *money.Amount
	Capacity     *int
	Available    *int
	District     *string
}

func TestParking_Update(t *testing.T) {
	t.Run("shrinking capacity clamps available", func(t *testing.T) {
		p := builder.NewParkingBuilder().WithCapacity(10, 8).BuildDomain()
		require.NoError(t, p.Update(parkingChanges{Capacity: ptr.Of(5)}))
		assert.Equal(t, 5, p.Capacity())
		assert.Equal(t, 5, p.Available())
	})

	t.Run("zero values provided explicitly are applied", func(t *testing.T) {
		p := builder.NewParkingBuilder().WithCapacity(10, 8).BuildDomain()
		require.NoError(t, p.Update(parkingChanges{Available: ptr.Of(0), PricePerHour: ptr.Of(money.FromCents(0))}))
		assert.Equal(t, 0, p.Available())
		assert.Equal(t, money.Amount(0), p.PricePerHour())
	})

	t.Run("keeps details that were not sent", func(t *testing.T) {
		p := builder.NewParkingBuilder().BuildDomain()
		require.NoError(t, p.Update(parkingChanges{Name: ptr.Of("Renamed")}))
		assert.Equal(t, "Renamed", p.Name())
		require.NotNil(t, p.Details().District)
		assert.Equal(t, "Miraflores", *p.Details().District)
	})

	t.Run("invalid change is rejected", func(t *testing.T) {
		p := builder.NewParkingBuilder().BuildDomain()
		assert.ErrorIs(t, p.Update(parkingChanges{Capacity: ptr.Of(-3)}), parking.ErrInvalidCapacity)
		assert.ErrorIs(t, p.Update(parkingChanges{Capacity: ptr.Of(4294967297)}), parking.ErrInvalidCapacity)
		assert.Equal(t, 10, p.Capacity())
	})
}

func TestBoundDelta(t *testing.T) {
	testCases := []struct {
		name  string
		delta int
		want  int64
	}{
		{name: "small negative", delta: -3, want: -3},
		{name: "zero", delta: 0, want: 0},
		{name: "largest positive", delta: parking.MaxCapacity, want: parking.MaxCapacity},
		{name: "past int32", delta: 4294967295, want: parking.MaxCapacity},
		{name: "past negative int32", delta: -4294967295, want: -parking.MaxCapacity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parking.BoundDelta(tc.delta))
		})
	}
}
