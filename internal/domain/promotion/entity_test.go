//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"estaciona-api/internal/domain/promotion"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	march1  = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	march31 = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
)

func TestNewDiscount(t *testing.T) {
	testCases := []struct {
		name    string
		percent *float64
		flat    *money.Amount
		errIs   error
	}{
		{name: "none"},
		{name: "percent bounds", percent: ptr.Of(100.0)},
		{name: "zero percent", percent: ptr.Of(0.0)},
		{name: "percent above 100", percent: ptr.Of(100.5), errIs: promotion.ErrInvalidDiscountPercent},
		{name: "negative percent", percent: ptr.Of(-1.0), errIs: promotion.ErrInvalidDiscountPercent},
		{name: "flat", flat: ptr.Of(money.FromCents(200))},
		{name: "negative flat", flat: ptr.Of(money.FromCents(-1)), errIs: promotion.ErrInvalidDiscountAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := promotion.NewDiscount(tc.percent, tc.flat)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPromotion(t *testing.T) {
	parkingID := uuid.New()

	t.Run("single day window is allowed", func(t *testing.T) {
		p, err := promotion.NewPromotion(parkingID, " Happy hour ", nil, promotion.Discount{}, march1, march1, true, march1)
		require.NoError(t, err)
		assert.Equal(t, "Happy hour", p.Title())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := promotion.NewPromotion(parkingID, "", nil, promotion.Discount{}, march1, march31, true, march1)
		assert.ErrorIs(t, err, promotion.ErrInvalidTitle)
		_, err = promotion.NewPromotion(parkingID, "Promo", nil, promotion.Discount{}, march31, march1, true, march1)
		assert.ErrorIs(t, err, promotion.ErrInvalidWindow)
	})
}

func TestPromotion_IsCurrent(t *testing.T) {
	active := builder.NewPromotionBuilder().BuildDomain()
	inactive := builder.NewPromotionBuilder().With(func(p *builder.PromotionBuilder) { p.IsActive = false }).BuildDomain()

	assert.True(t, active.IsCurrent(march1.Add(-24*time.Hour)), "not started yet still counts")
	assert.True(t, active.IsCurrent(march31))
	assert.False(t, active.IsCurrent(march31.Add(time.Second)))
	assert.False(t, inactive.IsCurrent(march1))
}

type promotionChanges struct {
	Title           *string
	Description     *string
	DiscountPercent *float64
	FlatAmount      *money.Amount
	EndDate         *time.Time
	IsActive        *bool
}

func TestPromotion_Update(t *testing.T) {
	t.Run("deactivate with an explicit false", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, p.Update(promotionChanges{IsActive: ptr.Of(false)}))
		assert.False(t, p.IsActive())
		assert.Equal(t, "Weekend discount", p.Title())
	})

	t.Run("rejects invalid changes", func(t *testing.T) {
		early := march1.Add(-time.Hour)
		p := builder.NewPromotionBuilder().BuildDomain()
		assert.ErrorIs(t, p.Update(promotionChanges{EndDate: &early}), promotion.ErrInvalidWindow)
		assert.ErrorIs(t, p.Update(promotionChanges{DiscountPercent: ptr.Of(150.0)}), promotion.ErrInvalidDiscountPercent)
		assert.ErrorIs(t, p.Update(promotionChanges{Title: ptr.Of(" ")}), promotion.ErrInvalidTitle)
		assert.True(t, p.EndDate().Equal(march31))
	})

	t.Run("rejected changes leave the promotion untouched", func(t *testing.T) {
		early := march1.Add(-time.Hour)
		rejected := []struct {
			changes promotionChanges
			errIs   error
		}{
			{changes: promotionChanges{DiscountPercent: ptr.Of(150.0)}, errIs: promotion.ErrInvalidDiscountPercent},
			{changes: promotionChanges{FlatAmount: ptr.Of(money.FromCents(-1))}, errIs: promotion.ErrInvalidDiscountAmount},
			{changes: promotionChanges{Description: ptr.Of("changed"), EndDate: &early}, errIs: promotion.ErrInvalidWindow},
			{changes: promotionChanges{DiscountPercent: ptr.Of(5.0), Title: ptr.Of(" ")}, errIs: promotion.ErrInvalidTitle},
		}
		p := builder.NewPromotionBuilder().BuildDomain()
		before := p.Attributes()

		for _, r := range rejected {
			require.ErrorIs(t, p.Update(r.changes), r.errIs)
			if diff := cmp.Diff(before, p.Attributes()); diff != "" {
				t.Errorf("promotion changed after rejected update (-before +after):\n%s", diff)
			}
		}
	})
}
