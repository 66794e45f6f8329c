//go:build unit

package payment_test

import (
	"testing"
	"time"

	"estaciona-api/internal/domain/payment"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewPayment(t *testing.T) {
	reservationID := uuid.New()

	t.Run("defaults method and status", func(t *testing.T) {
		p, err := payment.NewPayment(reservationID, money.FromCents(1000), "", "", nil, now)
		require.NoError(t, err)
		assert.Equal(t, payment.MethodQR, p.Method())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.False(t, p.SettlesReservation())
	})

	t.Run("paid payment settles its reservation", func(t *testing.T) {
		p, err := payment.NewPayment(reservationID, money.FromCents(1000), "card", payment.StatusPaid, nil, now)
		require.NoError(t, err)
		assert.True(t, p.SettlesReservation())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := payment.NewPayment(reservationID, money.FromCents(-1), "", "", nil, now)
		assert.ErrorIs(t, err, payment.ErrNegativeAmount)
		_, err = payment.NewPayment(reservationID, money.FromCents(1), "", "refunded", nil, now)
		assert.ErrorIs(t, err, payment.ErrInvalidStatus)
	})
}

func TestNewSettlement(t *testing.T) {
	reservationID := uuid.New()

	testCases := []struct {
		name       string
		method     payment.Method
		ref        *string
		wantMethod payment.Method
		wantRef    string
	}{
		{name: "default method and reference", wantMethod: payment.MethodQRApp, wantRef: "QR-" + reservationID.String()},
		{name: "wallet always uses the wallet reference", method: payment.MethodWallet, ref: ptr.Of("ignored"), wantMethod: payment.MethodWallet, wantRef: payment.WalletProviderRef},
		{name: "external reference is kept", method: "yape", ref: ptr.Of("OP-991"), wantMethod: "yape", wantRef: "OP-991"},
		{name: "blank reference falls back", method: "yape", ref: ptr.Of(""), wantMethod: "yape", wantRef: "QR-" + reservationID.String()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := payment.NewSettlement(reservationID, money.FromCents(1000), tc.method, tc.ref, now)
			require.NoError(t, err)
			assert.Equal(t, payment.StatusPaid, p.Status())
			assert.Equal(t, tc.wantMethod, p.Method())
			require.NotNil(t, p.ProviderRef())
			assert.Equal(t, tc.wantRef, *p.ProviderRef())
		})
	}
}

type paymentChanges struct {
	Amount *money.Amount
	Status *string
}

func TestPayment_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		p := builder.NewPaymentBuilder().BuildDomain()
		require.NoError(t, p.Update(paymentChanges{Status: ptr.Of("paid")}))
		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, money.FromCents(1000), p.Amount())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		p := builder.NewPaymentBuilder().BuildDomain()
		assert.ErrorIs(t, p.Update(paymentChanges{Status: ptr.Of("void")}), payment.ErrInvalidStatus)
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		p := builder.NewPaymentBuilder().BuildDomain()
		assert.ErrorIs(t, p.Update(paymentChanges{Amount: ptr.Of(money.FromCents(-100))}), payment.ErrNegativeAmount)
	})
}
