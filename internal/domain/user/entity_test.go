//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/pkg/money"
	"estaciona-api/internal/pkg/ptr"
	"estaciona-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	name, err := user.NewName("  Ana Torres ")
	require.NoError(t, err)
	email, err := user.NewEmail("Ana@Example.COM")
	require.NoError(t, err)

	u := user.NewUser(name, email, "hash", user.RoleClient, user.Profile{Plate: ptr.Of("ABC-123")}, now)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, user.Name("Ana Torres"), u.Name())
	assert.Equal(t, "ana@example.com", u.Email().Value())
	assert.Equal(t, money.Amount(0), u.Balance())
	assert.Equal(t, now, u.CreatedAt())
}

func TestValueObjects(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		testCases := []struct {
			input string
			errIs error
		}{
			{input: "valid@example.com"},
			{input: "first.last+tag@sub.example.pe"},
			{input: "", errIs: user.ErrInvalidEmail},
			{input: "no-at-sign", errIs: user.ErrInvalidEmail},
			{input: "a@b", errIs: user.ErrInvalidEmail},
		}
		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				_, err := user.NewEmail(tc.input)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})

	t.Run("name length boundaries", func(t *testing.T) {
		_, err := user.NewName(strings.Repeat("a", 120))
		assert.NoError(t, err)
		_, err = user.NewName(strings.Repeat("ñ", 120))
		assert.NoError(t, err, "runes are counted, not bytes")
		_, err = user.NewName(strings.Repeat("a", 121))
		assert.ErrorIs(t, err, user.ErrInvalidName)
		_, err = user.NewName("   ")
		assert.ErrorIs(t, err, user.ErrInvalidName)
	})

	t.Run("role ordering", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
		assert.Less(t, user.RoleClient.Level(), user.RoleOwner.Level())
		assert.Less(t, user.RoleOwner.Level(), user.RoleAdmin.Level())
		assert.Equal(t, 0, user.Role("ghost").Level())
	})
}

func TestUser_Debit(t *testing.T) {
	testCases := []struct {
		name        string
		balance     int64
		amount      int64
		wantBalance int64
		errIs       error
	}{
		{name: "debits within balance", balance: 5000, amount: 1000, wantBalance: 4000},
		{name: "debits the exact balance", balance: 1000, amount: 1000, wantBalance: 0},
		{name: "zero amount is a no-op", balance: 1000, amount: 0, wantBalance: 1000},
		{name: "insufficient balance", balance: 999, amount: 1000, wantBalance: 999, errIs: user.ErrInsufficientBalance},
		{name: "negative amount", balance: 1000, amount: -1, wantBalance: 1000, errIs: user.ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := builder.NewUserBuilder().WithBalance(tc.balance).BuildDomain()
			err := u.Debit(money.FromCents(tc.amount))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, money.FromCents(tc.wantBalance), u.Balance())
		})
	}
}

type userChanges struct {
	Name    *string
	Email   *string
	Role    *string
	Balance *money.Amount
	Plate   *string
}

func TestUser_Update(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildDomain()
		before := u.Attributes()

		require.NoError(t, u.Update(userChanges{Role: ptr.Of("owner"), Balance: ptr.Of(money.FromCents(0))}))

		want := before
		want.Role = "owner"
		want.Balance = 0
		if diff := cmp.Diff(want, u.Attributes()); diff != "" {
			t.Errorf("Attributes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("normalizes email", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, u.Update(userChanges{Email: ptr.Of("NEW@Example.com")}))
		assert.Equal(t, "new@example.com", u.Email().Value())
	})

	t.Run("rejects invalid values and leaves the user untouched", func(t *testing.T) {
		testCases := []struct {
			name    string
			changes userChanges
			errIs   error
		}{
			{name: "role", changes: userChanges{Role: ptr.Of("root")}, errIs: user.ErrInvalidRole},
			{name: "email", changes: userChanges{Email: ptr.Of("broken")}, errIs: user.ErrInvalidEmail},
			{name: "name", changes: userChanges{Name: ptr.Of("")}, errIs: user.ErrInvalidName},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				u := builder.NewUserBuilder().BuildDomain()
				before := u.Attributes()
				assert.ErrorIs(t, u.Update(tc.changes), tc.errIs)
				assert.Equal(t, before, u.Attributes())
			})
		}
	})
}
