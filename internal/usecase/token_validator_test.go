//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/pkg/jwt"
	"estaciona-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_ValidateToken(t *testing.T) {
	service := jwt.NewService("validator-secret", time.Hour)
	validator := usecase.NewTokenValidator(service)
	userID := uuid.New()

	t.Run("valid token yields principal", func(t *testing.T) {
		token, err := service.GenerateToken(userID, user.RoleOwner)
		require.NoError(t, err)

		p, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, user.RoleOwner, p.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("validator-secret", -time.Minute)
		token, err := expired.GenerateToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.True(t, errs.Is(err, usecase.ErrTokenExpired))
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour)
		token, err := other.GenerateToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.True(t, errs.Is(err, usecase.ErrTokenInvalid))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-jwt")
		assert.True(t, errs.Is(err, usecase.ErrTokenInvalid))
	})
}

func TestPrincipal_HasRoleAtLeast(t *testing.T) {
	testCases := []struct {
		role     user.Role
		min      user.Role
		expected bool
	}{
		{user.RoleClient, user.RoleClient, true},
		{user.RoleClient, user.RoleOwner, false},
		{user.RoleOwner, user.RoleOwner, true},
		{user.RoleAdmin, user.RoleOwner, true},
		{user.Role("ghost"), user.RoleClient, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.role)+">="+string(tc.min), func(t *testing.T) {
			p := usecase.Principal{UserID: uuid.New(), Role: tc.role}
			assert.Equal(t, tc.expected, p.HasRoleAtLeast(tc.min))
		})
	}
}
