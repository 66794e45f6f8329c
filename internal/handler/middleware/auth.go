package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"estaciona-api/internal/domain/user"
	"estaciona-api/internal/handler/httperr"
	"estaciona-api/internal/pkg/cookie"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the token from the Authorization header or, failing
// that, from the access_token cookie.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Missing Authorization Header")
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid token"
			if errs.Is(err, usecase.ErrTokenExpired) {
				msg = "Token has expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		c.Set(ctxUserIDKey, principal.UserID)
		c.Set(ctxUserRoleKey, principal.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": principal.UserID.String(),
			"role":    principal.Role.String(),
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, okID := GetUserID(c)
		role, okRole := GetUserRole(c)
		if !okID || !okRole {
			// Unexpected error: should be used after RequireAuth()
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		principal := usecase.Principal{UserID: userID, Role: role}
		if !principal.HasRoleAtLeast(minRole) {
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetAccessToken(c)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
