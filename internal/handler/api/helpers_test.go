//go:build unit

package api_test

import (
	"io"
	nethttptest "net/http/httptest"

	"estaciona-api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var principalID = uuid.MustParse("5b7e0f38-7c53-4a57-9a4a-1f0f5ad2c001")

// withPrincipal stands in for the auth middleware.
func withPrincipal(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", principalID)
		c.Set("user_role", role)
		c.Next()
	}
}

func performRaw(router *gin.Engine, method, path string, body io.Reader) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
