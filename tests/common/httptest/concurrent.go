//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type Call struct {
	Method    string
	Path      string
	Body      any
	AuthToken string
}

// ServeConcurrently starts every call at once and returns the status codes
// in call order. Bodies are encoded up front so nothing fails inside the
// goroutines.
func ServeConcurrently(t *testing.T, router *gin.Engine, calls []Call) []int {
	t.Helper()

	bodies := make([][]byte, len(calls))
	for i, c := range calls {
		if c.Body == nil {
			continue
		}
		b, err := json.Marshal(c.Body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		bodies[i] = b
	}

	codes := make([]int, len(calls))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(c.Method, c.Path, bytes.NewReader(bodies[i]))
			if bodies[i] != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if c.AuthToken != "" {
				req.Header.Set("Authorization", "Bearer "+c.AuthToken)
			}
			<-start
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes[i] = w.Code
		}()
	}
	close(start)
	wg.Wait()
	return codes
}
