//go:build unit

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"estaciona-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScripter answers EvalSha with a canned script result.
type fakeScripter struct {
	redis.Scripter
	result []interface{}
	err    error
	keys   []string
	args   []interface{}
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.keys = keys
	f.args = args
	return redis.NewCmdResult(f.result, f.err)
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return f.EvalSha(ctx, "", keys, args...)
}

func newTestBucket(s redis.Scripter) *TokenBucket {
	b := NewLoginBucket(s, config.RateLimitConfig{
		LoginCapacity:      10,
		LoginRefillPerSec:  0.2,
		LoginKeyTTLSeconds: 600,
	})
	b.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return b
}

func TestTokenBucket_Allow(t *testing.T) {
	testCases := []struct {
		name     string
		result   []interface{}
		err      error
		expected Decision
		wantErr  bool
	}{
		{
			name:     "allowed with tokens left",
			result:   []interface{}{int64(1), int64(9), int64(0)},
			expected: Decision{Allowed: true, Remaining: 9},
		},
		{
			name:     "denied with retry hint",
			result:   []interface{}{int64(0), int64(0), int64(4500)},
			expected: Decision{Allowed: false, Remaining: 0, RetryAfter: 4500 * time.Millisecond},
		},
		{
			name:    "redis failure",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
		{
			name:    "malformed reply",
			result:  []interface{}{int64(1)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeScripter{result: tc.result, err: tc.err}
			b := newTestBucket(s)

			got, err := b.Allow(context.Background(), "10.0.0.1")

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, []string{"rl:login:10.0.0.1"}, s.keys)
			require.Len(t, s.args, 4)
			assert.Equal(t, int64(1_700_000_000_000), s.args[0])
			assert.Equal(t, 10, s.args[1])
			assert.Equal(t, "0.0002", s.args[2])
			assert.Equal(t, int64(600), s.args[3])
		})
	}
}

func TestTokenBucket_Capacity(t *testing.T) {
	assert.Equal(t, 10, newTestBucket(&fakeScripter{}).Capacity())
}
