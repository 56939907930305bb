package auth

import (
	"context"
	"testing"
	"time"

	"fitstack.dev/api/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	testutils.SetupTestConfig(t)
	mr := testutils.SetupTestRedis(t)
	defer mr.Close()

	t.Run("MaxAttempts", func(t *testing.T) {
		limiter := NewRateLimiter()
		ctx := context.Background()
		email := "maxattempts@example.com"
		ip := "192.168.1.1"

		for i := 0; i < 5; i++ {
			err := limiter.CheckRateLimit(ctx, email, ip)
			assert.NoError(t, err, "Attempt %d should be allowed", i+1)

			limiter.RecordFailedAttempt(ctx, email, ip)
		}

		err := limiter.CheckRateLimit(ctx, email, ip)
		assert.ErrorIs(t, err, ErrAccountLocked, "Account should be locked after max attempts")
	})

	t.Run("WindowExpiry", func(t *testing.T) {
		limiter := NewRateLimiter()
		ctx := context.Background()
		email := "windowexpiry@example.com"
		ip := "192.168.1.2"

		limiter.RecordFailedAttempt(ctx, email, ip)
		limiter.RecordFailedAttempt(ctx, email, ip)

		err := limiter.CheckRateLimit(ctx, email, ip)
		assert.NoError(t, err, "Should be allowed, not enough attempts yet")

		limiter.RecordFailedAttempt(ctx, email, ip)
		limiter.RecordFailedAttempt(ctx, email, ip)
		limiter.RecordFailedAttempt(ctx, email, ip)

		err = limiter.CheckRateLimit(ctx, email, ip)
		assert.Error(t, err)

		// Both the attempt window and the lockout must lapse
		mr.FastForward(45 * time.Minute)

		err = limiter.CheckRateLimit(ctx, email, ip)
		assert.NoError(t, err, "Should be allowed after window expiry")
	})

	t.Run("ResetAfterSuccess", func(t *testing.T) {
		limiter := NewRateLimiter()
		ctx := context.Background()
		email := "reset@example.com"
		ip := "192.168.1.3"

		for i := 0; i < 4; i++ {
			limiter.RecordFailedAttempt(ctx, email, ip)
		}

		err := limiter.ResetAttempts(ctx, email, ip)
		require.NoError(t, err)

		err = limiter.CheckRateLimit(ctx, email, ip)
		assert.NoError(t, err, "Should be allowed after successful login")
	})

	t.Run("LockoutPersistsAcrossIPs", func(t *testing.T) {
		limiter := NewRateLimiter()
		ctx := context.Background()
		email := "lockout@example.com"

		for i := 0; i < 5; i++ {
			limiter.RecordFailedAttempt(ctx, email, "10.0.0.1")
		}

		err := limiter.CheckRateLimit(ctx, email, "10.0.0.1")
		assert.ErrorIs(t, err, ErrAccountLocked)

		// The account lock is keyed on the email alone
		err = limiter.CheckRateLimit(ctx, email, "10.0.0.2")
		assert.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("IPRateLimit", func(t *testing.T) {
		limiter := NewRateLimiter()
		ctx := context.Background()
		ip := "172.16.0.1"

		for i := 0; i < 3; i++ {
			err := limiter.CheckIPRateLimit(ctx, ip, 3, time.Minute)
			assert.NoError(t, err, "Request %d should be allowed", i+1)
		}

		err := limiter.CheckIPRateLimit(ctx, ip, 3, time.Minute)
		assert.ErrorIs(t, err, ErrRateLimitExceeded)

		mr.FastForward(2 * time.Minute)

		err = limiter.CheckIPRateLimit(ctx, ip, 3, time.Minute)
		assert.NoError(t, err, "Should be allowed after window expiry")
	})
}
