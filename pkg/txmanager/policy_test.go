package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errRetryable = errors.New("retryable")
	errFatal     = errors.New("fatal")
)

func isRetryable(err error) bool {
	return errors.Is(err, errRetryable)
}

func TestPolicyRetry_SucceedsAfterRetryableErrors(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Retry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errRetryable
		}
		return nil
	}, isRetryable)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicyRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := fastPolicy(5).Retry(context.Background(), func() error {
		calls++
		return errFatal
	}, isRetryable)

	require.ErrorIs(t, err, errFatal)
	assert.Equal(t, 1, calls)
}

func TestPolicyRetry_BoundedAttempts(t *testing.T) {
	calls := 0
	err := fastPolicy(2).Retry(context.Background(), func() error {
		calls++
		return errRetryable
	}, isRetryable)

	require.ErrorIs(t, err, errRetryable)
	assert.Equal(t, 2, calls)
}
