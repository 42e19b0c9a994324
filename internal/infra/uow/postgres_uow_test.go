//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"reservation-book/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "wrapped deadlock", err: infra.WrapRepoErr("insert", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: "40001"}
	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 4 {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestLockTimeoutSetting(t *testing.T) {
	assert.Equal(t, "5000ms", lockTimeoutSetting(5*time.Second))
	assert.Equal(t, "250ms", lockTimeoutSetting(250*time.Millisecond))
	assert.Equal(t, "1ms", lockTimeoutSetting(time.Microsecond))
}
