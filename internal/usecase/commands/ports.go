package commands

import (
	"context"
	"time"

	"reservation-book/internal/domain/reservation"
)

// OutcomeRecorder receives booking telemetry.
type OutcomeRecorder interface {
	ObserveOutcome(kind reservation.Kind, elapsed time.Duration)
	ObserveFailure(elapsed time.Duration)
	ConflictRetried()
}

// ListingInvalidator drops any cached copy of the upcoming reservations.
type ListingInvalidator interface {
	Invalidate(ctx context.Context) error
}

type NopRecorder struct{}

func (NopRecorder) ObserveOutcome(reservation.Kind, time.Duration) {}
func (NopRecorder) ObserveFailure(time.Duration)                   {}
func (NopRecorder) ConflictRetried()                               {}

type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context) error { return nil }
