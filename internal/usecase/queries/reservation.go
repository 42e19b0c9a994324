package queries

import (
	"context"
	"time"

	"reservation-book/internal/pkg/clock"
)

type ReservationQueries interface {
	// Upcoming lists reservations strictly after now, earliest first.
	Upcoming(ctx context.Context) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindUpcoming(ctx context.Context, now time.Time) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) Upcoming(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.store.FindUpcoming(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*ReservationView{}
	}
	return views, nil
}
