package table

import (
	"errors"
	"math"
	"time"
)

// SeatLimit is the largest capacity the store's integer columns can hold.
const SeatLimit = math.MaxInt32

var ErrInvalidSeats = errors.New("table seat count is out of range")

type Table struct {
	id        int64
	seats     int
	createdAt time.Time
}

func New(seats int) (*Table, error) {
	if seats < 1 || seats > SeatLimit {
		return nil, ErrInvalidSeats
	}
	return &Table{seats: seats}, nil
}

func Reconstruct(id int64, seats int, createdAt time.Time) *Table {
	return &Table{
		id:        id,
		seats:     seats,
		createdAt: createdAt,
	}
}

func (t *Table) ID() int64            { return t.id }
func (t *Table) Seats() int           { return t.seats }
func (t *Table) CreatedAt() time.Time { return t.createdAt }

// CanSeat ignores existing reservations; availability is decided by the store.
func (t *Table) CanSeat(partySize int) bool {
	return partySize >= 1 && partySize <= t.seats
}

// MaxSeats returns the largest capacity in tables, or 0 when there are none.
func MaxSeats(tables []*Table) int {
	maxSeats := 0
	for _, t := range tables {
		if t.seats > maxSeats {
			maxSeats = t.seats
		}
	}
	return maxSeats
}
