package reservation

import (
	"time"
)

// SlotLayout renders a slot like "Wed, Aug 26, 7:00 PM".
const SlotLayout = "Mon, Jan 2, 3:04 PM"

// Slot is the instant a reservation starts. Two slots collide only when they are the same instant.
type Slot struct {
	at time.Time
}

func NewSlot(at time.Time) Slot {
	return Slot{at: at.UTC().Round(0)}
}

func (s Slot) Time() time.Time {
	return s.at
}

func (s Slot) IsZero() bool {
	return s.at.IsZero()
}

func (s Slot) Equal(other Slot) bool {
	return s.at.Equal(other.at)
}

func (s Slot) After(t time.Time) bool {
	return s.at.After(t)
}

// LockKey maps the slot to a stable int64 so bookings for one instant can be serialised.
func (s Slot) LockKey() int64 {
	return s.at.Unix()
}

func (s Slot) Format(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return s.at.In(loc).Format(SlotLayout)
}
