package shared

import (
	"encoding/json"
	"time"

	"reservation-book/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	JobKindEvent           = "event"
	TopicReservationBooked = "reservation.booked"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

// BookedEvent is the outbox payload written alongside every successful booking.
type BookedEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	DateTime      time.Time `json:"datetime"`
	PartySize     int       `json:"party_size"`
	TableID       int64     `json:"table_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	BookedAt      time.Time `json:"booked_at"`
}

func NewBookedEvent(res *reservation.Reservation) BookedEvent {
	contact := res.Contact()
	return BookedEvent{
		ReservationID: res.ID(),
		DateTime:      res.DateTime(),
		PartySize:     res.PartySize(),
		TableID:       res.TableID(),
		CustomerID:    res.CustomerID(),
		FirstName:     contact.FirstName,
		LastName:      contact.LastName,
		Phone:         contact.Phone,
		Email:         contact.Email,
		BookedAt:      res.CreatedAt(),
	}
}

func (e BookedEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
