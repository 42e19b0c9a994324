package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	DateTime   time.Time `json:"datetime"`
	PartySize  int       `json:"party_size"`
	TableID    int64     `json:"table_id"`
	TableSeats int       `json:"table_seats"`
	CustomerID uuid.UUID `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

type TableView struct {
	ID        int64     `json:"id"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

type PartySizeChoice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
