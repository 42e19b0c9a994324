package dbq

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Table struct {
	ID        int64
	Seats     int32
	CreatedAt pgtype.Timestamptz
}

type Customer struct {
	ID        pgtype.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	CreatedAt pgtype.Timestamptz
}

type Reservation struct {
	ID         pgtype.UUID
	Datetime   pgtype.Timestamptz
	PartySize  int32
	TableID    int64
	CustomerID pgtype.UUID
	CreatedAt  pgtype.Timestamptz
}

type NotificationJob struct {
	ID        pgtype.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
