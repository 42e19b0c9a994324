package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (id, datetime, party_size, table_id, customer_id, created_at)
VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
RETURNING id, datetime, party_size, table_id, customer_id, created_at
`

type CreateReservationParams struct {
	ID         pgtype.UUID
	Datetime   pgtype.Timestamptz
	PartySize  int32
	TableID    int64
	CustomerID pgtype.UUID
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservation, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID, arg.Datetime, arg.PartySize, arg.TableID, arg.CustomerID, arg.CreatedAt)
	var r Reservation
	err := row.Scan(&r.ID, &r.Datetime, &r.PartySize, &r.TableID, &r.CustomerID, &r.CreatedAt)
	return r, err
}

const listUpcomingReservations = `-- name: ListUpcomingReservations :many
SELECT
  r.id,
  r.datetime,
  r.party_size,
  r.table_id,
  t.seats AS table_seats,
  r.customer_id,
  c.first_name,
  c.last_name,
  c.phone,
  c.email,
  r.created_at
FROM reservations r
JOIN tables t ON t.id = r.table_id
JOIN customers c ON c.id = r.customer_id
WHERE r.datetime > $1
ORDER BY r.datetime ASC, r.id ASC
`

type ListUpcomingReservationsRow struct {
	ID         pgtype.UUID
	Datetime   pgtype.Timestamptz
	PartySize  int32
	TableID    int64
	TableSeats int32
	CustomerID pgtype.UUID
	FirstName  string
	LastName   string
	Phone      string
	Email      string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) ListUpcomingReservations(ctx context.Context, db DBTX, now pgtype.Timestamptz) ([]ListUpcomingReservationsRow, error) {
	rows, err := db.Query(ctx, listUpcomingReservations, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ListUpcomingReservationsRow, error) {
		var i ListUpcomingReservationsRow
		err := row.Scan(
			&i.ID,
			&i.Datetime,
			&i.PartySize,
			&i.TableID,
			&i.TableSeats,
			&i.CustomerID,
			&i.FirstName,
			&i.LastName,
			&i.Phone,
			&i.Email,
			&i.CreatedAt,
		)
		return i, err
	})
}
