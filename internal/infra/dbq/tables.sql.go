package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listTables = `-- name: ListTables :many
SELECT id, seats, created_at
FROM tables
ORDER BY seats ASC, id ASC
`

func (q *Queries) ListTables(ctx context.Context, db DBTX) ([]Table, error) {
	rows, err := db.Query(ctx, listTables)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTable)
}

const openTables = `-- name: OpenTables :many
SELECT t.id, t.seats, t.created_at
FROM tables t
WHERE t.seats >= $1
  AND NOT EXISTS (
    SELECT 1
    FROM reservations r
    WHERE r.table_id = t.id
      AND r.datetime = $2
  )
ORDER BY t.seats ASC, t.id ASC
`

type OpenTablesParams struct {
	PartySize int32
	Datetime  pgtype.Timestamptz
}

func (q *Queries) OpenTables(ctx context.Context, db DBTX, arg OpenTablesParams) ([]Table, error) {
	rows, err := db.Query(ctx, openTables, arg.PartySize, arg.Datetime)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTable)
}

const maxTableSeats = `-- name: MaxTableSeats :one
SELECT COALESCE(MAX(seats), 0)::int4 AS max_seats
FROM tables
`

func (q *Queries) MaxTableSeats(ctx context.Context, db DBTX) (int32, error) {
	var maxSeats int32
	err := db.QueryRow(ctx, maxTableSeats).Scan(&maxSeats)
	return maxSeats, err
}

const countTables = `-- name: CountTables :one
SELECT COUNT(*) FROM tables
`

func (q *Queries) CountTables(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countTables).Scan(&n)
	return n, err
}

const createTable = `-- name: CreateTable :one
INSERT INTO tables (seats)
VALUES ($1)
RETURNING id, seats, created_at
`

func (q *Queries) CreateTable(ctx context.Context, db DBTX, seats int32) (Table, error) {
	row := db.QueryRow(ctx, createTable, seats)
	var t Table
	err := row.Scan(&t.ID, &t.Seats, &t.CreatedAt)
	return t, err
}

func scanTable(row pgx.CollectableRow) (Table, error) {
	var t Table
	err := row.Scan(&t.ID, &t.Seats, &t.CreatedAt)
	return t, err
}
