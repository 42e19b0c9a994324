//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedTables inserts one table per capacity and returns the ids in the same order.
func SeedTables(t *testing.T, db DBLike, seats ...int) []int64 {
	t.Helper()

	ctx := context.Background()
	ids := make([]int64, 0, len(seats))
	for _, n := range seats {
		var id int64
		err := db.QueryRow(ctx, "INSERT INTO tables (seats) VALUES ($1) RETURNING id", n).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func CreateTestCustomer(t *testing.T, db DBLike, firstName, lastName, phone, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO customers (first_name, last_name, phone, email) VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT customers_contact_key DO UPDATE SET first_name = EXCLUDED.first_name
		RETURNING id`,
		firstName, lastName, phone, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation writes a reservation directly, bypassing the booking rules.
// Useful for reservations in the past.
func CreateTestReservation(t *testing.T, db DBLike, tableID int64, customerID uuid.UUID, at time.Time, partySize int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (datetime, party_size, table_id, customer_id) VALUES ($1, $2, $3, $4)
		RETURNING id`,
		at, partySize, tableID, customerID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty dining room
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
