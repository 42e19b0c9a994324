package readstore

import (
	"context"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/converter"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
	"reservation-book/internal/usecase/queries"
)

type TableReadQueries interface {
	ListTables(ctx context.Context, db dbq.DBTX) ([]dbq.Table, error)
	OpenTables(ctx context.Context, db dbq.DBTX, arg dbq.OpenTablesParams) ([]dbq.Table, error)
	MaxTableSeats(ctx context.Context, db dbq.DBTX) (int32, error)
}

type TableReadStore struct {
	queries TableReadQueries
	db      dbq.DBTX
}

func NewTableReadStore(queries TableReadQueries, db dbq.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

// OpenTables returns every table seating at least partySize with no reservation at exactly slot,
// smallest first and then by id. It runs on db so callers can read inside their own transaction.
// A party larger than any storable capacity matches nothing.
func (r *TableReadStore) OpenTables(ctx context.Context, db dbq.DBTX, partySize int, slot reservation.Slot) ([]*table.Table, error) {
	if partySize > table.SeatLimit {
		return []*table.Table{}, nil
	}
	rows, err := r.queries.OpenTables(ctx, db, dbq.OpenTablesParams{
		PartySize: int32(partySize), // #nosec G115 -- bounded by table.SeatLimit above
		Datetime:  pgconv.TimeToPgtype(slot.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query open tables", err)
	}
	return converter.TablesFromRows(rows), nil
}

func (r *TableReadStore) List(ctx context.Context) ([]*queries.TableView, error) {
	rows, err := r.queries.ListTables(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}

	views := make([]*queries.TableView, len(rows))
	for i, row := range rows {
		views[i] = &queries.TableView{
			ID:        row.ID,
			Seats:     int(row.Seats),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *TableReadStore) MaxSeats(ctx context.Context) (int, error) {
	maxSeats, err := r.queries.MaxTableSeats(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read max table size", err)
	}
	return int(maxSeats), nil
}
