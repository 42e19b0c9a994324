package readstore

import (
	"context"
	"time"

	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
	"reservation-book/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	ListUpcomingReservations(ctx context.Context, db dbq.DBTX, now pgtype.Timestamptz) ([]dbq.ListUpcomingReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      dbq.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db dbq.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindUpcoming(ctx context.Context, now time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListUpcomingReservations(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = rowToReservationView(row)
	}
	return views, nil
}

func rowToReservationView(row dbq.ListUpcomingReservationsRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         pgconv.UUIDFromPgtype(row.ID),
		DateTime:   pgconv.TimeFromPgtype(row.Datetime),
		PartySize:  int(row.PartySize),
		TableID:    row.TableID,
		TableSeats: int(row.TableSeats),
		CustomerID: pgconv.UUIDFromPgtype(row.CustomerID),
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Phone:      row.Phone,
		Email:      row.Email,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
