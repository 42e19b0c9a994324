package converter

import (
	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
)

func ReservationToParams(res *reservation.Reservation) dbq.CreateReservationParams {
	return dbq.CreateReservationParams{
		ID:         pgconv.UUIDToPgtype(res.ID()),
		Datetime:   pgconv.TimeToPgtype(res.DateTime()),
		PartySize:  int32(res.PartySize()), // #nosec G115 -- party size is validated >= 1 and bounded by table seats
		TableID:    res.TableID(),
		CustomerID: pgconv.UUIDToPgtype(res.CustomerID()),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func TableFromRow(row dbq.Table) *table.Table {
	return table.Reconstruct(row.ID, int(row.Seats), pgconv.TimeFromPgtype(row.CreatedAt))
}

func TablesFromRows(rows []dbq.Table) []*table.Table {
	tables := make([]*table.Table, len(rows))
	for i, row := range rows {
		tables[i] = TableFromRow(row)
	}
	return tables
}
