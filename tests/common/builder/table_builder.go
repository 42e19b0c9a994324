//go:build unit || e2e

package builder

import (
	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/pgconv"
)

// Tables reconstructs one table per seat count, numbered from 1.
func Tables(seats ...int) []*table.Table {
	out := make([]*table.Table, len(seats))
	for i, s := range seats {
		out[i] = table.Reconstruct(int64(i+1), s, FixedNow)
	}
	return out
}

func TableRows(seats ...int) []dbq.Table {
	out := make([]dbq.Table, len(seats))
	for i, s := range seats {
		out[i] = dbq.Table{
			ID:        int64(i + 1),
			Seats:     int32(s),
			CreatedAt: pgconv.TimeToPgtype(FixedNow),
		}
	}
	return out
}
