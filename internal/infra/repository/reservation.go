package repository

import (
	"context"

	"reservation-book/internal/domain/reservation"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/converter"
	"reservation-book/internal/infra/dbq"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db dbq.DBTX, arg dbq.CreateReservationParams) (dbq.Reservation, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

// Create inserts res. A slot already taken on the same table surfaces as a KindDuplicateKey
// error on infra.ConstraintReservationSlot.
func (r *ReservationRepository) Create(ctx context.Context, tx dbq.DBTX, res *reservation.Reservation) error {
	if _, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}
