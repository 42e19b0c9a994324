//go:build unit

package repository_test

import (
	"context"
	"testing"

	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/infra/repository"
	"reservation-book/internal/pkg/pgconv"
	"reservation-book/tests/common/builder"
	repositorymock "reservation-book/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		queryErr       error
		wantErr        bool
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name: "success: reservation inserted",
		},
		{
			name: "error: table already booked at that instant",
			queryErr: &pgconn.PgError{
				Code:           "23505",
				ConstraintName: infra.ConstraintReservationSlot,
			},
			wantErr:        true,
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintReservationSlot,
		},
		{
			name:     "error: capacity trigger rejects the party",
			queryErr: &pgconn.PgError{Code: "23514", Message: "party does not fit at table"},
			wantErr:  true,
			wantKind: infra.KindCheckViolated,
		},
		{
			name:     "error: table no longer exists",
			queryErr: &pgconn.PgError{Code: "23503", ConstraintName: "reservations_table_id_fkey"},
			wantErr:  true,
			wantKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)
			res := builder.NewReservationBuilder().BuildDomain(table.Reconstruct(3, 4, builder.FixedNow))

			mockQueries.EXPECT().CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ dbq.DBTX, arg dbq.CreateReservationParams) (dbq.Reservation, error) {
					assert.Equal(t, res.ID(), pgconv.UUIDFromPgtype(arg.ID))
					assert.True(t, res.DateTime().Equal(arg.Datetime.Time))
					assert.Equal(t, int32(res.PartySize()), arg.PartySize)
					assert.Equal(t, int64(3), arg.TableID)
					assert.Equal(t, res.CustomerID(), pgconv.UUIDFromPgtype(arg.CustomerID))
					return dbq.Reservation{}, tc.queryErr
				})

			err := repo.Create(ctx, mockDB, res)

			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.wantKind), "expected kind [%v] but got (%v)", tc.wantKind, err)
			if tc.wantConstraint != "" {
				assert.True(t, infra.IsConstraint(err, tc.wantConstraint))
			}
		})
	}
}
