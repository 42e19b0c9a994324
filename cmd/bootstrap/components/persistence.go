package components

import (
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/infra/readstore"
	"reservation-book/internal/infra/seed"
	"reservation-book/internal/infra/uow"
	"reservation-book/internal/pkg/clock"
	"reservation-book/internal/usecase/queries"
	"reservation-book/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	clock.NewRealClock,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Table
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TableReadQueries)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		// Reservation; the cache module decides what the queries see
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		readstore.NewReservationReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the customer, reservation and notification repositories per transaction
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Table catalog seeding
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(seed.TableSeedQueries)),
		),
		seed.NewSeeder,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *dbq.Queries {
	return dbq.New()
}

func NewDBTX(pool *pgxpool.Pool) dbq.DBTX {
	return pool
}
