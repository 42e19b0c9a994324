package seed

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"reservation-book/internal/domain/table"
	"reservation-book/internal/infra"
	"reservation-book/internal/infra/dbq"
	"reservation-book/internal/pkg/errs"
	"reservation-book/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type TableSeedQueries interface {
	CountTables(ctx context.Context, db dbq.DBTX) (int64, error)
	CreateTable(ctx context.Context, db dbq.DBTX, seats int32) (dbq.Table, error)
}

func LoadCatalog(path string) (table.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return table.Catalog{}, errs.Wrapf(err, "failed to read table catalog %s", path)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (table.Catalog, error) {
	var catalog table.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return table.Catalog{}, errs.Wrap(err, "failed to parse table catalog")
	}
	if _, err := catalog.Expand(); err != nil {
		return table.Catalog{}, err
	}
	return catalog, nil
}

type Seeder struct {
	uow     shared.UnitOfWork
	queries TableSeedQueries
	logger  *slog.Logger
}

func NewSeeder(uow shared.UnitOfWork, queries TableSeedQueries, logger *slog.Logger) *Seeder {
	return &Seeder{uow: uow, queries: queries, logger: logger}
}

// Seed creates the catalog's tables unless the dining room already has tables.
// It returns the number of tables created.
func (s *Seeder) Seed(ctx context.Context, catalog table.Catalog) (int, error) {
	capacities, err := catalog.Expand()
	if err != nil {
		return 0, err
	}

	var created int
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = 0
		existing, err := s.queries.CountTables(ctx, tx.DB())
		if err != nil {
			return infra.WrapRepoErr("failed to count tables", err)
		}
		if existing > 0 {
			s.logger.Info("tables already seeded", "count", existing)
			return nil
		}

		for _, seats := range capacities {
			if _, err := s.queries.CreateTable(ctx, tx.DB(), int32(seats)); err != nil { // #nosec G115 -- Expand bounds seats by table.SeatLimit
				return infra.WrapRepoErr("failed to create table", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		s.logger.Info("seeded tables", "count", created)
	}
	return created, nil
}
