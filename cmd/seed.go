package main

import (
	"log/slog"

	"reservation-book/cmd/bootstrap"
	"reservation-book/internal/infra/seed"
	"reservation-book/internal/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the dining room tables from the catalog when none exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg    config.Config
				seeder *seed.Seeder
				logger *slog.Logger
			)
			app := fx.New(bootstrap.Infra, fx.NopLogger, fx.Populate(&cfg, &seeder, &logger))
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = app.Stop(cmd.Context()) }()

			if file == "" {
				file = cfg.Seed.CatalogFile
			}
			catalog, err := seed.LoadCatalog(file)
			if err != nil {
				return err
			}
			created, err := seeder.Seed(cmd.Context(), catalog)
			if err != nil {
				return err
			}
			logger.Info("seed complete", "catalog", file, "tables_created", created)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "table catalog YAML (defaults to TABLE_CATALOG_FILE)")
	return cmd
}
