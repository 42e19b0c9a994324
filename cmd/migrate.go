package main

import (
	"log/slog"

	"reservation-book/cmd/bootstrap"
	"reservation-book/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pool   *pgxpool.Pool
				logger *slog.Logger
			)
			app := fx.New(bootstrap.Infra, fx.NopLogger, fx.Populate(&pool, &logger))
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() { _ = app.Stop(cmd.Context()) }()

			applied, err := migrations.Apply(cmd.Context(), pool, logger)
			if err != nil {
				return err
			}
			logger.Info("migrations complete", "applied", applied)
			return nil
		},
	}
}
