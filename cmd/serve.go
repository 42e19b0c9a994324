package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"reservation-book/cmd/bootstrap"
	"reservation-book/internal/pkg/config"
	"reservation-book/migrations"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCommand() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification dispatcher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := []fx.Option{
				bootstrap.Module,
				fx.Provide(gin.New),
			}
			if migrate {
				options = append(options, fx.Invoke(migrateOnStart))
			}
			options = append(options, fx.Invoke(startServer))

			app := fx.New(options...)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("failed to stop application", "error", err)
			}
			slog.Info("application stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateOnStart(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := migrations.Apply(ctx, pool, logger)
			return err
		},
	})
}

// @title           reservation-book
// @version         1.0
// @description     Books the smallest open table that seats a party at the requested time.

// @BasePath  /api
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", server.Addr, "mode", gin.Mode())
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}
