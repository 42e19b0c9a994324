package bootstrap

import (
	"context"
	"log/slog"

	"reservation-book/internal/infra/cache"
	"reservation-book/internal/infra/readstore"
	"reservation-book/internal/pkg/config"
	"reservation-book/internal/usecase/commands"
	"reservation-book/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewReservationListing,
	),
)

type ReservationListing struct {
	fx.Out

	Store       queries.ReservationReadStore
	Invalidator commands.ListingInvalidator
}

// NewReservationListing puts the redis cache in front of the upcoming-reservations read
// when REDIS_ENABLED is set. Bookings then invalidate it.
func NewReservationListing(lc fx.Lifecycle, cfg config.Config, store *readstore.ReservationReadStore, logger *slog.Logger) (ReservationListing, error) {
	if !cfg.Redis.Enabled {
		return ReservationListing{Store: store, Invalidator: commands.NopInvalidator{}}, nil
	}

	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return ReservationListing{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("reservation listing cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL.String())
	cached := cache.NewUpcomingReservations(store, client, cfg.Redis.CacheTTL, logger)
	return ReservationListing{Store: cached, Invalidator: cached}, nil
}
