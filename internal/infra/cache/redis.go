package cache

import (
	"context"
	"time"

	"reservation-book/internal/pkg/config"
	"reservation-book/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings. The returned cleanup closes the client.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}

	return client, func() { _ = client.Close() }, nil
}
