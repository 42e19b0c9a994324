package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"reservation-book/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Both keys share a hash tag so MGET and WATCH stay on one cluster slot.
const (
	UpcomingKey   = "reservations:{upcoming}"
	GenerationKey = "reservations:{upcoming}:generation"
)

// UpcomingReservations caches the upcoming listing in redis in front of a read store.
// Cached entries are filtered against the caller's now on every read, so a stale entry
// never shows a reservation that has already started. Redis failures fall through to the store.
//
// Every entry carries the generation read before its store query. Invalidate bumps the
// generation, so a fill that raced an invalidation is never served.
type UpcomingReservations struct {
	store  queries.ReservationReadStore
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

type upcomingEntry struct {
	Generation int64                      `json:"generation"`
	Views      []*queries.ReservationView `json:"views"`
}

func NewUpcomingReservations(store queries.ReservationReadStore, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *UpcomingReservations {
	return &UpcomingReservations{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *UpcomingReservations) FindUpcoming(ctx context.Context, now time.Time) ([]*queries.ReservationView, error) {
	generation, views, ok := c.load(ctx)
	if ok {
		return upcomingAfter(views, now), nil
	}

	views, err := c.store.FindUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	if generation >= 0 {
		c.save(ctx, generation, views)
	}
	return views, nil
}

// Invalidate advances the generation and drops the cached listing.
func (c *UpcomingReservations) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, UpcomingKey)
		return nil
	})
	return err
}

// load returns the current generation and, when the entry belongs to it, the cached views.
// A negative generation means redis could not be read.
func (c *UpcomingReservations) load(ctx context.Context) (int64, []*queries.ReservationView, bool) {
	values, err := c.client.MGet(ctx, GenerationKey, UpcomingKey).Result()
	if err != nil {
		c.logger.Warn("upcoming reservations cache read failed", "error", err.Error())
		return -1, nil, false
	}

	generation, err := parseGeneration(values[0])
	if err != nil {
		c.logger.Warn("discarding unreadable upcoming reservations generation", "error", err.Error())
		return -1, nil, false
	}

	raw, ok := values[1].(string)
	if !ok {
		return generation, nil, false
	}
	var entry upcomingEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.logger.Warn("discarding undecodable upcoming reservations cache entry", "error", err.Error())
		return generation, nil, false
	}
	if entry.Generation != generation {
		return generation, nil, false
	}
	return generation, entry.Views, true
}

// save stores views only while the generation is still the one read before the store query.
func (c *UpcomingReservations) save(ctx context.Context, generation int64, views []*queries.ReservationView) {
	data, err := json.Marshal(upcomingEntry{Generation: generation, Views: views})
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, UpcomingKey, data, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)
	if err != nil && !errors.Is(err, redis.TxFailedErr) {
		c.logger.Warn("upcoming reservations cache write failed", "error", err.Error())
	}
}

func parseGeneration(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, errors.New("unexpected generation type")
	}
	return strconv.ParseInt(s, 10, 64)
}

func upcomingAfter(views []*queries.ReservationView, now time.Time) []*queries.ReservationView {
	out := make([]*queries.ReservationView, 0, len(views))
	for _, v := range views {
		if v.DateTime.After(now) {
			out = append(out, v)
		}
	}
	return out
}
