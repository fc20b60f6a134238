package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/juju/errors"
	goredis "github.com/redis/go-redis/v9"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
)

// EventPublisher implements port.EventPublisher on a Redis pub/sub channel.
// Events are JSON encoded LedgerEvent values.
type EventPublisher struct {
	rdb     *goredis.Client
	channel string
	logger  *slog.Logger
}

// NewEventPublisher connects to Redis and checks the connection with a ping.
func NewEventPublisher(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (*EventPublisher, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Annotate(err, "redis ping")
	}
	return &EventPublisher{
		rdb:     rdb,
		channel: cfg.Channel,
		logger:  logger.With(slog.String("component", "redis_events")),
	}, nil
}

// Publish sends event to the configured channel.
func (p *EventPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(p.rdb.Publish(ctx, p.channel, raw).Err())
}

// Subscribe delivers every event published on the channel to fn until ctx
// is done. Payloads that do not decode are logged and skipped.
func (p *EventPublisher) Subscribe(ctx context.Context, fn func(domain.LedgerEvent)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	// wait for the subscription to be confirmed
	if _, err := sub.Receive(ctx); err != nil {
		return errors.Annotate(err, "redis subscribe")
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var event domain.LedgerEvent
			if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
				p.logger.Warn("bad ledger event payload", slog.Any("error", err))
				continue
			}
			fn(event)
		}
	}
}

// Close releases the connection pool.
func (p *EventPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
