package redis

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
)

func TestPublishSubscribe(t *testing.T) {
	addr := os.Getenv("CROWDFUND_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CROWDFUND_TEST_REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := configs.Redis{Addr: addr, Channel: "crowdfund.test." + uuid.NewString()}
	pub, err := NewEventPublisher(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	got := make(chan domain.LedgerEvent, 1)
	subCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- pub.Subscribe(subCtx, func(e domain.LedgerEvent) { got <- e })
	}()

	want := domain.LedgerEvent{
		ID:            uuid.NewString(),
		Type:          domain.EventContributionApplied,
		CampaignID:    7,
		Principal:     "bob",
		Amount:        25,
		CurrentAmount: 125,
		GoalAmount:    1000,
		OccurredAt:    time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC),
	}
	// the subscriber may not be registered yet; publish until it is
	require.Eventually(t, func() bool {
		if !assert.NoError(t, pub.Publish(ctx, want)) {
			return false
		}
		select {
		case e := <-got:
			assert.Equal(t, want.ID, e.ID)
			assert.Equal(t, want.Amount, e.Amount)
			assert.True(t, want.OccurredAt.Equal(e.OccurredAt))
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	stop()
	assert.NoError(t, <-done)
}

func TestNewEventPublisherUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := NewEventPublisher(ctx, configs.Redis{Addr: "127.0.0.1:1"}, slog.Default())
	assert.Error(t, err)
}
