package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))

	for _, code := range []string{codeSerializationFailure, codeDeadlockDetected} {
		err := mapErr(errors.Annotate(&pgconn.PgError{Code: code, Message: "conflict"}, "commit"))
		assert.ErrorIs(t, err, domain.ErrConcurrency, code)
		assert.True(t, domain.IsRetryable(err))
	}

	closed := mapErr(errors.Annotate(domain.ErrCampaignClosed, "campaign 3"))
	assert.ErrorIs(t, closed, domain.ErrCampaignClosed)

	verr := &domain.ValidationError{}
	verr.Add("amount", "bad")
	var got *domain.ValidationError
	require.True(t, errors.As(mapErr(verr), &got))
	assert.Equal(t, verr.Fields, got.Fields)

	other := mapErr(&pgconn.PgError{Code: "23505"})
	assert.False(t, domain.IsRetryable(other))
	assert.Contains(t, other.Error(), "postgres")
}

// newTestRepository connects to the database named by
// CROWDFUND_TEST_PSQL_URL, migrates it and empties the tables.
func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	raw := os.Getenv("CROWDFUND_TEST_PSQL_URL")
	if raw == "" {
		t.Skip("CROWDFUND_TEST_PSQL_URL not set")
	}
	addr, err := url.Parse(raw)
	require.NoError(t, err)

	_, err = db.Migrate(raw)
	require.NoError(t, err)

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	truncate(t, pool)
	return NewCampaignRepository(pool)
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE campaign_contributions, campaigns RESTART IDENTITY`)
	require.NoError(t, err)
}

func draft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Creator:      "alice",
		Name:         "Bridge repair",
		Description:  "Fix the footbridge over the mill stream.",
		GoalAmount:   1000,
		DurationDays: 10,
	}
}

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 4, 3, 2, 1, 123456789, time.UTC)

	c, err := repo.Create(ctx, draft(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = repo.Contribute(ctx, c.ID, "bob", 300, now)
	require.NoError(t, err)
	updated, err := repo.Contribute(ctx, c.ID, "bob", 200, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated.CurrentAmount)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Deadline.Equal(now.Add(10*domain.Day)), "deadline keeps nanoseconds")
	assert.Equal(t, map[domain.Principal]int64{"bob": 500}, got.Contributors)
	assert.Equal(t, got.LedgerTotal(), got.CurrentAmount)

	amount, err := repo.GetContribution(ctx, c.ID, "carol")
	require.NoError(t, err)
	assert.Zero(t, amount)

	_, err = repo.GetContribution(ctx, 99, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Contribute(ctx, c.ID, "bob", 1, now.Add(10*domain.Day))
	assert.ErrorIs(t, err, domain.ErrCampaignClosed)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(500), all[0].CurrentAmount)
}

// TestCampaignRepositoryConcurrentContributions checks that writers racing on
// one campaign wait for the row lock and all commit.
func TestCampaignRepositoryConcurrentContributions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	c, err := repo.Create(ctx, draft(), now)
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			contributor := domain.Principal("bob")
			if i%2 == 1 {
				contributor = "carol"
			}
			_, err := repo.Contribute(ctx, c.ID, contributor, 10, now)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(writers*10), got.CurrentAmount)
	assert.Equal(t, map[domain.Principal]int64{"bob": 100, "carol": 100}, got.Contributors)
	assert.Equal(t, got.LedgerTotal(), got.CurrentAmount)
}
