package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.UTC)

func validDraft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Creator:      "creator",
		Name:         "Community garden",
		Description:  "Raised beds and tools for the neighbourhood.",
		GoalAmount:   1000,
		DurationDays: 30,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)
	second, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(0), first.CurrentAmount)
	assert.True(t, first.IsActive)
	assert.Empty(t, first.Contributors)
	// nanosecond precision survives
	assert.True(t, first.Deadline.Equal(t0.Add(30*domain.Day)))
}

func TestCreateDurationBoundaries(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	for _, days := range []int{0, 91} {
		d := validDraft()
		d.DurationDays = days
		_, err := repo.Create(ctx, d, t0)
		require.ErrorIs(t, err, domain.ErrValidation, "days=%d", days)
	}
	for _, days := range []int{1, 90} {
		d := validDraft()
		d.DurationDays = days
		_, err := repo.Create(ctx, d, t0)
		require.NoError(t, err, "days=%d", days)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "failed creations must not allocate campaigns")
}

func TestContributeScenario(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	c, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)

	c, err = repo.Contribute(ctx, c.ID, "alice", 400, t0.Add(domain.Day))
	require.NoError(t, err)
	assert.Equal(t, int64(400), c.CurrentAmount)
	assert.Equal(t, map[domain.Principal]int64{"alice": 400}, c.Contributors)

	c, err = repo.Contribute(ctx, c.ID, "bob", 600, t0.Add(2*domain.Day))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.CurrentAmount)
	assert.Equal(t, domain.StatusActive, domain.DisplayStatus(c, t0.Add(2*domain.Day)))

	_, err = repo.Contribute(ctx, c.ID, "alice", 1, t0.Add(31*domain.Day))
	require.ErrorIs(t, err, domain.ErrCampaignClosed)

	c, err = repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.CurrentAmount)
	assert.Equal(t, domain.StatusFunded, domain.DisplayStatus(c, t0.Add(31*domain.Day)))
}

func TestContributeRejectsInvalidAmountAndUnknownCampaign(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	c, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)

	_, err = repo.Contribute(ctx, c.ID, "alice", 0, t0)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = repo.Contribute(ctx, c.ID, "alice", -5, t0)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, err = repo.Contribute(ctx, 42, "alice", 5, t0)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.CurrentAmount)
}

func TestConcurrentContributionsAreConserved(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	c, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)
	other, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)

	const workers, perWorker = 16, 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			who := domain.Principal(fmt.Sprintf("p%d", i%4))
			for j := 0; j < perWorker; j++ {
				_, err := repo.Contribute(ctx, c.ID, who, 3, t0)
				assert.NoError(t, err)
				_, err = repo.Contribute(ctx, other.ID, who, 1, t0)
				assert.NoError(t, err)
			}
		}(i)
	}

	// readers must never see a torn snapshot
	done := make(chan struct{})
	go func() {
		defer close(done)
		for k := 0; k < 200; k++ {
			snap, err := repo.Get(ctx, c.ID)
			assert.NoError(t, err)
			assert.Equal(t, snap.CurrentAmount, snap.LedgerTotal())
		}
	}()
	wg.Wait()
	<-done

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker*3), got.CurrentAmount)
	assert.Equal(t, got.CurrentAmount, got.LedgerTotal())

	got, err = repo.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), got.CurrentAmount)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()

	c, err := repo.Create(ctx, validDraft(), t0)
	require.NoError(t, err)
	c, err = repo.Contribute(ctx, c.ID, "alice", 10, t0)
	require.NoError(t, err)

	c.Contributors["alice"] = 9999
	c.CurrentAmount = 9999

	first, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	second, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(10), first.CurrentAmount)

	amount, err := repo.GetContribution(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(10), amount)
	amount, err = repo.GetContribution(ctx, c.ID, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), amount)
}

func TestCanceledContext(t *testing.T) {
	repo := NewCampaignRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, validDraft(), t0)
	require.ErrorIs(t, err, context.Canceled)
}
