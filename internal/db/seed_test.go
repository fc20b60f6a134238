package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
)

func TestSeed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	repo := memory.NewCampaignRepository()
	ids, err := Seed(ctx, repo, now, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(demoCampaigns))
	for _, c := range all {
		assert.Equal(t, c.LedgerTotal(), c.CurrentAmount, c.Name)
		assert.True(t, domain.EffectiveActive(c, now), c.Name)
	}

	// same seed, same ledger
	again := memory.NewCampaignRepository()
	_, err = Seed(ctx, again, now, 42)
	require.NoError(t, err)
	other, err := again.ListAll(ctx)
	require.NoError(t, err)
	for i := range all {
		assert.Equal(t, all[i].CurrentAmount, other[i].CurrentAmount)
		assert.Equal(t, all[i].Contributors, other[i].Contributors)
	}
}

func TestSeedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Seed(ctx, memory.NewCampaignRepository(), time.Now(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
