package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/juju/errors"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

var demoCampaigns = []struct {
	name, description string
	goal              int64
	days              int
}{
	{"Community garden", "Raised beds and a tool shed for the east side lot.", 500_000_000, 30},
	{"School library", "New shelves and two hundred books for the primary school.", 1_200_000_000, 45},
	{"River cleanup", "Boats, nets and skips for a weekend river cleanup.", 250_000_000, 7},
	{"Open source mapping", "Drone flights to map flood risk in the valley villages.", 3_000_000_000, 90},
	{"Bike repair cafe", "A monthly pop-up where neighbours fix bikes together.", 80_000_000, 14},
}

// Seed creates demo campaigns through repo and funds them with random
// contributions from a handful of demo principals. The same seed yields the
// same ledger. It returns the ids of the created campaigns.
func Seed(ctx context.Context, repo port.CampaignRepository, now time.Time, seed int64) ([]int64, error) {
	r := rand.New(rand.NewSource(seed))
	backers := []domain.Principal{"backer-1", "backer-2", "backer-3", "backer-4"}

	ids := make([]int64, 0, len(demoCampaigns))
	for i, d := range demoCampaigns {
		c, err := repo.Create(ctx, domain.CampaignDraft{
			Creator:      domain.Principal(fmt.Sprintf("creator-%d", i+1)),
			Name:         d.name,
			Description:  d.description,
			GoalAmount:   d.goal,
			DurationDays: d.days,
		}, now)
		if err != nil {
			return ids, errors.Annotatef(err, "seed campaign %q", d.name)
		}
		ids = append(ids, c.ID)

		// up to 150% of the goal in total so some campaigns end up funded
		for n := r.Intn(6); n > 0; n-- {
			amount := d.goal/10 + r.Int63n(d.goal/5)
			backer := backers[r.Intn(len(backers))]
			if _, err = repo.Contribute(ctx, c.ID, backer, amount, now); err != nil {
				return ids, errors.Annotatef(err, "seed contribution to %d", c.ID)
			}
		}
	}
	return ids, nil
}
