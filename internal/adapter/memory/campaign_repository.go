package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/im7mortal/kmutex"

	"crowdfund/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository in process memory.
//
// Campaigns are kept as immutable snapshots keyed by id. A contribution
// copies the current snapshot, applies the change to the copy and swaps it
// in while holding the lock for that campaign only, so readers always see
// either the old or the new state and never wait on writers. Campaigns do
// not share locks with each other; the id counter is the only global state.
type CampaignRepository struct {
	nextID    atomic.Int64
	campaigns sync.Map // int64 -> *domain.Campaign
	locks     *kmutex.Kmutex
}

// NewCampaignRepository returns an empty repository. The first campaign gets
// id 1.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{locks: kmutex.New()}
}

// Create validates the draft and stores a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, draft domain.CampaignDraft, now time.Time) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}
	if err := draft.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	c := domain.NewCampaign(r.nextID.Add(1), draft, now)
	r.campaigns.Store(c.ID, &c)
	return c.Clone(), nil
}

// Contribute applies amount to the campaign and the contributor's ledger
// entry under the campaign lock.
func (r *CampaignRepository) Contribute(ctx context.Context, id int64, contributor domain.Principal, amount int64, now time.Time) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}
	r.locks.Lock(id)
	defer r.locks.Unlock(id)

	cur, ok := r.load(id)
	if !ok {
		return domain.Campaign{}, notFound(id)
	}
	if err := domain.CheckContribution(*cur, amount, now); err != nil {
		return domain.Campaign{}, err
	}
	next := cur.Clone()
	next.Apply(contributor, amount)
	r.campaigns.Store(id, &next)
	return next.Clone(), nil
}

// Get returns a copy of the stored snapshot.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}
	c, ok := r.load(id)
	if !ok {
		return domain.Campaign{}, notFound(id)
	}
	return c.Clone(), nil
}

// GetContribution returns the contributor's cumulative amount, or 0.
func (r *CampaignRepository) GetContribution(ctx context.Context, id int64, contributor domain.Principal) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c, ok := r.load(id)
	if !ok {
		return 0, notFound(id)
	}
	return c.ContributionOf(contributor), nil
}

// ListAll returns copies of every campaign in ascending id order.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.Campaign
	r.campaigns.Range(func(_, v any) bool {
		out = append(out, v.(*domain.Campaign).Clone())
		return true
	})
	slices.SortFunc(out, func(a, b domain.Campaign) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *CampaignRepository) load(id int64) (*domain.Campaign, bool) {
	v, ok := r.campaigns.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*domain.Campaign), true
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
}
