package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// CampaignRepository is the campaign registry: the single owner of campaigns
// and their contribution ledgers. It is an outbound port in hexagonal
// architecture. Implementations must be concurrency-safe, apply each
// contribution atomically and leave state untouched on every failure path.
type CampaignRepository interface {
	// Create validates the draft, assigns the next id and stores a new
	// campaign whose deadline is now plus the draft duration.
	Create(ctx context.Context, draft domain.CampaignDraft, now time.Time) (domain.Campaign, error)
	// Contribute adds amount to the campaign total and to the contributor's
	// ledger entry as one unit, and returns the updated snapshot. It fails
	// with domain.ErrCampaignClosed when the campaign is not active at now.
	Contribute(ctx context.Context, id int64, contributor domain.Principal, amount int64, now time.Time) (domain.Campaign, error)
	// Get returns a consistent snapshot of one campaign.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	// GetContribution returns the cumulative amount contributor has given to
	// the campaign, or 0 when there is no ledger entry.
	GetContribution(ctx context.Context, id int64, contributor domain.Principal) (int64, error)
	// ListAll returns every campaign ordered by ascending id.
	ListAll(ctx context.Context) ([]domain.Campaign, error)
}

// EventPublisher delivers committed ledger events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}
