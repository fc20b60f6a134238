package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the operations exposed to the transport layer. It
// is the primary port into the application domain. Callers pass the
// already authenticated principal; anonymous principals may only read.
type CampaignUseCase interface {
	// CreateCampaign validates and stores a new campaign owned by caller and
	// returns its id.
	CreateCampaign(ctx context.Context, caller domain.Principal, req CreateCampaignReq) (int64, error)

	// Contribute adds amount, in minor units, from caller to the campaign and
	// returns the updated totals. Contributions are rejected once the
	// campaign is no longer active.
	Contribute(ctx context.Context, caller domain.Principal, campaignID int64, amount int64) (*ContributionResp, error)

	// GetCampaign returns a single campaign with its derived status.
	GetCampaign(ctx context.Context, campaignID int64) (*CampaignView, error)

	// ListCampaigns returns campaigns matching the query in the requested
	// order.
	ListCampaigns(ctx context.Context, q domain.ListQuery) ([]CampaignView, error)

	// GetContribution returns how much caller has given to the campaign.
	GetContribution(ctx context.Context, caller domain.Principal, campaignID int64) (int64, error)

	// GetOutcome reports whether the campaign reached its goal. It fails with
	// domain.ErrCampaignOpen until the deadline has passed.
	GetOutcome(ctx context.Context, campaignID int64) (*OutcomeResp, error)
}

// CreateCampaignReq carries the creation inputs. GoalAmount is in minor
// units.
type CreateCampaignReq struct {
	Name         string
	Description  string
	GoalAmount   int64
	DurationDays int
}

// CampaignView is a campaign snapshot together with the values derived from
// it at the time of the request.
type CampaignView struct {
	Campaign        domain.Campaign
	Status          domain.Status
	DaysRemaining   int64
	ProgressPercent float64
	EffectiveActive bool
}

// NewCampaignView derives the view of c at now.
func NewCampaignView(c domain.Campaign, now time.Time) CampaignView {
	return CampaignView{
		Campaign:        c,
		Status:          domain.DisplayStatus(c, now),
		DaysRemaining:   domain.DaysRemaining(c, now),
		ProgressPercent: domain.ProgressPercent(c),
		EffectiveActive: domain.EffectiveActive(c, now),
	}
}

// ContributionResp reports campaign totals after a successful contribution.
type ContributionResp struct {
	CampaignID      int64
	CurrentAmount   int64
	GoalAmount      int64
	CallerTotal     int64
	Status          domain.Status
	ProgressPercent float64
}

// OutcomeResp reports the final result of a campaign after its deadline.
type OutcomeResp struct {
	CampaignID    int64
	Successful    bool
	CurrentAmount int64
	GoalAmount    int64
}
