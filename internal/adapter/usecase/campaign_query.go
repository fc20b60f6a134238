package usecase

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// QueryService derives read-only views over the campaign registry. It never
// mutates the registry; every result is a function of the registry state
// and the instant passed in.
type QueryService struct {
	repo port.CampaignRepository
}

// NewQueryService returns a query service reading from repo.
func NewQueryService(repo port.CampaignRepository) *QueryService {
	return &QueryService{repo: repo}
}

// Get returns one campaign.
func (s *QueryService) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	return s.repo.Get(ctx, id)
}

// Contribution returns the cumulative amount contributor gave to the
// campaign, 0 when absent.
func (s *QueryService) Contribution(ctx context.Context, id int64, contributor domain.Principal) (int64, error) {
	return s.repo.GetContribution(ctx, id, contributor)
}

// ListFiltered applies search, status filter and sort to the full listing.
func (s *QueryService) ListFiltered(ctx context.Context, q domain.ListQuery, now time.Time) ([]domain.Campaign, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterAndSort(all, q, now), nil
}
