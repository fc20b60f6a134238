package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const tracerName = "crowdfund/usecase"

// CampaignUseCase provides the business operations on campaigns. It
// enforces authorization, reads the clock once per operation and delegates
// every mutation to the registry. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	query  *QueryService
	events port.EventPublisher
	clock  clock.Clock
	logger *slog.Logger
	tracer trace.Tracer

	// maxTries bounds the attempts made for a contribution that keeps
	// failing with domain.ErrConcurrency.
	maxTries   uint
	newBackOff func() backoff.BackOff
}

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock sets the clock used to timestamp operations.
func WithClock(clk clock.Clock) Option {
	return func(u *CampaignUseCase) { u.clock = clk }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.logger = logger }
}

// WithEventPublisher sets where ledger events are sent after each write.
func WithEventPublisher(p port.EventPublisher) Option {
	return func(u *CampaignUseCase) { u.events = p }
}

// WithRetry sets how contributions are retried on concurrency conflicts.
// A nil newBackOff keeps the default exponential policy.
func WithRetry(maxTries uint, newBackOff func() backoff.BackOff) Option {
	return func(u *CampaignUseCase) {
		if maxTries > 0 {
			u.maxTries = maxTries
		}
		if newBackOff != nil {
			u.newBackOff = newBackOff
		}
	}
}

// NewCampaignUseCase creates a use case on top of repo. Without options it
// uses the wall clock, discards events and logs through slog.Default.
func NewCampaignUseCase(repo port.CampaignRepository, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:     repo,
		query:    NewQueryService(repo),
		events:   discardEvents{},
		clock:    clock.WallClock,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		maxTries: 3,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 10 * time.Millisecond
			b.MaxInterval = 200 * time.Millisecond
			return b
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign stores a new campaign owned by caller.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller domain.Principal, req port.CreateCampaignReq) (id int64, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.CreateCampaign")
	defer func() { endSpan(span, err) }()

	if caller.IsAnonymous() {
		u.logger.Warn("anonymous create rejected")
		return 0, errors.Annotate(domain.ErrUnauthorized, "create campaign")
	}

	now := u.clock.Now()
	c, err := u.repo.Create(ctx, domain.CampaignDraft{
		Creator:      caller,
		Name:         req.Name,
		Description:  req.Description,
		GoalAmount:   req.GoalAmount,
		DurationDays: req.DurationDays,
	}, now)
	if err != nil {
		u.logFailure("create campaign", err, slog.String("caller", caller.String()))
		return 0, errors.Trace(err)
	}
	span.SetAttributes(attribute.Int64("campaign.id", c.ID))

	u.logger.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.String("creator", caller.String()),
		slog.Int64("goal_amount", c.GoalAmount),
		slog.Time("deadline", c.Deadline),
	)
	u.publish(ctx, domain.LedgerEvent{
		Type:       domain.EventCampaignCreated,
		CampaignID: c.ID,
		Principal:  caller,
		GoalAmount: c.GoalAmount,
		OccurredAt: now,
	})
	return c.ID, nil
}

// Contribute adds amount from caller to the campaign. Concurrency conflicts
// reported by the registry are retried with backoff; every other failure is
// returned immediately.
func (u *CampaignUseCase) Contribute(ctx context.Context, caller domain.Principal, campaignID int64, amount int64) (resp *port.ContributionResp, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Contribute",
		trace.WithAttributes(attribute.Int64("campaign.id", campaignID), attribute.Int64("amount", amount)))
	defer func() { endSpan(span, err) }()

	if caller.IsAnonymous() {
		u.logger.Warn("anonymous contribution rejected", slog.Int64("campaign_id", campaignID))
		return nil, errors.Annotate(domain.ErrUnauthorized, "contribute")
	}

	now := u.clock.Now()
	attempt := 0
	op := func() (domain.Campaign, error) {
		attempt++
		c, err := u.repo.Contribute(ctx, campaignID, caller, amount, now)
		if err != nil && !domain.IsRetryable(err) {
			return c, backoff.Permanent(err)
		}
		if err != nil {
			u.logger.Debug("contribution conflict, retrying",
				slog.Int64("campaign_id", campaignID), slog.Int("attempt", attempt))
		}
		return c, err
	}
	c, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(u.newBackOff()),
		backoff.WithMaxTries(u.maxTries),
	)
	if err != nil {
		u.logFailure("contribute", err,
			slog.Int64("campaign_id", campaignID),
			slog.String("caller", caller.String()),
			slog.Int64("amount", amount),
		)
		return nil, errors.Trace(err)
	}

	u.logger.Info("contribution applied",
		slog.Int64("campaign_id", c.ID),
		slog.String("contributor", caller.String()),
		slog.Int64("amount", amount),
		slog.Int64("current_amount", c.CurrentAmount),
	)
	u.publish(ctx, domain.LedgerEvent{
		Type:          domain.EventContributionApplied,
		CampaignID:    c.ID,
		Principal:     caller,
		Amount:        amount,
		CurrentAmount: c.CurrentAmount,
		GoalAmount:    c.GoalAmount,
		OccurredAt:    now,
	})
	return &port.ContributionResp{
		CampaignID:      c.ID,
		CurrentAmount:   c.CurrentAmount,
		GoalAmount:      c.GoalAmount,
		CallerTotal:     c.ContributionOf(caller),
		Status:          domain.DisplayStatus(c, now),
		ProgressPercent: domain.ProgressPercent(c),
	}, nil
}

// GetCampaign returns the campaign with values derived at the current time.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID int64) (view *port.CampaignView, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.GetCampaign",
		trace.WithAttributes(attribute.Int64("campaign.id", campaignID)))
	defer func() { endSpan(span, err) }()

	c, err := u.query.Get(ctx, campaignID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	v := port.NewCampaignView(c, u.clock.Now())
	return &v, nil
}

// ListCampaigns returns the filtered and sorted listing.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, q domain.ListQuery) (views []port.CampaignView, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.ListCampaigns")
	defer func() { endSpan(span, err) }()

	if q.Status, err = domain.ParseStatusFilter(string(q.Status)); err != nil {
		return nil, err
	}
	if q.Sort, err = domain.ParseSortKey(string(q.Sort)); err != nil {
		return nil, err
	}

	now := u.clock.Now()
	campaigns, err := u.query.ListFiltered(ctx, q, now)
	if err != nil {
		u.logFailure("list campaigns", err)
		return nil, errors.Trace(err)
	}
	views = make([]port.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, port.NewCampaignView(c, now))
	}
	span.SetAttributes(attribute.Int("campaigns.count", len(views)))
	return views, nil
}

// GetContribution returns the caller's cumulative contribution. Anonymous
// callers have never contributed, so they get 0 for any known campaign.
func (u *CampaignUseCase) GetContribution(ctx context.Context, caller domain.Principal, campaignID int64) (amount int64, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.GetContribution",
		trace.WithAttributes(attribute.Int64("campaign.id", campaignID)))
	defer func() { endSpan(span, err) }()

	amount, err = u.query.Contribution(ctx, campaignID, caller)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return amount, nil
}

// GetOutcome reports whether a finished campaign met its goal.
func (u *CampaignUseCase) GetOutcome(ctx context.Context, campaignID int64) (out *port.OutcomeResp, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.GetOutcome",
		trace.WithAttributes(attribute.Int64("campaign.id", campaignID)))
	defer func() { endSpan(span, err) }()

	c, err := u.query.Get(ctx, campaignID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if u.clock.Now().Before(c.Deadline) {
		return nil, fmt.Errorf("%w: campaign %d ends at %s", domain.ErrCampaignOpen, c.ID, c.Deadline.Format(time.RFC3339))
	}
	return &port.OutcomeResp{
		CampaignID:    c.ID,
		Successful:    domain.IsFunded(c),
		CurrentAmount: c.CurrentAmount,
		GoalAmount:    c.GoalAmount,
	}, nil
}

func (u *CampaignUseCase) publish(ctx context.Context, ev domain.LedgerEvent) {
	ev.ID = uuid.NewString()
	if err := u.events.Publish(ctx, ev); err != nil {
		// the write is committed; subscribers miss one event
		u.logger.Warn("publish ledger event",
			slog.String("event_type", string(ev.Type)),
			slog.Int64("campaign_id", ev.CampaignID),
			slog.Any("error", err),
		)
	}
}

// logFailure logs classified rejections at warn and anything else at error.
func (u *CampaignUseCase) logFailure(op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCampaignClosed),
		errors.Is(err, domain.ErrUnauthorized):
		level = slog.LevelWarn
	}
	attrs = append(attrs, slog.Any("error", err))
	u.logger.LogAttrs(context.Background(), level, op+" failed", attrs...)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

type discardEvents struct{}

func (discardEvents) Publish(context.Context, domain.LedgerEvent) error { return nil }
