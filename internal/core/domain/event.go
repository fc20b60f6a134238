package domain

import (
	"time"
)

// EventType names a ledger event.
type EventType string

const (
	EventCampaignCreated     EventType = "campaign.created"
	EventContributionApplied EventType = "contribution.applied"
)

// LedgerEvent is a record of a committed registry mutation, published to
// interested subscribers after the write.
type LedgerEvent struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	CampaignID    int64     `json:"campaign_id"`
	Principal     Principal `json:"principal"`
	Amount        int64     `json:"amount,omitempty"`
	CurrentAmount int64     `json:"current_amount"`
	GoalAmount    int64     `json:"goal_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
