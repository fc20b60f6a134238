package domain

import (
	"strings"
	"time"
)

// Day is the unit campaign durations and remaining time are counted in.
const Day = 24 * time.Hour

const (
	MinDurationDays      = 1
	MaxDurationDays      = 90
	MinDescriptionLength = 20
)

// Principal is the opaque identity of an authenticated caller as supplied by
// the identity provider. The zero value is the anonymous principal.
type Principal string

// Anonymous is the principal attached to unauthenticated requests.
const Anonymous Principal = ""

// IsAnonymous reports whether p carries no authenticated identity.
func (p Principal) IsAnonymous() bool {
	return strings.TrimSpace(string(p)) == ""
}

func (p Principal) String() string { return string(p) }

// Campaign represents a fundraising campaign and its contribution ledger.
// Amounts are stored in integer minor units.
type Campaign struct {
	ID            int64
	Creator       Principal
	Name          string
	Description   string
	GoalAmount    int64
	CurrentAmount int64
	Deadline      time.Time
	IsActive      bool
	CreatedAt     time.Time
	// Contributors maps each contributor to the cumulative amount given to
	// this campaign. CurrentAmount always equals the sum of its values.
	Contributors map[Principal]int64
}

// CampaignDraft carries the caller supplied fields of a campaign that has
// not been created yet.
type CampaignDraft struct {
	Creator      Principal
	Name         string
	Description  string
	GoalAmount   int64
	DurationDays int
}

// Deadline returns the instant the campaign stops accepting contributions
// when it is created at now.
func (d CampaignDraft) Deadline(now time.Time) time.Time {
	return now.Add(time.Duration(d.DurationDays) * Day)
}

// NewCampaign builds the initial state of a campaign from a validated draft.
func NewCampaign(id int64, d CampaignDraft, now time.Time) Campaign {
	return Campaign{
		ID:            id,
		Creator:       d.Creator,
		Name:          strings.TrimSpace(d.Name),
		Description:   strings.TrimSpace(d.Description),
		GoalAmount:    d.GoalAmount,
		CurrentAmount: 0,
		Deadline:      d.Deadline(now),
		IsActive:      true,
		CreatedAt:     now,
		Contributors:  map[Principal]int64{},
	}
}

// Clone returns a deep copy of c. The ledger map is never shared between
// copies.
func (c Campaign) Clone() Campaign {
	out := c
	out.Contributors = make(map[Principal]int64, len(c.Contributors))
	for k, v := range c.Contributors {
		out.Contributors[k] = v
	}
	return out
}

// ContributionOf returns the cumulative amount contributor has given, or 0.
func (c Campaign) ContributionOf(contributor Principal) int64 {
	return c.Contributors[contributor]
}

// LedgerTotal sums the contribution ledger.
func (c Campaign) LedgerTotal() int64 {
	var total int64
	for _, v := range c.Contributors {
		total += v
	}
	return total
}

// Apply records amount from contributor. Callers must run CheckContribution
// first; Apply itself does not validate.
func (c *Campaign) Apply(contributor Principal, amount int64) {
	if c.Contributors == nil {
		c.Contributors = map[Principal]int64{}
	}
	c.CurrentAmount += amount
	c.Contributors[contributor] += amount
}
