package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Validate checks a creation request and reports every failing field at
// once.
func (d CampaignDraft) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(d.Name) == "" {
		verr.Add("name", "Campaign name is required")
	}
	desc := strings.TrimSpace(d.Description)
	switch {
	case desc == "":
		verr.Add("description", "Campaign description is required")
	case utf8.RuneCountInString(desc) < MinDescriptionLength:
		verr.Add("description", fmt.Sprintf("Description must be at least %d characters long", MinDescriptionLength))
	}
	if d.GoalAmount <= 0 {
		verr.Add("goal_amount", "Funding goal must be greater than 0")
	}
	if d.DurationDays < MinDurationDays || d.DurationDays > MaxDurationDays {
		verr.Add("duration_days", fmt.Sprintf("Duration must be between %d and %d days", MinDurationDays, MaxDurationDays))
	}
	return verr.OrNil()
}

// CheckContribution decides whether amount may be added to c at now. It
// never mutates c.
func CheckContribution(c Campaign, amount int64, now time.Time) error {
	if amount <= 0 {
		return &ValidationError{Fields: []FieldError{{Field: "amount", Message: "Contribution must be greater than 0"}}}
	}
	if !c.IsActive {
		return fmt.Errorf("%w: campaign %d is not active", ErrCampaignClosed, c.ID)
	}
	if IsExpired(c, now) {
		return fmt.Errorf("%w: campaign %d has ended", ErrCampaignClosed, c.ID)
	}
	if c.CurrentAmount > math.MaxInt64-amount {
		return &ValidationError{Fields: []FieldError{{Field: "amount", Message: "Contribution exceeds the maximum campaign total"}}}
	}
	return nil
}
