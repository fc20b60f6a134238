package domain

import "time"

// Status is the derived, never persisted classification of a campaign.
type Status string

const (
	StatusActive Status = "Active"
	StatusFunded Status = "Funded"
	StatusEnded  Status = "Ended"
)

// DaysRemaining returns the number of started days left before the deadline,
// rounded up. It is zero once now reaches the deadline.
func DaysRemaining(c Campaign, now time.Time) int64 {
	left := c.Deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int64(left / Day)
	if left%Day != 0 {
		days++
	}
	return days
}

// IsExpired reports whether the deadline has passed at now.
func IsExpired(c Campaign, now time.Time) bool {
	return DaysRemaining(c, now) == 0
}

// EffectiveActive reports whether c accepts contributions at now.
func EffectiveActive(c Campaign, now time.Time) bool {
	return c.IsActive && !IsExpired(c, now)
}

// IsFunded reports whether the goal has been reached.
func IsFunded(c Campaign) bool {
	return c.CurrentAmount >= c.GoalAmount
}

// DisplayStatus derives the status shown for c at now. An active campaign
// is Active even when funded; once inactive, Funded wins over Ended.
func DisplayStatus(c Campaign, now time.Time) Status {
	switch {
	case EffectiveActive(c, now):
		return StatusActive
	case IsFunded(c):
		return StatusFunded
	default:
		return StatusEnded
	}
}

// ProgressPercent returns CurrentAmount as a percentage of GoalAmount. The
// value is not clamped and exceeds 100 for over-funded campaigns.
func ProgressPercent(c Campaign) float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	return float64(c.CurrentAmount) / float64(c.GoalAmount) * 100
}
