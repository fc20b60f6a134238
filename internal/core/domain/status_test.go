package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Campaign{Deadline: now.Add(30 * Day), IsActive: true}

	tests := []struct {
		name string
		at   time.Time
		want int64
	}{
		{"creation", now, 30},
		{"one nanosecond in", now.Add(time.Nanosecond), 30},
		{"exactly one day left", now.Add(29 * Day), 1},
		{"one nanosecond left", c.Deadline.Add(-time.Nanosecond), 1},
		{"at deadline", c.Deadline, 0},
		{"past deadline", c.Deadline.Add(Day), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemaining(c, tt.at))
			assert.Equal(t, tt.want == 0, IsExpired(c, tt.at))
		})
	}
}

func TestDisplayStatusPrecedence(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	open := now.Add(Day)
	past := now.Add(-Day)

	tests := []struct {
		name string
		c    Campaign
		want Status
	}{
		{"active unfunded", Campaign{IsActive: true, Deadline: open, GoalAmount: 10}, StatusActive},
		{"active funded stays active", Campaign{IsActive: true, Deadline: open, GoalAmount: 10, CurrentAmount: 10}, StatusActive},
		{"expired funded", Campaign{IsActive: true, Deadline: past, GoalAmount: 10, CurrentAmount: 12}, StatusFunded},
		{"expired unfunded", Campaign{IsActive: true, Deadline: past, GoalAmount: 10, CurrentAmount: 9}, StatusEnded},
		{"inactive before deadline", Campaign{IsActive: false, Deadline: open, GoalAmount: 10}, StatusEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayStatus(tt.c, now))
		})
	}
}

func TestProgressPercentIsUnclamped(t *testing.T) {
	assert.InDelta(t, 40.0, ProgressPercent(Campaign{GoalAmount: 1000, CurrentAmount: 400}), 1e-9)
	assert.InDelta(t, 150.0, ProgressPercent(Campaign{GoalAmount: 1000, CurrentAmount: 1500}), 1e-9)
	assert.Zero(t, ProgressPercent(Campaign{}))
}
