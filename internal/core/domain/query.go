package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// StatusFilter selects campaigns by derived status.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterActive StatusFilter = "active"
	FilterFunded StatusFilter = "funded"
	FilterEnded  StatusFilter = "ended"
)

// SortKey orders a campaign listing.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortEndingSoon SortKey = "endingSoon"
	SortMostFunded SortKey = "mostFunded"
	SortGoalAmount SortKey = "goalAmount"
)

// ListQuery describes a filtered, sorted campaign listing. Zero values mean
// no search, all statuses and newest first.
type ListQuery struct {
	Search string
	Status StatusFilter
	Sort   SortKey
}

// ParseStatusFilter maps user input onto a StatusFilter. The empty string
// selects FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterFunded, FilterEnded:
		return f, nil
	}
	return "", &ValidationError{Fields: []FieldError{{Field: "status", Message: "Status must be one of all, active, funded, ended"}}}
}

// ParseSortKey maps user input onto a SortKey. Both camelCase and
// snake_case spellings are accepted; the empty string selects SortNewest.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "")) {
	case "", "newest":
		return SortNewest, nil
	case "endingsoon":
		return SortEndingSoon, nil
	case "mostfunded":
		return SortMostFunded, nil
	case "goalamount":
		return SortGoalAmount, nil
	}
	return "", &ValidationError{Fields: []FieldError{{Field: "sort", Message: "Sort must be one of newest, endingSoon, mostFunded, goalAmount"}}}
}

// MatchesSearch reports whether text occurs in the name or description of c,
// ignoring case. An empty search matches everything.
func MatchesSearch(c Campaign, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), text) ||
		strings.Contains(strings.ToLower(c.Description), text)
}

// MatchesStatus reports whether c passes filter at now.
func MatchesStatus(c Campaign, filter StatusFilter, now time.Time) bool {
	switch filter {
	case FilterActive:
		return EffectiveActive(c, now)
	case FilterFunded:
		return IsFunded(c)
	case FilterEnded:
		return !EffectiveActive(c, now)
	default:
		return true
	}
}

// FilterAndSort applies search, status filter and sort order to campaigns,
// in that order. The input slice is left untouched. Ties are broken by
// ascending id so the result is a total order.
func FilterAndSort(campaigns []Campaign, q ListQuery, now time.Time) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !MatchesSearch(c, q.Search) || !MatchesStatus(c, q.Status, now) {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, compareBy(q.Sort))
	return out
}

func compareBy(key SortKey) func(a, b Campaign) int {
	var primary func(a, b Campaign) int
	switch key {
	case SortEndingSoon:
		primary = func(a, b Campaign) int { return a.Deadline.Compare(b.Deadline) }
	case SortMostFunded:
		primary = func(a, b Campaign) int { return cmp.Compare(b.CurrentAmount, a.CurrentAmount) }
	case SortGoalAmount:
		primary = func(a, b Campaign) int { return cmp.Compare(b.GoalAmount, a.GoalAmount) }
	default:
		// newest first; ids are unique so no tie-break is needed
		return func(a, b Campaign) int { return cmp.Compare(b.ID, a.ID) }
	}
	return func(a, b Campaign) int {
		if r := primary(a, b); r != 0 {
			return r
		}
		return cmp.Compare(a.ID, b.ID)
	}
}
