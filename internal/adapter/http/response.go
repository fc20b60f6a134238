package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/juju/errors"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

type contributorEntry struct {
	Principal string `json:"principal"`
	Amount    int64  `json:"amount"`
}

// campaignResponse is the wire form of a campaign. Amounts are minor units;
// the *_display fields are decimal major units for presentation only.
type campaignResponse struct {
	ID              int64              `json:"id"`
	Creator         string             `json:"creator"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	GoalAmount      int64              `json:"goal_amount"`
	CurrentAmount   int64              `json:"current_amount"`
	GoalDisplay     string             `json:"goal_display"`
	CurrentDisplay  string             `json:"current_display"`
	DeadlineNs      int64              `json:"deadline_ns"`
	Deadline        string             `json:"deadline"`
	IsActive        bool               `json:"is_active"`
	Status          domain.Status      `json:"status"`
	DaysRemaining   int64              `json:"days_remaining"`
	ProgressPercent float64            `json:"progress_percent"`
	Contributors    []contributorEntry `json:"contributors"`
}

func newCampaignResponse(v port.CampaignView) campaignResponse {
	c := v.Campaign
	contributors := make([]contributorEntry, 0, len(c.Contributors))
	for p, amount := range c.Contributors {
		contributors = append(contributors, contributorEntry{Principal: p.String(), Amount: amount})
	}
	slices.SortFunc(contributors, func(a, b contributorEntry) int { return strings.Compare(a.Principal, b.Principal) })
	return campaignResponse{
		ID:              c.ID,
		Creator:         c.Creator.String(),
		Name:            c.Name,
		Description:     c.Description,
		GoalAmount:      c.GoalAmount,
		CurrentAmount:   c.CurrentAmount,
		GoalDisplay:     FormatMajorUnits(c.GoalAmount),
		CurrentDisplay:  FormatMajorUnits(c.CurrentAmount),
		DeadlineNs:      c.Deadline.UnixNano(),
		Deadline:        c.Deadline.UTC().Format(time.RFC3339Nano),
		IsActive:        c.IsActive,
		Status:          v.Status,
		DaysRemaining:   v.DaysRemaining,
		ProgressPercent: v.ProgressPercent,
		Contributors:    contributors,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps a classified error onto an HTTP status. Unclassified
// errors are logged and reported as a generic 500 to avoid leaking details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: string(domain.ErrValidation), Fields: verr.Fields})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: string(domain.ErrNotFound)})
	case errors.Is(err, domain.ErrCampaignClosed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: string(domain.ErrCampaignClosed)})
	case errors.Is(err, domain.ErrCampaignOpen):
		writeJSON(w, http.StatusConflict, errorResponse{Error: string(domain.ErrCampaignOpen)})
	case errors.Is(err, domain.ErrConcurrency):
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "temporarily unavailable, retry"})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  string(domain.ErrValidation),
		Fields: []domain.FieldError{{Field: field, Message: message}},
	})
}
