package httpadapter

import (
	"encoding/json"
	"net/http"

	"crowdfund/internal/core/domain"
)

type contributeRequest struct {
	Amount      *int64 `json:"amount"`
	AmountMajor string `json:"amount_major"`
}

type contributeResponse struct {
	CampaignID      int64         `json:"campaign_id"`
	CurrentAmount   int64         `json:"current_amount"`
	GoalAmount      int64         `json:"goal_amount"`
	YourTotal       int64         `json:"your_total"`
	Status          domain.Status `json:"status"`
	ProgressPercent float64       `json:"progress_percent"`
}

// handleContribute records a contribution from the caller. Closed campaigns
// answer 409, anonymous callers 401 and conflicts that outlived the retries
// 503 with Retry-After.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	caller := PrincipalFrom(r.Context())
	if caller.IsAnonymous() {
		h.writeError(w, r, domain.ErrUnauthorized)
		return
	}
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var body contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "body", "invalid JSON")
		return
	}
	var amount int64
	switch {
	case body.Amount != nil:
		amount = *body.Amount
	case body.AmountMajor != "":
		var err error
		if amount, err = ParseMajorUnits(body.AmountMajor); err != nil {
			badRequest(w, "amount_major", err.Error())
			return
		}
	}

	resp, err := h.svc.Contribute(r.Context(), caller, id, amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributeResponse{
		CampaignID:      resp.CampaignID,
		CurrentAmount:   resp.CurrentAmount,
		GoalAmount:      resp.GoalAmount,
		YourTotal:       resp.CallerTotal,
		Status:          resp.Status,
		ProgressPercent: resp.ProgressPercent,
	})
}

// handleMyContribution returns the caller's cumulative contribution to the
// campaign, 0 when none.
func (h *Handler) handleMyContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.GetContribution(r.Context(), PrincipalFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"campaign_id": id, "amount": amount})
}
