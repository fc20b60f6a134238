package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// createCampaignRequest accepts the goal either as integer minor units or as
// a decimal string in major units. GoalAmount wins when both are present.
type createCampaignRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	GoalAmount   *int64 `json:"goal_amount"`
	Goal         string `json:"goal"`
	DurationDays int    `json:"duration_days"`
}

// handleCreateCampaign creates a campaign owned by the caller and responds
// with 201 and the new id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller := PrincipalFrom(r.Context())
	if caller.IsAnonymous() {
		h.writeError(w, r, domain.ErrUnauthorized)
		return
	}
	var body createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "body", "invalid JSON")
		return
	}
	req := port.CreateCampaignReq{
		Name:         body.Name,
		Description:  body.Description,
		DurationDays: body.DurationDays,
	}
	switch {
	case body.GoalAmount != nil:
		req.GoalAmount = *body.GoalAmount
	case body.Goal != "":
		amount, err := ParseMajorUnits(body.Goal)
		if err != nil {
			badRequest(w, "goal", err.Error())
			return
		}
		req.GoalAmount = amount
	}

	id, err := h.svc.CreateCampaign(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+strconv.FormatInt(id, 10))
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleListCampaigns returns campaigns filtered by the optional q, status
// and sort query parameters. Unknown status or sort values produce 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	views, err := h.svc.ListCampaigns(r.Context(), domain.ListQuery{
		Search: q.Get("q"),
		Status: domain.StatusFilter(q.Get("status")),
		Sort:   domain.SortKey(q.Get("sort")),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newCampaignResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign returns one campaign or 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(*view))
}

type outcomeResponse struct {
	CampaignID    int64 `json:"campaign_id"`
	Successful    bool  `json:"successful"`
	CurrentAmount int64 `json:"current_amount"`
	GoalAmount    int64 `json:"goal_amount"`
}

// handleGetOutcome reports whether a finished campaign met its goal. While
// the campaign is still running it answers 409.
func (h *Handler) handleGetOutcome(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	out, err := h.svc.GetOutcome(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, outcomeResponse{
		CampaignID:    out.CampaignID,
		Successful:    out.Successful,
		CurrentAmount: out.CurrentAmount,
		GoalAmount:    out.GoalAmount,
	})
}

func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "id", "invalid campaign id")
		return 0, false
	}
	return id, true
}
