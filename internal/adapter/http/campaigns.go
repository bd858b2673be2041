package httpadapter

import (
	"net/http"

	"campaign-api/internal/core/domain"
)

// handleListCampaigns lists campaigns, optionally filtered by title and
// landing URL substrings and by running state. All filters combine with AND.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	running, err := boolQuery(r, "is_running")
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter := domain.CampaignFilter{
		Title:      stringQuery(r, "title"),
		LandingURL: stringQuery(r, "landing_url"),
		IsRunning:  running,
	}

	campaigns, err := h.svc.ListCampaigns(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

func (h *Handler) handleSearchCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	campaigns, err := h.svc.SearchCampaigns(r.Context(), r.URL.Query().Get("q"), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if c == nil {
		writeError(w, r, domain.ErrCampaignNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleCreateCampaign creates a campaign with its payouts. Omitted fields
// take the campaign defaults; any invalid payout rejects the whole request.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.toPort())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleUpdateCampaign applies a partial update. Keys absent from the body
// leave the stored values untouched.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch domain.CampaignPatch
	if err = decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if c == nil {
		writeError(w, r, domain.ErrCampaignNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleToggleCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.ToggleCampaignStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if c == nil {
		writeError(w, r, domain.ErrCampaignNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	deleted, err := h.svc.DeleteCampaign(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, domain.ErrCampaignNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
