package httpadapter

import (
	"net/http"

	"campaign-api/internal/core/domain"
)

func (h *Handler) handleGetCampaignPayouts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	payouts, err := h.svc.GetCampaignPayouts(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayoutResponses(payouts))
}

// handleCreatePayout adds one payout to the campaign in the path. A country
// the campaign already pays for is rejected with 400.
func (h *Handler) handleCreatePayout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req createPayoutRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.CreatePayout(r.Context(), id, req.toPort())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayoutResponse(*p))
}

func (h *Handler) handleListPayouts(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter := domain.PayoutFilter{Country: stringQuery(r, "country")}
	payouts, err := h.svc.ListPayouts(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayoutResponses(payouts))
}

func (h *Handler) handleUpdatePayout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch domain.PayoutPatch
	if err = decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.UpdatePayout(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if p == nil {
		writeError(w, r, domain.ErrPayoutNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toPayoutResponse(*p))
}

func (h *Handler) handleDeletePayout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	deleted, err := h.svc.DeletePayout(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, domain.ErrPayoutNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
