package httpadapter

import "net/http"

// handleListCountries returns the country catalog in its canonical order.
func (h *Handler) handleListCountries(w http.ResponseWriter, r *http.Request) {
	opts := h.svc.ListCountries(r.Context())
	out := make([]countryResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, countryResponse{
			Name:         o.Name,
			Code:         o.Code,
			CurrencyCode: o.CurrencyCode,
			CurrencyName: o.CurrencyName,
			EnumValue:    o.EnumValue,
			DisplayName:  o.DisplayName,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
