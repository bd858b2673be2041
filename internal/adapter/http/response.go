package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-api/internal/core/domain"
	"campaign-api/internal/core/validation"
)

const (
	defaultLimit = 100
	maxBodyBytes = 1 << 20
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response error", slog.Any("error", err))
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError maps domain errors onto status codes. Anything that is neither
// a not-found nor a validation error is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		writeDetail(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, domain.ErrPayoutNotFound):
		writeDetail(w, http.StatusNotFound, "Payout not found")
	case errors.Is(err, domain.ErrNotFound):
		writeDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		loggerFrom(r.Context()).Error("request failed", slog.Any("error", err))
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads the request body into v and runs struct validation on it.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err)
	}
	return validation.Struct(v)
}

func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", domain.ErrValidation, raw)
	}
	return id, nil
}

type pageQuery struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=1000"`
}

// parsePage reads skip and limit, defaulting to 0 and 100.
func parsePage(r *http.Request) (domain.Page, error) {
	q := pageQuery{Limit: defaultLimit}
	if err := intQuery(r, "skip", &q.Skip); err != nil {
		return domain.Page{}, err
	}
	if err := intQuery(r, "limit", &q.Limit); err != nil {
		return domain.Page{}, err
	}
	if err := validation.Struct(q); err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Skip: q.Skip, Limit: q.Limit}, nil
}

func intQuery(r *http.Request, key string, dst *int) error {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrValidation, key, raw)
	}
	*dst = v
	return nil
}

func boolQuery(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean, got %q", domain.ErrValidation, key, raw)
	}
	return &v, nil
}

func stringQuery(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
