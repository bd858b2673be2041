package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type contextKey string

const loggerKey = contextKey("logger")

// requestIDHeader is echoed back on every response.
const requestIDHeader = "X-Request-ID"

// requestLogger attaches a request-scoped logger carrying the request id to
// the context and logs the outcome once the request completes. An incoming
// X-Request-ID is reused.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		logger := h.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		w.Header().Set(requestIDHeader, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey, logger)))

		logger.Info("request completed",
			slog.Int("status", ww.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	})
}

// rateLimit rejects clients that exceeded the configured rate with 429.
// Clients are keyed by the socket address unless the handler trusts a proxy.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		lctx, err := h.limiter.Get(r.Context(), ip)
		if err != nil {
			loggerFrom(r.Context()).Error("rate limit check failed",
				slog.String("ip", ip),
				slog.Any("error", err),
			)
			writeDetail(w, http.StatusInternalServerError, "internal error")
			return
		}
		if lctx.Reached {
			loggerFrom(r.Context()).Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.Int64("limit", lctx.Limit),
			)
			writeDetail(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggerFrom returns the request-scoped logger, or slog.Default when the
// request did not pass through requestLogger.
func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
