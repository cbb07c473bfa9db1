// Package middleware provides the HTTP middleware for the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route parameters worth surfacing in the request log, mapped to their
// structured field names.
var loggedParams = map[string]string{
	"uploadId": "upload_id",
	"rewardId": "reward_id",
	"userId":   "user_id",
}

// NewStructuredLogger logs one line per request, carrying the upload, reward,
// or user identifier the route addresses so a record can be traced through
// the API log by id. Client errors log as warnings, server errors as errors.
func NewStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("latency", time.Since(start)),
				}
				// URLParams are populated by the time the handler returns.
				if rctx := chi.RouteContext(r.Context()); rctx != nil {
					for i, key := range rctx.URLParams.Keys {
						if field, ok := loggedParams[key]; ok {
							attrs = append(attrs, slog.String(field, rctx.URLParams.Values[i]))
						}
					}
				}

				switch {
				case ww.Status() >= 500:
					logger.Error("request failed", attrs...)
				case ww.Status() >= 400:
					logger.Warn("request rejected", attrs...)
				default:
					logger.Info("request completed", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
