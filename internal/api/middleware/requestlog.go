package middleware

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"

	// RequestIDKey is the echo context key holding the request id.
	RequestIDKey = "request_id"
)

// RequestLog returns Echo middleware that writes one structured line per
// request. The inbound X-Request-ID is reused when present, otherwise a
// UUID is generated; either way it is echoed on the response and stored
// under RequestIDKey.
//
// Probe paths log their first success and every failure. Repeated
// successes stay quiet until the probe fails again.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	probes := map[string]*atomic.Bool{
		"/healthz": {},
		"/readyz":  {},
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(RequestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			status := responseStatus(c, err)
			failed := status >= http.StatusBadRequest

			if seen, ok := probes[req.URL.Path]; ok {
				switch {
				case failed:
					seen.Store(false)
				case seen.Swap(true):
					return err
				}
			}

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("route", c.Path()),
				slog.Int("status", status),
				slog.Int64("bytes_out", c.Response().Size),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("remote_ip", c.RealIP()),
				slog.String(RequestIDKey, reqID),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case failed:
				level = slog.LevelWarn
			}

			log.LogAttrs(req.Context(), level, "request", attrs...)
			return err
		}
	}
}
