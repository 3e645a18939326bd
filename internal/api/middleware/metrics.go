// Package middleware provides Echo middleware for the catalog API server.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
)

// unmatchedRoute labels requests that matched no registered route, so
// scanners probing random paths cannot grow label cardinality.
const unmatchedRoute = "unmatched"

// Probe and scrape paths stay out of the request histogram. The probes
// drive their own up/down gauges instead.
var (
	metricsSkipPaths = map[string]struct{}{
		"/metrics": {},
		"/healthz": {},
		"/readyz":  {},
	}
	probeGauges = map[string]prometheus.Gauge{
		"/healthz": metrics.HealthzUp,
		"/readyz":  metrics.ReadyzUp,
	}
)

// Metrics returns Echo middleware that records request duration and count
// per method, route template and final status code.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := responseStatus(c, err)

			route := routeLabel(c, err)
			if _, skip := metricsSkipPaths[route]; skip {
				if g, ok := probeGauges[route]; ok {
					g.Set(boolGauge(status < http.StatusMultipleChoices))
				}
				return err
			}

			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// responseStatus reports the status the client will see. A handler error
// has not been rendered yet when the middleware chain unwinds, so the
// status is taken from the error instead of the response.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func routeLabel(c echo.Context, err error) string {
	if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
		return unmatchedRoute
	}
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
