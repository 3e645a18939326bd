package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
)

// stackSize bounds the logged goroutine stack.
const stackSize = 8 << 10

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request id and route, and returns a 500 to the client
// unless the handler already started the response.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, stackSize)
				n := runtime.Stack(buf, false)
				metrics.PanicsRecoveredTotal.Inc()

				req := c.Request()
				reqID, _ := c.Get(RequestIDKey).(string)
				log.ErrorContext(req.Context(), "panic recovered",
					"error", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"route", c.Path(),
					"request_id", reqID,
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
