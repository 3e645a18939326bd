package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-catalog/internal/metrics"
)

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/products", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "no panic should produce no log output")
}

func TestRecovery_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		panicValue any
		wantLog    []string
	}{
		{
			name:       "string value",
			method:     http.MethodGet,
			path:       "/api/v1/shop/men",
			panicValue: "test panic",
			wantLog:    []string{"panic recovered", "test panic", "path=/api/v1/shop/men", "request_id=req-1"},
		},
		{
			name:       "non-string value",
			method:     http.MethodPost,
			path:       "/api/v1/admin/brands",
			panicValue: 42,
			wantLog:    []string{"error=42", "method=POST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(RequestIDKey, "req-1")

			handler := Recovery(logger)(func(_ echo.Context) error {
				panic(tt.panicValue)
			})

			err := handler(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "internal server error")

			logOutput := buf.String()
			for _, want := range tt.wantLog {
				assert.Contains(t, logOutput, want)
			}
		})
	}
}

func TestRecovery_CommittedResponse(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/images/a.jpg", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusOK)
		_, _ = c.Response().Write([]byte("partial"))
		panic("write failed midway")
	})

	err := handler(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRecovery_CountsPanics(t *testing.T) {
	before := testutil.ToFloat64(metrics.PanicsRecoveredTotal)

	e := echo.New()
	c := e.NewContext(
		httptest.NewRequest(http.MethodGet, "/api/v1/shop/women", http.NoBody),
		httptest.NewRecorder(),
	)

	handler := Recovery(slog.New(slog.DiscardHandler))(func(_ echo.Context) error {
		panic("boom")
	})
	require.NoError(t, handler(c))

	assert.GreaterOrEqual(t, testutil.ToFloat64(metrics.PanicsRecoveredTotal)-before, 1.0)
}
