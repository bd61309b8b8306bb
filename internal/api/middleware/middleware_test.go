package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarovs/uybaho/internal/api/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequestLog_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.RequestLog(testLogger(&buf))(okHandler)
	require.NoError(t, h(c))

	id := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, c.Get("request_id"))
	assert.Contains(t, buf.String(), `"path":"/api/v1/analyze"`)
}

func TestRequestLog_PropagatesRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "my-id-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.RequestLog(testLogger(&buf))(okHandler)
	require.NoError(t, h(c))

	assert.Equal(t, "my-id-123", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "my-id-123")
}

func TestRecovery_PanicReturns500(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.Recovery(testLogger(&buf))(func(echo.Context) error {
		panic("boom")
	})
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRecovery_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.Recovery(testLogger(&buf))(okHandler)
	require.NoError(t, h(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestMetrics_SkipsOperationalPaths(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/healthz")

	h := middleware.Metrics()(okHandler)
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetrics_RecordsRequest(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/analyze")

	h := middleware.Metrics()(okHandler)
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	h := middleware.RateLimit(10, 5)(okHandler)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	e := echo.New()
	h := middleware.RateLimit(0.001, 1)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestRateLimit_ExemptsOperationalPaths(t *testing.T) {
	e := echo.New()
	h := middleware.RateLimit(0.001, 1)(okHandler)

	// Exhaust the bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
