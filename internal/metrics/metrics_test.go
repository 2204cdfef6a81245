package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveEmotionRequest(t *testing.T) {
	m := New()

	m.ObserveEmotionRequest("ok", 120*time.Millisecond)
	m.ObserveEmotionRequest("ok", 80*time.Millisecond)
	m.ObserveEmotionRequest("blank", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EmotionRequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmotionRequestsTotal.WithLabelValues("blank")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EmotionRequestsTotal.WithLabelValues("error")))
}

func TestObservePublish(t *testing.T) {
	m := New()

	m.ObservePublish(nil)
	m.ObservePublish(errors.New("broker down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesPublished.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesPublished.WithLabelValues("error")))
}

func TestMiddleware_RecordsRequests(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/emotionDetector", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})
	e.GET("/health/live", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/emotionDetector", "/boom", "/health/live"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/emotionDetector", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/boom", "500")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/health/live", "200")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveEmotionRequest("ok", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `emotion_detector_emotion_service_requests_total{outcome="ok"} 1`)
}
