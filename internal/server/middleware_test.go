package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/metrics"
)

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/members/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	router := newTestRouter(MetricsMiddleware())
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/members/:id", "200")
	before := testutil.ToFloat64(counter)

	w := serve(router, http.MethodGet, "/members/42")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_Unmatched(t *testing.T) {
	router := newTestRouter(MetricsMiddleware())
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	serve(router, http.MethodGet, "/nope")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRequestLoggingMiddleware(t *testing.T) {
	router := newTestRouter(RequestLoggingMiddleware())

	w := serve(router, http.MethodGet, "/members/1")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestRouter(RateLimitMiddleware(1, 2))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/members/1").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/members/1").Code)

	w := serve(router, http.MethodGet, "/members/1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	router := newTestRouter(RateLimitMiddleware(0, 0))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/members/1").Code)
	}
}

func TestRateLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, 5, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(30 * time.Second)
	rl.Allow("10.0.0.2")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, rl.Prune())
}

func TestCorsMiddleware(t *testing.T) {
	router := newTestRouter(corsMiddleware())

	w := serve(router, http.MethodGet, "/members/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
}

func TestCorsMiddleware_OPTIONS(t *testing.T) {
	router := newTestRouter(corsMiddleware())

	w := serve(router, http.MethodOptions, "/members/1")

	assert.Equal(t, http.StatusNoContent, w.Code)
}
