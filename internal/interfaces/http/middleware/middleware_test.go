package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthspec/synthspec/internal/infrastructure/monitoring/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var captured string
	r.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesCallerID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied", rec.Header().Get(RequestIDHeader))
}

func TestRecovery_Returns500JSON(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logging.NewNopLogger()))
	r.GET("/boom", func(*gin.Context) { panic("kaput") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMMON_001")
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/x", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTokenBucketLimiter_BurstThenDeny(t *testing.T) {
	l := NewTokenBucketLimiter(1, 2, 0)
	defer l.Stop()

	ok1, _ := l.Allow("k")
	ok2, _ := l.Allow("k")
	ok3, info := l.Allow("k")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)
	assert.Zero(t, info.Remaining)

	// Separate keys get separate buckets.
	ok, _ := l.Allow("other")
	assert.True(t, ok)
}

func TestTokenBucketLimiter_Refills(t *testing.T) {
	l := NewTokenBucketLimiter(100, 1, 0)
	defer l.Stop()

	ok, _ := l.Allow("k")
	require.True(t, ok)
	ok, _ = l.Allow("k")
	require.False(t, ok)

	time.Sleep(25 * time.Millisecond)
	ok, _ = l.Allow("k")
	assert.True(t, ok)
}

func TestTokenBucketLimiter_CoercesInvalidParams(t *testing.T) {
	l := NewTokenBucketLimiter(0, 0, 0)
	defer l.Stop()

	ok, info := l.Allow("k")
	assert.True(t, ok)
	assert.Equal(t, 1, info.Limit)
	// ResetAt must be a finite time in the near future, not +Inf nanoseconds.
	assert.Less(t, time.Until(info.ResetAt), 2*time.Second)

	ok, _ = l.Allow("k")
	assert.False(t, ok)
}

func TestRateLimit_DenialAndHeaders(t *testing.T) {
	l := NewTokenBucketLimiter(1, 1, 0)
	defer l.Stop()

	r := gin.New()
	r.Use(RateLimit(l))
	r.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "COMMON_004")

	// Health checks bypass the limiter even when it is exhausted.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStop_IsIdempotentPerLimiter(t *testing.T) {
	l := NewTokenBucketLimiter(1, 1, time.Minute)
	assert.NotPanics(t, func() { l.Stop() })
}
