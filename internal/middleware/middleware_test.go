package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"integra-recife/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), Config{})

	var seen string
	r := gin.New()
	r.Use(m.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		got := w.Header().Get(RequestIDHeader)
		if got == "" {
			t.Fatalf("expected a generated request id")
		}
		if seen != got {
			t.Errorf("context id = %q, header id = %q", seen, got)
		}
	})

	t.Run("Propagated from caller", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("header id = %q, want abc-123", got)
		}
		if seen != "abc-123" {
			t.Errorf("context id = %q, want abc-123", seen)
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 6/min gives a burst of one request per client.
	m := New(log.NewNop(), Config{RequestsPerMin: 6})

	r := gin.New()
	r.POST("/transition", m.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(remote string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/transition", nil)
		req.RemoteAddr = remote
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", code)
	}
	if code := do("10.0.0.1:1001"); code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", code)
	}
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("other client = %d, want 200", code)
	}
}

func TestNewRateLimiterBurst(t *testing.T) {
	tests := []struct {
		perMin int
		burst  int
	}{
		{1, 1},
		{9, 1},
		{60, 6},
	}
	for _, tt := range tests {
		if got := newRateLimiter(tt.perMin).burst; got != tt.burst {
			t.Errorf("newRateLimiter(%d).burst = %d, want %d", tt.perMin, got, tt.burst)
		}
	}
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(6) // burst 1, one token every 10s

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1 for a new client with burst 1", got)
	}
}
