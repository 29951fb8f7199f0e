package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrimitra/agrimitra/internal/log"
)

func TestRateLimiter_Burst(t *testing.T) {
	rl := newRateLimiter(1.0, 3)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request beyond burst should be denied")
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := newRateLimiter(1.0, 1)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first IP denied")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second IP should have its own bucket")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	rl := newRateLimiter(0.0001, 1)
	mw := rateLimitMiddleware(rl, false, log.NewNop())
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:12345"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Errorf("Retry-After = %q", w.Header().Get("Retry-After"))
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xRealIP    string
		xff        string
		trustProxy bool
		want       string
	}{
		{"direct", "1.2.3.4:5678", "", "", false, "1.2.3.4"},
		{"proxy headers ignored when untrusted", "1.2.3.4:5678", "9.9.9.9", "", false, "1.2.3.4"},
		{"x-real-ip trusted", "1.2.3.4:5678", "9.9.9.9", "", true, "9.9.9.9"},
		{"xff first hop", "1.2.3.4:5678", "", "8.8.8.8, 7.7.7.7", true, "8.8.8.8"},
		{"invalid header falls through", "1.2.3.4:5678", "not-an-ip", "", true, "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xRealIP != "" {
				req.Header.Set("X-Real-IP", tt.xRealIP)
			}
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := clientIP(req, tt.trustProxy); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
