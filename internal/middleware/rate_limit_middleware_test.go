package middleware

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"
)
func newSubmitLimiter(t *testing.T) *RateLimitMiddleware {
	t.Helper()

	cfg := &config.AppConfig{
		SubmitRateLimitSeconds: 60,
		TrustedProxyCIDRs:      []string{"10.0.0.0/8"},
	}
	limiter := config.NewRateLimiter(cfg)
	t.Cleanup(limiter.Stop)

	return NewRateLimitMiddleware(limiter, cfg)
}

func submitRequest(handler http.Handler, remoteAddr string, user *model.AuthUser) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/reportes", nil)
	req.RemoteAddr = remoteAddr
	if user != nil {
		req = req.WithContext(helper.WithAuthUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLimitThrottlesRepeatSubmitterByIP(t *testing.T) {
	m := newSubmitLimiter(t)
	handler := m.Limit("submit")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	if rec := submitRequest(handler, "198.51.100.20:1234", nil); rec.Code != http.StatusCreated {
		t.Fatalf("first report expected %d, got %d", http.StatusCreated, rec.Code)
	}

	rec := submitRequest(handler, "198.51.100.20:4321", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second report expected %d, got %d", http.StatusTooManyRequests, rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("throttled response must carry Retry-After")
	}

	// A different reporter keeps their own allowance.
	if rec := submitRequest(handler, "198.51.100.21:1234", nil); rec.Code != http.StatusCreated {
		t.Fatalf("other client expected %d, got %d", http.StatusCreated, rec.Code)
	}
}

func TestLimitKeysAuthenticatedSubmitterByUserID(t *testing.T) {
	m := newSubmitLimiter(t)
	handler := m.Limit("submit")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	user := &model.AuthUser{ID: "user-1", Role: model.RoleAdmin}

	if rec := submitRequest(handler, "198.51.100.20:1234", user); rec.Code != http.StatusCreated {
		t.Fatalf("first report expected %d, got %d", http.StatusCreated, rec.Code)
	}

	// Same user from a different address is still one identity.
	if rec := submitRequest(handler, "198.51.100.30:1234", user); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected %d for the same user, got %d", http.StatusTooManyRequests, rec.Code)
	}
}

func TestGetIPUntrustedRemote(t *testing.T) {
	m := &RateLimitMiddleware{
		trustedProxyCIDRs: parseTrustedProxyCIDRs([]string{"10.0.0.0/8"}),
	}

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.20:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.1")

	got := m.getIP(req)
	want := "198.51.100.20"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGetIPTrustedProxyUsesRightMostUntrusted(t *testing.T) {
	m := &RateLimitMiddleware{
		trustedProxyCIDRs: parseTrustedProxyCIDRs([]string{"10.0.0.0/8"}),
	}

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2, 198.51.100.10")

	got := m.getIP(req)
	want := "198.51.100.10"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGetIPTrustedProxySkipsTrustedChain(t *testing.T) {
	m := &RateLimitMiddleware{
		trustedProxyCIDRs: parseTrustedProxyCIDRs([]string{"10.0.0.0/8"}),
	}

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.10, 10.1.1.1")

	got := m.getIP(req)
	want := "203.0.113.10"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestGetIPTrustedProxyFallbackToXRealIP(t *testing.T) {
	m := &RateLimitMiddleware{
		trustedProxyCIDRs: parseTrustedProxyCIDRs([]string{"10.0.0.0/8"}),
	}

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Real-IP", "198.51.100.11")

	got := m.getIP(req)
	want := "198.51.100.11"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
