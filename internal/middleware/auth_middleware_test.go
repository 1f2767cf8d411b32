package middleware

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"NovedadesAPI/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testJWTSecret = "test-secret"

func identifyRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *model.AuthUser) {
	t.Helper()

	m := NewAuthMiddleware(&config.AppConfig{JWTSecret: testJWTSecret})

	var captured *model.AuthUser
	handler := m.Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = helper.AuthUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/reportes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestIdentifyMissingHeaderIsAnonymous(t *testing.T) {
	rec, user := identifyRequest(t, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if user != nil {
		t.Fatalf("expected anonymous request, got user %+v", user)
	}
}

func TestIdentifyValidToken(t *testing.T) {
	token, err := helper.GenerateJWT(testJWTSecret, "user-1", model.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	rec, user := identifyRequest(t, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if user == nil {
		t.Fatal("expected an authenticated user")
	}
	if user.ID != "user-1" || user.Role != model.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

func TestIdentifyRejectsBadTokens(t *testing.T) {
	wrongSecret, err := helper.GenerateJWT("another-secret", "user-1", "", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	expired, err := helper.GenerateJWT(testJWTSecret, "user-1", "", -time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	cases := map[string]string{
		"malformed header": "Bearer",
		"not bearer":       "Basic abc",
		"garbage token":    "Bearer not.a.jwt",
		"wrong secret":     "Bearer " + wrongSecret,
		"expired token":    "Bearer " + expired,
	}

	for name, header := range cases {
		rec, user := identifyRequest(t, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected %d, got %d", name, http.StatusUnauthorized, rec.Code)
		}
		if user != nil {
			t.Fatalf("%s: handler must not run with an identity", name)
		}
	}
}
