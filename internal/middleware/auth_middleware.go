package middleware

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"net/http"
	"strings"
)

type AuthMiddleware struct {
	cfg *config.AppConfig
}

func NewAuthMiddleware(cfg *config.AppConfig) *AuthMiddleware {
	return &AuthMiddleware{
		cfg: cfg,
	}
}

// Identify resolves the optional Bearer identity. A missing header means
// an anonymous request and passes through; a header that is present but
// unverifiable is rejected, never silently downgraded.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		user, err := helper.ParseJWT(m.cfg.JWTSecret, parts[1])
		if err != nil {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		next.ServeHTTP(w, r.WithContext(helper.WithAuthUser(r.Context(), user)))
	})
}
