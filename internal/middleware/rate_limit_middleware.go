package middleware

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strings"
)

type RateLimitMiddleware struct {
	limiter           *config.RateLimiter
	trustedProxyCIDRs []*net.IPNet
}

func NewRateLimitMiddleware(limiter *config.RateLimiter, cfg *config.AppConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:           limiter,
		trustedProxyCIDRs: parseTrustedProxyCIDRs(cfg.TrustedProxyCIDRs),
	}
}

// Limit throttles per identity: the authenticated user id when present,
// the proxy-aware client IP otherwise. It also records the resolved IP
// in the context for downstream consumers.
func (m *RateLimitMiddleware) Limit(keyName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := m.getIP(r)
			ctx := helper.WithClientIP(r.Context(), ip)

			identifier := ip
			keyPrefix := "ratelimit:ip"
			if user := helper.AuthUserFromContext(ctx); user != nil {
				identifier = user.ID
				keyPrefix = "ratelimit:user"
			}

			key := fmt.Sprintf("%s:%s:%s", keyPrefix, keyName, identifier)

			allowed, retryAfter := m.limiter.Allow(key)
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))

				slog.Warn("Rate limit exceeded", "key", key)
				helper.WriteError(w, helper.NewTooManyRequestsError("Demasiadas solicitudes, intente más tarde"))
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *RateLimitMiddleware) getIP(r *http.Request) string {
	remoteIP := parseIP(r.RemoteAddr)
	if remoteIP == nil {
		return r.RemoteAddr
	}

	if m.isTrustedProxy(remoteIP) {
		if forwardedIP := m.clientIPFromXForwardedFor(r.Header.Get("X-Forwarded-For"), remoteIP); forwardedIP != "" {
			return forwardedIP
		}

		if realIP := parseIPString(r.Header.Get("X-Real-IP")); realIP != "" {
			parsedRealIP := parseIP(realIP)
			if parsedRealIP != nil && !m.isTrustedProxy(parsedRealIP) {
				return parsedRealIP.String()
			}
		}
	}

	return remoteIP.String()
}

func (m *RateLimitMiddleware) isTrustedProxy(ip net.IP) bool {
	for _, network := range m.trustedProxyCIDRs {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func parseTrustedProxyCIDRs(cidrs []string) []*net.IPNet {
	if len(cidrs) == 0 {
		return nil
	}

	out := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			slog.Warn("Ignoring invalid trusted proxy CIDR", "cidr", cidr, "error", err)
			continue
		}
		out = append(out, network)
	}

	return out
}

func (m *RateLimitMiddleware) clientIPFromXForwardedFor(xForwardedFor string, remoteIP net.IP) string {
	forwardedIPs := parseForwardedIPs(xForwardedFor)
	if len(forwardedIPs) == 0 {
		return ""
	}

	chain := make([]net.IP, 0, len(forwardedIPs)+1)
	chain = append(chain, forwardedIPs...)
	chain = append(chain, remoteIP)

	for i := len(chain) - 1; i >= 0; i-- {
		if !m.isTrustedProxy(chain[i]) {
			return chain[i].String()
		}
	}

	return forwardedIPs[0].String()
}

func parseForwardedIPs(xForwardedFor string) []net.IP {
	if xForwardedFor == "" {
		return nil
	}

	parts := strings.Split(xForwardedFor, ",")
	ips := make([]net.IP, 0, len(parts))
	for _, part := range parts {
		if ip := parseIP(strings.TrimSpace(part)); ip != nil {
			ips = append(ips, ip)
		}
	}

	return ips
}

func parseIP(remoteAddr string) net.IP {
	if remoteAddr == "" {
		return nil
	}

	host := remoteAddr
	if parsedHost, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = parsedHost
	}

	host = strings.Trim(host, "[]")
	return net.ParseIP(host)
}

func parseIPString(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	if ip := parseIP(trimmed); ip != nil {
		return ip.String()
	}

	return ""
}
