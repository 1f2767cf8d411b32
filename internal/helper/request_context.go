package helper

import (
	"context"

	"NovedadesAPI/internal/model"
)

type requestContextKey string

const (
	authUserContextKey requestContextKey = "auth_user"
	clientIPContextKey requestContextKey = "client_ip"
)

// PublicUserID is the synthetic identity attached to anonymous
// submissions in responses and documents.
const PublicUserID = "publico"

func WithAuthUser(ctx context.Context, user *model.AuthUser) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, authUserContextKey, user)
}

// AuthUserFromContext returns the authenticated identity, or nil for an
// anonymous request.
func AuthUserFromContext(ctx context.Context) *model.AuthUser {
	if ctx == nil {
		return nil
	}
	user, _ := ctx.Value(authUserContextKey).(*model.AuthUser)
	return user
}

// WithClientIP records the proxy-aware client address resolved at the
// edge, so downstream consumers (captcha) never re-derive it.
func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, clientIPContextKey, ip)
}

func ClientIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(clientIPContextKey).(string)
	return ip
}
