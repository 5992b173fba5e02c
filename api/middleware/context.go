package middleware

import "context"

type contextKey string

const (
	ctxCartSession contextKey = "cart_session"
	ctxEditor      contextKey = "editor"
)

// WithCartSession seeds the context, used by tests and the CartSession
// middleware.
func WithCartSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, ctxCartSession, session)
}

func CartSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartSession).(string); ok {
		return v
	}
	return ""
}

func IsEditorContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, ok := ctx.Value(ctxEditor).(bool)
	return ok && v
}
