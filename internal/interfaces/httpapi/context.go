package httpapi

import "context"

// Principal identifies the caller of an authorized route. The backend serves
// a single dashboard operator, so a verified token maps to one principal.
type Principal struct {
	UserID string
	Name   string
}

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}
