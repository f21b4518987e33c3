package common

import (
	"context"
)

// UserContext holds the authenticated account identity for a request.
// It is populated by the bearer-token middleware after JWT validation.
// When absent (nil), the request is anonymous; handlers that require an
// account reject such requests.
type UserContext struct {
	UserID   string
	Username string
}

type contextKey int

const userContextKey contextKey = iota

// WithUserContext stores a UserContext in the request context.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFromContext retrieves the UserContext from context, or nil if absent.
func UserContextFromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(userContextKey).(*UserContext)
	return uc
}

// ResolveUserID returns the UserID from context, or empty when the request
// is anonymous. Used by storage operations that need an owner scope.
func ResolveUserID(ctx context.Context) string {
	if uc := UserContextFromContext(ctx); uc != nil {
		return uc.UserID
	}
	return ""
}
