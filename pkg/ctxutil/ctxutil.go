// Package ctxutil carries the request-scoped identity of the caller and the
// request id through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type principalKey struct{}

type requestIDKey struct{}

// Principal is the authenticated caller as asserted by the bearer token.
// Department is the portal department claimed by the token and may be empty.
type Principal struct {
	UserID     uuid.UUID
	Department string
}

// WithPrincipal stores the caller in the context. A principal with a nil
// user id is treated as anonymous by the readers below.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the caller, or false for anonymous requests.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// WithUserID stores a caller that carries no department claim.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return WithPrincipal(ctx, Principal{UserID: id})
}

// UserIDFromCtx returns the caller's user id.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromCtx(ctx)
	return p.UserID, ok
}

// DepartmentFromCtx returns the department claimed by the caller's token.
// It reports false for anonymous callers and for tokens without the claim.
func DepartmentFromCtx(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok || p.Department == "" {
		return "", false
	}
	return p.Department, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
