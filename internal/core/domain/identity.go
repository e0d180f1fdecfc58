package domain

import "context"

// Identity is the authenticated principal of a single request.
type Identity struct {
	Subject string     `json:"subject"`
	Roles   []UserRole `json:"roles"`
}

func (i *Identity) HasRole(role UserRole) bool {
	return HasRole(i.Roles, role)
}

type identityCtxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext returns the identity attached by the authentication filter, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(*Identity)
	if !ok || id == nil {
		return nil, false
	}
	return id, true
}
