package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard-api/internal/models"
)

// Scopes granted to an authenticated caller.
const (
	ScopeSelf  = "self"
	ScopeAdmin = "admin"
)

// Identity is the authenticated caller bound to a request.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.UserRole
	Scopes []string
}

// NewIdentity derives the identity and its scopes from a stored user.
func NewIdentity(user *models.User) Identity {
	scopes := []string{ScopeSelf}
	if user.Role == models.RoleAdmin {
		scopes = append(scopes, ScopeAdmin)
	}
	return Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Scopes: scopes,
	}
}

// HasScope reports whether the identity was granted scope.
func (i Identity) HasScope(scope string) bool {
	for _, s := range i.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, if any.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
