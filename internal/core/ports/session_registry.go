package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// SessionRegistry maps opaque bearer tokens to principals across the
// three disjoint kinds. Tokens have no expiry; a principal may hold any
// number of live tokens at once.
type SessionRegistry interface {
	Issue(ctx context.Context, kind domain.PrincipalKind, principalID int64) (string, error)
	// Validate resolves a token or returns domain.ErrUnauthenticated.
	// An unknown token and a malformed token are indistinguishable.
	Validate(ctx context.Context, kind domain.PrincipalKind, token string) (*domain.Principal, error)
	// Revoke is idempotent.
	Revoke(ctx context.Context, kind domain.PrincipalKind, token string) error
}
