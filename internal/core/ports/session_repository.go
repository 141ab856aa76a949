package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// SessionRepository persists bearer tokens for the user and intern
// principal kinds. Admin sessions never reach this interface; they are
// process-local by design.
type SessionRepository interface {
	Insert(ctx context.Context, kind domain.PrincipalKind, principalID int64, token string) error
	// FindPrincipal resolves token to the owning principal id, or
	// domain.ErrUnauthenticated when the token is unknown.
	FindPrincipal(ctx context.Context, kind domain.PrincipalKind, token string) (int64, error)
	// Delete is idempotent; deleting an absent token is not an error.
	Delete(ctx context.Context, kind domain.PrincipalKind, token string) error
}

// TokenCache is an optional read-through cache in front of the session
// table. Implementations must treat a miss and an error identically from
// the caller's point of view: fall back to the repository.
type TokenCache interface {
	Get(ctx context.Context, kind domain.PrincipalKind, token string) (int64, bool)
	Put(ctx context.Context, kind domain.PrincipalKind, token string, principalID int64)
	Delete(ctx context.Context, kind domain.PrincipalKind, token string)
	// Flush drops every cached token. Used when session rows are bulk-deleted.
	Flush(ctx context.Context)
}
