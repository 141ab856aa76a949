package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

const tokenBytes = 32

// SessionRegistry maps opaque bearer tokens to principals. User and
// intern tokens are persisted; admin tokens live in an in-process map and
// are lost on restart. A token cache, when present, fronts the table
// lookup for the persisted kinds.
type SessionRegistry struct {
	repo  ports.SessionRepository
	cache ports.TokenCache
	log   zerolog.Logger

	mu    sync.RWMutex
	admin map[string]int64
}

func NewSessionRegistry(repo ports.SessionRepository, cache ports.TokenCache, log zerolog.Logger) *SessionRegistry {
	return &SessionRegistry{
		repo:  repo,
		cache: cache,
		log:   log,
		admin: make(map[string]int64),
	}
}

// Issue generates a fresh token for the principal. Collisions across the
// 256-bit token space are treated as negligible; there is no retry loop.
func (r *SessionRegistry) Issue(ctx context.Context, kind domain.PrincipalKind, principalID int64) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}

	if kind == domain.KindAdmin {
		r.mu.Lock()
		r.admin[token] = principalID
		r.mu.Unlock()
		return token, nil
	}

	if err := r.repo.Insert(ctx, kind, principalID, token); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Validate resolves token to its principal. Unknown, revoked, and
// malformed tokens all yield domain.ErrUnauthenticated.
func (r *SessionRegistry) Validate(ctx context.Context, kind domain.PrincipalKind, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	if kind == domain.KindAdmin {
		r.mu.RLock()
		id, ok := r.admin[token]
		r.mu.RUnlock()
		if !ok {
			return nil, domain.ErrUnauthenticated
		}
		return &domain.Principal{Kind: kind, ID: id, Role: "admin"}, nil
	}

	if r.cache != nil {
		if id, ok := r.cache.Get(ctx, kind, token); ok {
			return &domain.Principal{Kind: kind, ID: id}, nil
		}
	}

	id, err := r.repo.FindPrincipal(ctx, kind, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	if r.cache != nil {
		r.cache.Put(ctx, kind, token, id)
	}

	return &domain.Principal{Kind: kind, ID: id}, nil
}

// Revoke deletes the token. Revoking an absent token is a no-op.
func (r *SessionRegistry) Revoke(ctx context.Context, kind domain.PrincipalKind, token string) error {
	if token == "" {
		return nil
	}

	if kind == domain.KindAdmin {
		r.mu.Lock()
		delete(r.admin, token)
		r.mu.Unlock()
		return nil
	}

	// Cache entry goes first so a stale hit cannot resurrect the session
	// between the two deletes.
	if r.cache != nil {
		r.cache.Delete(ctx, kind, token)
	}
	if err := r.repo.Delete(ctx, kind, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
