package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

type stubSessionRepo struct {
	tokens map[string]int64
	finds  int
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{tokens: make(map[string]int64)}
}

func (r *stubSessionRepo) key(kind domain.PrincipalKind, token string) string {
	return string(kind) + ":" + token
}

func (r *stubSessionRepo) Insert(_ context.Context, kind domain.PrincipalKind, principalID int64, token string) error {
	r.tokens[r.key(kind, token)] = principalID
	return nil
}

func (r *stubSessionRepo) FindPrincipal(_ context.Context, kind domain.PrincipalKind, token string) (int64, error) {
	r.finds++
	id, ok := r.tokens[r.key(kind, token)]
	if !ok {
		return 0, domain.ErrUnauthenticated
	}
	return id, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, kind domain.PrincipalKind, token string) error {
	delete(r.tokens, r.key(kind, token))
	return nil
}

func TestSessionRegistry_IssueValidateRevoke(t *testing.T) {
	repo := newStubSessionRepo()
	reg := NewSessionRegistry(repo, nil, zerolog.Nop())
	ctx := context.Background()

	token, err := reg.Issue(ctx, domain.KindUser, 42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(token))
	}

	principal, err := reg.Validate(ctx, domain.KindUser, token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if principal.ID != 42 || principal.Kind != domain.KindUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if err := reg.Revoke(ctx, domain.KindUser, token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := reg.Validate(ctx, domain.KindUser, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after revoke, got %v", err)
	}

	// Revoking again is a no-op, not an error.
	if err := reg.Revoke(ctx, domain.KindUser, token); err != nil {
		t.Fatalf("second revoke failed: %v", err)
	}
}

func TestSessionRegistry_KindsAreDisjoint(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	token, err := reg.Issue(ctx, domain.KindIntern, 9)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := reg.Validate(ctx, domain.KindUser, token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("intern token must not validate as user, got %v", err)
	}
}

func TestSessionRegistry_AdminTokensInMemory(t *testing.T) {
	repo := newStubSessionRepo()
	reg := NewSessionRegistry(repo, nil, zerolog.Nop())
	ctx := context.Background()

	// Two consecutive logins yield distinct, simultaneously valid tokens.
	first, err := reg.Issue(ctx, domain.KindAdmin, 1)
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	second, err := reg.Issue(ctx, domain.KindAdmin, 1)
	if err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens")
	}

	for _, token := range []string{first, second} {
		principal, err := reg.Validate(ctx, domain.KindAdmin, token)
		if err != nil {
			t.Fatalf("validate failed: %v", err)
		}
		if principal.Role != "admin" {
			t.Fatalf("unexpected role: %s", principal.Role)
		}
	}

	// Admin tokens never touch the persistent store.
	if len(repo.tokens) != 0 {
		t.Fatalf("admin tokens leaked into repository")
	}

	if err := reg.Revoke(ctx, domain.KindAdmin, first); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := reg.Validate(ctx, domain.KindAdmin, first); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after revoke, got %v", err)
	}
	if _, err := reg.Validate(ctx, domain.KindAdmin, second); err != nil {
		t.Fatalf("second token must survive revoking the first: %v", err)
	}
}

func TestSessionRegistry_EmptyAndUnknownTokens(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionRepo(), nil, zerolog.Nop())
	ctx := context.Background()

	if _, err := reg.Validate(ctx, domain.KindUser, ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}
	if _, err := reg.Validate(ctx, domain.KindUser, "deadbeef"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for unknown token, got %v", err)
	}
}

func TestSessionRegistry_CacheReadThrough(t *testing.T) {
	repo := newStubSessionRepo()
	cache := newStubTokenCache()
	reg := NewSessionRegistry(repo, cache, zerolog.Nop())
	ctx := context.Background()

	token, err := reg.Issue(ctx, domain.KindUser, 7)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := reg.Validate(ctx, domain.KindUser, token); err != nil {
		t.Fatalf("first validate failed: %v", err)
	}
	if repo.finds != 1 {
		t.Fatalf("expected one repository lookup, got %d", repo.finds)
	}

	// Second validation is served from the cache.
	if _, err := reg.Validate(ctx, domain.KindUser, token); err != nil {
		t.Fatalf("second validate failed: %v", err)
	}
	if repo.finds != 1 {
		t.Fatalf("expected cache hit, repository lookups: %d", repo.finds)
	}

	// Revocation removes the cache entry before the row.
	if err := reg.Revoke(ctx, domain.KindUser, token); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, ok := cache.Get(ctx, domain.KindUser, token); ok {
		t.Fatalf("cache entry survived revocation")
	}
}
