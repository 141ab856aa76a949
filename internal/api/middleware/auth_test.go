package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

type stubRegistry struct {
	tokens map[string]*domain.Principal
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{tokens: make(map[string]*domain.Principal)}
}

func (r *stubRegistry) Issue(_ context.Context, kind domain.PrincipalKind, principalID int64) (string, error) {
	token := string(kind) + "-token"
	r.tokens[string(kind)+":"+token] = &domain.Principal{Kind: kind, ID: principalID}
	return token, nil
}

func (r *stubRegistry) Validate(_ context.Context, kind domain.PrincipalKind, token string) (*domain.Principal, error) {
	p, ok := r.tokens[string(kind)+":"+token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

func (r *stubRegistry) Revoke(_ context.Context, kind domain.PrincipalKind, token string) error {
	delete(r.tokens, string(kind)+":"+token)
	return nil
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*domain.Principal, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var principal *domain.Principal
	err := mw(func(c echo.Context) error {
		principal, _ = c.Get("principal").(*domain.Principal)
		return c.NoContent(http.StatusOK)
	})(c)
	return principal, err
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(newStubRegistry(), domain.KindUser)

	_, err := invoke(t, mw, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BearerToken(t *testing.T) {
	reg := newStubRegistry()
	token, _ := reg.Issue(context.Background(), domain.KindUser, 42)
	mw := Auth(reg, domain.KindUser)

	principal, err := invoke(t, mw, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if principal == nil || principal.ID != 42 {
		t.Fatalf("principal not injected: %+v", principal)
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	mw := Auth(newStubRegistry(), domain.KindUser)

	if _, err := invoke(t, mw, "Bearer nope"); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_BareTokenAdminOnly(t *testing.T) {
	reg := newStubRegistry()
	adminToken, _ := reg.Issue(context.Background(), domain.KindAdmin, 1)
	userToken, _ := reg.Issue(context.Background(), domain.KindUser, 2)

	// The legacy console sends the admin token without a scheme.
	if _, err := invoke(t, Auth(reg, domain.KindAdmin), adminToken); err != nil {
		t.Fatalf("bare admin token rejected: %v", err)
	}

	// User routes insist on the Bearer scheme.
	_, err := invoke(t, Auth(reg, domain.KindUser), userToken)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bare user token, got %v", err)
	}
}

func TestAuth_KindMismatch(t *testing.T) {
	reg := newStubRegistry()
	token, _ := reg.Issue(context.Background(), domain.KindIntern, 5)

	if _, err := invoke(t, Auth(reg, domain.KindUser), "Bearer "+token); err != domain.ErrUnauthenticated {
		t.Fatalf("intern token must not pass user auth, got %v", err)
	}
}
