package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

type stubUserRepo struct {
	users    map[string]*domain.User
	projects map[int64][]domain.Project
	nextID   int64
	cleared  bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:    make(map[string]*domain.User),
		projects: make(map[int64][]domain.Project),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			t := at
			u.LastLogin = &t
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) CreateProject(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.nextID++
	clone := *project
	clone.ID = r.nextID
	r.projects[clone.UserID] = append(r.projects[clone.UserID], clone)
	out := clone
	return &out, nil
}

func (r *stubUserRepo) ListProjects(_ context.Context, userID int64) ([]domain.Project, error) {
	return r.projects[userID], nil
}

func (r *stubUserRepo) Stats(_ context.Context) (int, int, int, error) {
	return len(r.users), 0, 0, nil
}

func (r *stubUserRepo) ClearData(_ context.Context) error {
	r.users = make(map[string]*domain.User)
	r.projects = make(map[int64][]domain.Project)
	r.cleared = true
	return nil
}

type recordedNotification struct {
	To      string
	Subject string
	Body    string
	UserID  *int64
}

type stubNotifier struct {
	sent []recordedNotification
	err  error
}

func (n *stubNotifier) Notify(_ context.Context, to, subject, body string, userID *int64) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, recordedNotification{To: to, Subject: subject, Body: body, UserID: userID})
	return nil
}

type stubTokenCache struct {
	entries map[string]int64
	flushed bool
}

func newStubTokenCache() *stubTokenCache {
	return &stubTokenCache{entries: make(map[string]int64)}
}

func (c *stubTokenCache) Get(_ context.Context, kind domain.PrincipalKind, token string) (int64, bool) {
	id, ok := c.entries[string(kind)+":"+token]
	return id, ok
}

func (c *stubTokenCache) Put(_ context.Context, kind domain.PrincipalKind, token string, principalID int64) {
	c.entries[string(kind)+":"+token] = principalID
}

func (c *stubTokenCache) Delete(_ context.Context, kind domain.PrincipalKind, token string) {
	delete(c.entries, string(kind)+":"+token)
}

func (c *stubTokenCache) Flush(_ context.Context) {
	c.entries = make(map[string]int64)
	c.flushed = true
}

func testAdmin() AdminCredentials {
	return AdminCredentials{Email: "admin@xgenai.com", Password: "Admin@123"}
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "1234567890",
		Address:  "1 Main St",
		Password: "s3cret",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	notifier := &stubNotifier{}
	svc := NewAccountService(repo, notifier, nil, testAdmin(), zerolog.Nop())

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one welcome notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].To != "alice@example.com" {
		t.Fatalf("welcome sent to %s", notifier.sent[0].To)
	}
	if notifier.sent[0].UserID == nil || *notifier.sent[0].UserID != user.ID {
		t.Fatalf("welcome not linked to user: %+v", notifier.sent[0].UserID)
	}
}

func TestAccountService_Register_MissingFieldsAllListed(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	in := registerInput()
	in.Phone = ""
	in.Password = ""
	_, err := svc.Register(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 missing fields, got %v", ve.Fields)
	}
	msg := ve.Error()
	if !strings.Contains(msg, "phone") || !strings.Contains(msg, "password") {
		t.Fatalf("message does not name every missing field: %q", msg)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAccountService_Register_SucceedsWhenNotifierFails(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("mail down")}
	svc := NewAccountService(newStubUserRepo(), notifier, nil, testAdmin(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register must not fail on notification error, got %v", err)
	}
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAccountService(repo, &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.LastLogin == nil {
		t.Fatalf("expected last login to be set")
	}
}

func TestAccountService_Authenticate_GenericFailure(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := svc.Authenticate(context.Background(), "ghost@example.com", "s3cret")
	_, wrongErr := svc.Authenticate(context.Background(), "alice@example.com", "bad")
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAccountService_AuthenticateAdmin(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	role, err := svc.AuthenticateAdmin(context.Background(), "admin@xgenai.com", "Admin@123")
	if err != nil {
		t.Fatalf("admin authenticate failed: %v", err)
	}
	if role != "admin" {
		t.Fatalf("unexpected role: %s", role)
	}

	if _, err := svc.AuthenticateAdmin(context.Background(), "admin@xgenai.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.AuthenticateAdmin(context.Background(), "other@xgenai.com", "Admin@123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_ClearData_FlushesTokenCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubTokenCache()
	cache.Put(context.Background(), domain.KindUser, "tok", 7)
	svc := NewAccountService(repo, &stubNotifier{}, cache, testAdmin(), zerolog.Nop())

	if err := svc.ClearData(context.Background()); err != nil {
		t.Fatalf("clear data failed: %v", err)
	}
	if !repo.cleared {
		t.Fatalf("expected repository wipe")
	}
	if !cache.flushed {
		t.Fatalf("expected token cache flush")
	}
}

func TestAccountService_AddProject_Validation(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), &stubNotifier{}, nil, testAdmin(), zerolog.Nop())

	_, err := svc.AddProject(context.Background(), 1, "", "", "active")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected name and description reported, got %v", ve.Fields)
	}
}
