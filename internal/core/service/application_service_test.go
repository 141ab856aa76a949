package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

type stubAppRepo struct {
	apps   map[int64]*domain.Application
	nextID int64
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[int64]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	r.nextID++
	clone := *app
	clone.ID = r.nextID
	r.apps[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id int64) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *stubAppRepo) List(_ context.Context) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.apps {
		out = append(out, *app)
	}
	return out, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	app, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

type stubInternRepo struct {
	interns map[int64]*domain.Intern
	nextID  int64
}

func newStubInternRepo() *stubInternRepo {
	return &stubInternRepo{interns: make(map[int64]*domain.Intern)}
}

func (r *stubInternRepo) Create(_ context.Context, intern *domain.Intern) (*domain.Intern, error) {
	for _, existing := range r.interns {
		if existing.Email == intern.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	clone := *intern
	clone.ID = r.nextID
	r.interns[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubInternRepo) FindByEmail(_ context.Context, email string) (*domain.Intern, error) {
	for _, intern := range r.interns {
		if intern.Email == email {
			clone := *intern
			return &clone, nil
		}
	}
	return nil, domain.ErrInternNotFound
}

func (r *stubInternRepo) FindByID(_ context.Context, id int64) (*domain.Intern, error) {
	intern, ok := r.interns[id]
	if !ok {
		return nil, domain.ErrInternNotFound
	}
	clone := *intern
	return &clone, nil
}

func (r *stubInternRepo) List(_ context.Context) ([]domain.Intern, error) {
	var out []domain.Intern
	for _, intern := range r.interns {
		out = append(out, *intern)
	}
	return out, nil
}

func applicationInput() ports.ApplicationInput {
	return ports.ApplicationInput{
		Position:   "AI Intern",
		FullName:   "A B",
		Email:      "a@b.com",
		Phone:      "1",
		Address:    "x",
		College:    "c",
		Degree:     "d",
		Semester:   "1",
		Year:       "2025",
		About:      "y",
		ResumeName: "r.pdf",
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	apps := newStubAppRepo()
	notifier := &stubNotifier{}
	svc := NewApplicationService(apps, newStubInternRepo(), notifier, zerolog.Nop())

	app, err := svc.Submit(context.Background(), applicationInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if app.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if app.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected confirmation notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].To != "a@b.com" {
		t.Fatalf("confirmation sent to %s", notifier.sent[0].To)
	}
}

func TestApplicationService_Submit_MissingFieldsAllListed(t *testing.T) {
	svc := NewApplicationService(newStubAppRepo(), newStubInternRepo(), &stubNotifier{}, zerolog.Nop())

	in := applicationInput()
	in.Position = ""
	in.College = ""
	in.ResumeName = ""
	_, err := svc.Submit(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	msg := ve.Error()
	for _, field := range []string{"position", "college", "resumeName"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("message missing field %q: %q", field, msg)
		}
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	apps := newStubAppRepo()
	svc := NewApplicationService(apps, newStubInternRepo(), &stubNotifier{}, zerolog.Nop())

	app, err := svc.Submit(context.Background(), applicationInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), app.ID, "interview"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if apps.apps[app.ID].Status != domain.StatusInterview {
		t.Fatalf("status not applied: %s", apps.apps[app.ID].Status)
	}

	// Transitions are unordered: moving backwards is allowed.
	if err := svc.UpdateStatus(context.Background(), app.ID, "pending"); err != nil {
		t.Fatalf("backwards transition rejected: %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), app.ID, "hired"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), 999, "interview"); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_SelectIntern(t *testing.T) {
	apps := newStubAppRepo()
	interns := newStubInternRepo()
	notifier := &stubNotifier{}
	svc := NewApplicationService(apps, interns, notifier, zerolog.Nop())

	app, err := svc.Submit(context.Background(), applicationInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	notifier.sent = nil

	intern, err := svc.SelectIntern(context.Background(), app.ID, "")
	if err != nil {
		t.Fatalf("select intern failed: %v", err)
	}

	if intern.FullName != app.FullName || intern.Email != app.Email || intern.Position != app.Position {
		t.Fatalf("identity fields not copied: %+v", intern)
	}
	if intern.Status != domain.InternActive {
		t.Fatalf("expected active intern, got %s", intern.Status)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(intern.PasswordHash), []byte("Intern@123")); err != nil {
		t.Fatalf("bootstrap password not applied: %v", err)
	}
	if apps.apps[app.ID].Status != domain.StatusSelected {
		t.Fatalf("application not marked selected: %s", apps.apps[app.ID].Status)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected selection notification, got %d", len(notifier.sent))
	}
	if !strings.Contains(notifier.sent[0].Body, "Intern@123") {
		t.Fatalf("credentials email missing bootstrap password")
	}
}

func TestApplicationService_SelectIntern_CustomPassword(t *testing.T) {
	apps := newStubAppRepo()
	svc := NewApplicationService(apps, newStubInternRepo(), &stubNotifier{}, zerolog.Nop())

	app, err := svc.Submit(context.Background(), applicationInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	intern, err := svc.SelectIntern(context.Background(), app.ID, "Chosen@456")
	if err != nil {
		t.Fatalf("select intern failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(intern.PasswordHash), []byte("Chosen@456")); err != nil {
		t.Fatalf("custom password not applied: %v", err)
	}
}

func TestApplicationService_SelectIntern_NotFound(t *testing.T) {
	svc := NewApplicationService(newStubAppRepo(), newStubInternRepo(), &stubNotifier{}, zerolog.Nop())

	if _, err := svc.SelectIntern(context.Background(), 123, ""); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
