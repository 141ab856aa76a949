package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/xgenai/careers-platform/internal/api/metrics"
	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// defaultInternPassword is the bootstrap credential used when the admin
// does not supply one. The intern is expected to change it.
const defaultInternPassword = "Intern@123"

// ApplicationService owns the application lifecycle: submission, review,
// and promotion to intern.
type ApplicationService struct {
	apps     ports.ApplicationRepository
	interns  ports.InternRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	interns ports.InternRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, interns: interns, notifier: notifier, log: log}
}

// Submit validates and persists a new application with status "pending".
// Every missing required field is reported, not just the first.
func (s *ApplicationService) Submit(ctx context.Context, in ports.ApplicationInput) (*domain.Application, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"position", in.Position},
		{"fullName", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
		{"college", in.College},
		{"degree", in.Degree},
		{"semester", in.Semester},
		{"year", in.Year},
		{"about", in.About},
		{"resumeName", in.ResumeName},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	app := &domain.Application{
		Position:   in.Position,
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		College:    in.College,
		Degree:     in.Degree,
		Semester:   in.Semester,
		Year:       in.Year,
		About:      in.About,
		ResumeName: in.ResumeName,
		LinkedIn:   in.LinkedIn,
		GitHub:     in.GitHub,
		Status:     domain.StatusPending,
		AppliedAt:  time.Now().UTC(),
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues(created.Position).Inc()
	s.log.Info().Int64("application_id", created.ID).Str("position", created.Position).Msg("application submitted")

	if err := s.notifier.Notify(ctx, created.Email,
		fmt.Sprintf("Application Received - %s", created.Position),
		applicationReceivedBody(created), nil); err != nil {
		s.log.Warn().Err(err).Int64("application_id", created.ID).Msg("confirmation notification failed")
	}

	return created, nil
}

func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.apps.List(ctx)
}

// UpdateStatus overwrites the status unconditionally once the value is
// confirmed to be in the closed set. Any stage may be set from any other;
// the console owns the pipeline and manual overrides are allowed.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status string) error {
	next := domain.ApplicationStatus(status)
	if !next.IsValid() {
		return domain.ErrInvalidStatus
	}

	if err := s.apps.UpdateStatus(ctx, id, next); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(status).Inc()
	s.log.Info().Int64("application_id", id).Str("status", status).Msg("application status updated")
	return nil
}

// SelectIntern copies the application's identity fields into a new intern
// account, marks the application "selected", and emails the bootstrap
// password to the candidate.
func (s *ApplicationService) SelectIntern(ctx context.Context, applicationID int64, defaultPassword string) (*domain.Intern, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	password := defaultPassword
	if password == "" {
		password = defaultInternPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("select intern: hash password: %w", err)
	}

	now := time.Now().UTC()
	intern := &domain.Intern{
		ApplicationID: app.ID,
		FullName:      app.FullName,
		Email:         app.Email,
		PasswordHash:  string(hash),
		Position:      app.Position,
		College:       app.College,
		StartDate:     now,
		Status:        domain.InternActive,
		CreatedAt:     now,
	}

	created, err := s.interns.Create(ctx, intern)
	if err != nil {
		return nil, fmt.Errorf("select intern: %w", err)
	}

	if err := s.apps.UpdateStatus(ctx, app.ID, domain.StatusSelected); err != nil {
		s.log.Error().Err(err).Int64("application_id", app.ID).Msg("failed to mark application selected")
	}

	s.log.Info().
		Int64("application_id", app.ID).
		Int64("intern_id", created.ID).
		Msg("applicant selected as intern")

	if err := s.notifier.Notify(ctx, created.Email,
		"Congratulations! You have been selected - XGENAI Internship",
		internWelcomeBody(created, password), nil); err != nil {
		s.log.Warn().Err(err).Int64("intern_id", created.ID).Msg("selection notification failed")
	}

	return created, nil
}

func applicationReceivedBody(app *domain.Application) string {
	return fmt.Sprintf(`Hi %s,

Thank you for applying to XGENAI!

We have received your application for the %s position.

Application Details:
- Position: %s
- College: %s
- Semester: %s
- Expected Graduation: %s

Our team will review your application and get back to you within 5-7 business days.

Best regards,
XGENAI Recruitment Team`,
		app.FullName, app.Position, app.Position, app.College, app.Semester, app.Year)
}

func internWelcomeBody(intern *domain.Intern, password string) string {
	return fmt.Sprintf(`Hi %s,

Congratulations! You have been selected for the %s internship at XGENAI.

Your intern portal credentials:
- Email: %s
- Password: %s

Please login to the intern portal and change your password after your first login.

Your program starts on %s. Weekly tasks will appear on your dashboard.

Best regards,
XGENAI Team`,
		intern.FullName, intern.Position, intern.Email, password,
		intern.StartDate.Format("2006-01-02"))
}
