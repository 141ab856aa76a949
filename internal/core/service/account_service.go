package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// AdminCredentials is the static operator identity loaded from
// configuration at process start. The plaintext password is hashed once in
// NewAccountService and discarded.
type AdminCredentials struct {
	Email    string
	Password string
	Role     string
}

// AccountService implements end-user registration/login and the admin
// console's read-side operations.
type AccountService struct {
	repo       ports.UserRepository
	notifier   ports.Notifier
	tokenCache ports.TokenCache
	adminEmail string
	adminHash  []byte
	adminRole  string
	log        zerolog.Logger
}

func NewAccountService(
	repo ports.UserRepository,
	notifier ports.Notifier,
	tokenCache ports.TokenCache,
	admin AdminCredentials,
	log zerolog.Logger,
) *AccountService {
	role := admin.Role
	if role == "" {
		role = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; an unusable admin password is
		// a deployment error worth failing loudly for.
		panic(fmt.Sprintf("account service: hash admin password: %v", err))
	}
	return &AccountService{
		repo:       repo,
		notifier:   notifier,
		tokenCache: tokenCache,
		adminEmail: admin.Email,
		adminHash:  hash,
		adminRole:  role,
		log:        log,
	}
}

func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
		{"password", in.Password},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	if err := s.notifier.Notify(ctx, created.Email,
		"Welcome to XGENAI - Account Created Successfully!",
		welcomeBody(created), &created.ID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", created.ID).Msg("welcome notification failed")
	}

	return created, nil
}

// Authenticate returns the same generic failure for an unknown email and
// a wrong password so callers cannot enumerate accounts.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to update last login")
	}
	user.LastLogin = &now

	return user, nil
}

func (s *AccountService) AuthenticateAdmin(_ context.Context, email, password string) (string, error) {
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.adminRole, nil
}

func (s *AccountService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) ListProjects(ctx context.Context, userID int64) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx, userID)
}

func (s *AccountService) AddProject(ctx context.Context, userID int64, name, description, status string) (*domain.Project, error) {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	now := time.Now().UTC()
	return s.repo.CreateProject(ctx, &domain.Project{
		UserID:      userID,
		Name:        name,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *AccountService) Stats(ctx context.Context) (int, int, int, error) {
	return s.repo.Stats(ctx)
}

// ClearData irrecoverably wipes sessions, emails, projects, and users,
// then flushes the token cache so no cached grant outlives its row.
func (s *AccountService) ClearData(ctx context.Context) error {
	if err := s.repo.ClearData(ctx); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	if s.tokenCache != nil {
		s.tokenCache.Flush(ctx)
	}
	s.log.Warn().Msg("all user data cleared")
	return nil
}

func welcomeBody(u *domain.User) string {
	return fmt.Sprintf(`Hi %s,

Welcome to XGENAI!

Your account has been created successfully. Here are your details:

Name: %s
Email: %s
Phone: %s
Address: %s
Account Created: %s

You can now login to your dashboard and start managing your projects.

Thank you for joining us!

Best regards,
XGENAI Team`,
		u.Name, u.Name, u.Email, u.Phone, u.Address,
		u.CreatedAt.Format("2006-01-02 15:04:05"))
}
