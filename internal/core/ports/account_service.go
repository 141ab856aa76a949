package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// AccountService implements registration and credential checks for
// end-users, plus the admin console's read-side views.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Authenticate returns the account on success and the generic
	// domain.ErrInvalidCredentials otherwise. Callers cannot distinguish an
	// unknown email from a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// AuthenticateAdmin checks the supplied credentials against the static
	// admin principal configured at startup.
	AuthenticateAdmin(ctx context.Context, email, password string) (role string, err error)

	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListProjects(ctx context.Context, userID int64) ([]domain.Project, error)
	AddProject(ctx context.Context, userID int64, name, description, status string) (*domain.Project, error)

	Stats(ctx context.Context) (totalUsers, totalEmails, todayUsers int, err error)
	ClearData(ctx context.Context) error
}
