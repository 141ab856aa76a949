package ports

import (
	"context"
	"time"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// UserRepository defines persistence for end-user accounts and their
// dashboard projects.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error

	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	ListProjects(ctx context.Context, userID int64) ([]domain.Project, error)

	// Stats returns total users, total email records, and users created today.
	Stats(ctx context.Context) (totalUsers, totalEmails, todayUsers int, err error)

	// ClearData wipes sessions, emails, projects, and users in one shot.
	// Applications and interns survive.
	ClearData(ctx context.Context) error
}
