package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// ApplicationRepository persists job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	// List returns applications newest first.
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

// InternRepository persists selected interns.
type InternRepository interface {
	Create(ctx context.Context, intern *domain.Intern) (*domain.Intern, error)
	FindByEmail(ctx context.Context, email string) (*domain.Intern, error)
	FindByID(ctx context.Context, id int64) (*domain.Intern, error)
	List(ctx context.Context) ([]domain.Intern, error)
}
