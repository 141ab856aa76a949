package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// ApplicationInput carries the application form fields. LinkedIn and
// GitHub are the only optional ones.
type ApplicationInput struct {
	Position   string
	FullName   string
	Email      string
	Phone      string
	Address    string
	College    string
	Degree     string
	Semester   string
	Year       string
	About      string
	ResumeName string
	LinkedIn   string
	GitHub     string
}

// ApplicationService owns the application lifecycle from submission
// through review to intern conversion.
type ApplicationService interface {
	Submit(ctx context.Context, in ApplicationInput) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	// UpdateStatus overwrites the status unconditionally as long as the new
	// value is inside the closed set. Transitions are not ordered: the admin
	// console is allowed to move an application to any stage.
	UpdateStatus(ctx context.Context, id int64, status string) error
	// SelectIntern promotes an application into an intern account with the
	// given bootstrap password and flips the application to "selected".
	SelectIntern(ctx context.Context, applicationID int64, defaultPassword string) (*domain.Intern, error)
}
