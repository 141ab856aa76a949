package ports

import (
	"context"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// TaskRepository persists weekly tasks, intern submissions, and the
// out-of-band progress counters.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *domain.WeeklyTask) (*domain.WeeklyTask, error)
	// TasksForWeek returns tasks matching the week number exactly, in
	// stored order. Unfinished prior-week tasks never carry over.
	TasksForWeek(ctx context.Context, week int) ([]domain.WeeklyTask, error)

	CreateSubmission(ctx context.Context, sub *domain.Submission) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, internID int64) ([]domain.Submission, error)

	// FindProgress returns the counter row for (internID, week), or
	// (nil, nil) when no row exists.
	FindProgress(ctx context.Context, internID int64, week int) (*domain.Progress, error)
}
