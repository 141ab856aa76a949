package ports

import (
	"context"
	"time"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// TaskInput carries the admin's weekly task form.
type TaskInput struct {
	WeekNumber            int
	Title                 string
	Description           string
	MiniProjectGuidelines string
	DSAlgoTopic           string
	AINews                string
	DueDate               *time.Time
}

// SubmissionInput carries an intern's task submission.
type SubmissionInput struct {
	InternID       int64
	TaskID         int64
	SubmissionFile string
	SubmissionType string
	WhatLearned    string
}

// InternDashboard is the aggregate view returned to the intern portal.
type InternDashboard struct {
	Intern      *domain.Intern
	CurrentWeek int
	Tasks       []domain.WeeklyTask
	Submissions []domain.Submission
	Progress    domain.Progress
}

// TaskService owns weekly tasks, submissions, and derived progress, plus
// intern authentication for the portal.
type TaskService interface {
	CreateTask(ctx context.Context, in TaskInput) (*domain.WeeklyTask, error)
	Dashboard(ctx context.Context, internID int64) (*InternDashboard, error)
	SubmitTask(ctx context.Context, in SubmissionInput) (*domain.Submission, error)
	ListInterns(ctx context.Context) ([]domain.Intern, error)
	// AuthenticateIntern returns domain.ErrInvalidCredentials for an unknown
	// email or bad password, and domain.ErrInternInactive for a deactivated
	// account with correct credentials.
	AuthenticateIntern(ctx context.Context, email, password string) (*domain.Intern, error)
}
