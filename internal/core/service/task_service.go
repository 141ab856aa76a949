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

// TaskService owns weekly tasks, submissions, and the intern portal's
// derived dashboard state.
type TaskService struct {
	tasks   ports.TaskRepository
	interns ports.InternRepository
	log     zerolog.Logger
	// now is swappable in tests.
	now func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, interns ports.InternRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, interns: interns, log: log, now: time.Now}
}

// CurrentWeek buckets elapsed time since startDate into 1-based weeks:
// day 0 through day 6 map to week 1, day 7 through 13 to week 2, and so
// on. The division floors, and the result is clamped to a minimum of 1 so
// a future start date never yields week 0 or below.
func CurrentWeek(startDate, now time.Time) int {
	days := int(now.Sub(startDate).Hours() / 24)
	week := days/7 + 1
	if week < 1 {
		return 1
	}
	return week
}

func (s *TaskService) CreateTask(ctx context.Context, in ports.TaskInput) (*domain.WeeklyTask, error) {
	var missing []string
	if in.WeekNumber < 1 {
		missing = append(missing, "week_number")
	}
	if in.Title == "" {
		missing = append(missing, "task_title")
	}
	if in.Description == "" {
		missing = append(missing, "task_description")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	task := &domain.WeeklyTask{
		WeekNumber:            in.WeekNumber,
		Title:                 in.Title,
		Description:           in.Description,
		MiniProjectGuidelines: in.MiniProjectGuidelines,
		DSAlgoTopic:           in.DSAlgoTopic,
		AINews:                in.AINews,
		DueDate:               in.DueDate,
		CreatedAt:             s.now().UTC(),
	}

	created, err := s.tasks.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create weekly task: %w", err)
	}

	s.log.Info().Int64("task_id", created.ID).Int("week", created.WeekNumber).Msg("weekly task created")
	return created, nil
}

// Dashboard assembles the intern portal view: the intern record, the
// current program week, that week's tasks, all submissions, and the
// progress counters. When no counter row exists, progress defaults to
// zero completed out of the week's task count.
func (s *TaskService) Dashboard(ctx context.Context, internID int64) (*ports.InternDashboard, error) {
	intern, err := s.interns.FindByID(ctx, internID)
	if err != nil {
		return nil, err
	}

	week := CurrentWeek(intern.StartDate, s.now())

	tasks, err := s.tasks.TasksForWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("dashboard: tasks for week %d: %w", week, err)
	}

	subs, err := s.tasks.ListSubmissions(ctx, internID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list submissions: %w", err)
	}

	progress := domain.Progress{TasksCompleted: 0, TasksTotal: len(tasks)}
	rec, err := s.tasks.FindProgress(ctx, internID, week)
	if err != nil {
		s.log.Warn().Err(err).Int64("intern_id", internID).Msg("progress lookup failed, using defaults")
	} else if rec != nil {
		progress.TasksCompleted = rec.TasksCompleted
		progress.TasksTotal = rec.TasksTotal
	}

	return &ports.InternDashboard{
		Intern:      intern,
		CurrentWeek: week,
		Tasks:       tasks,
		Submissions: subs,
		Progress:    progress,
	}, nil
}

// SubmitTask records a submission. There is deliberately no check that
// the task belongs to the intern's current week, and no uniqueness rule:
// resubmissions accumulate.
func (s *TaskService) SubmitTask(ctx context.Context, in ports.SubmissionInput) (*domain.Submission, error) {
	if in.SubmissionFile == "" {
		return nil, &domain.ValidationError{Fields: []string{"submission_file"}}
	}

	sub := &domain.Submission{
		InternID:       in.InternID,
		TaskID:         in.TaskID,
		SubmissionFile: in.SubmissionFile,
		SubmissionType: in.SubmissionType,
		WhatLearned:    in.WhatLearned,
		Status:         "submitted",
		SubmittedAt:    s.now().UTC(),
	}

	created, err := s.tasks.CreateSubmission(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("submit task: %w", err)
	}

	metrics.TaskSubmissionsTotal.Inc()
	s.log.Info().Int64("intern_id", in.InternID).Int64("task_id", in.TaskID).Msg("task submitted")
	return created, nil
}

func (s *TaskService) ListInterns(ctx context.Context) ([]domain.Intern, error) {
	return s.interns.List(ctx)
}

// AuthenticateIntern verifies portal credentials. Unknown email and bad
// password are indistinguishable; a deactivated account with correct
// credentials is reported separately so the portal can show the right
// message.
func (s *TaskService) AuthenticateIntern(ctx context.Context, email, password string) (*domain.Intern, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	intern, err := s.interns.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(intern.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if intern.Status != domain.InternActive {
		return nil, domain.ErrInternInactive
	}

	return intern, nil
}
