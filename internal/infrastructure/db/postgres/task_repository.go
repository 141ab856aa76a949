package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xgenai/careers-platform/internal/core/domain"
)

// TaskRepository implements ports.TaskRepository backed by PostgreSQL.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.WeeklyTask) (*domain.WeeklyTask, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO weekly_tasks
			(week_number, title, description, mini_project_guidelines,
			 ds_algo_topic, ai_news, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, task.WeekNumber, task.Title, task.Description, task.MiniProjectGuidelines,
		task.DSAlgoTopic, task.AINews, task.DueDate, task.CreatedAt).Scan(&task.ID)
	if err != nil {
		return nil, fmt.Errorf("insert weekly task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) TasksForWeek(ctx context.Context, week int) ([]domain.WeeklyTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, week_number, title, description, mini_project_guidelines,
		       ds_algo_topic, ai_news, due_date, created_at
		FROM weekly_tasks
		WHERE week_number = $1
		ORDER BY id
	`, week)
	if err != nil {
		return nil, fmt.Errorf("tasks for week: %w", err)
	}
	defer rows.Close()

	var tasks []domain.WeeklyTask
	for rows.Next() {
		var (
			t                   domain.WeeklyTask
			miniProject, dsAlgo sql.NullString
			aiNews              sql.NullString
			dueDate             sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.WeekNumber, &t.Title, &t.Description,
			&miniProject, &dsAlgo, &aiNews, &dueDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weekly task: %w", err)
		}
		t.MiniProjectGuidelines = miniProject.String
		t.DSAlgoTopic = dsAlgo.String
		t.AINews = aiNews.String
		if dueDate.Valid {
			d := dueDate.Time
			t.DueDate = &d
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) CreateSubmission(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO task_submissions
			(intern_id, task_id, submission_file, submission_type, what_learned,
			 status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, sub.InternID, sub.TaskID, sub.SubmissionFile, sub.SubmissionType,
		sub.WhatLearned, sub.Status, sub.SubmittedAt).Scan(&sub.ID)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

func (r *TaskRepository) ListSubmissions(ctx context.Context, internID int64) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.intern_id, s.task_id, t.title, s.submission_file,
		       s.submission_type, s.what_learned, s.status, s.submitted_at
		FROM task_submissions s
		JOIN weekly_tasks t ON s.task_id = t.id
		WHERE s.intern_id = $1
		ORDER BY s.submitted_at DESC
	`, internID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var (
			s                    domain.Submission
			subType, whatLearned sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.InternID, &s.TaskID, &s.TaskTitle,
			&s.SubmissionFile, &subType, &whatLearned, &s.Status, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		s.SubmissionType = subType.String
		s.WhatLearned = whatLearned.String
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *TaskRepository) FindProgress(ctx context.Context, internID int64, week int) (*domain.Progress, error) {
	var p domain.Progress
	err := r.db.QueryRowContext(ctx, `
		SELECT intern_id, week_number, tasks_completed, tasks_total
		FROM intern_progress
		WHERE intern_id = $1 AND week_number = $2
	`, internID, week).Scan(&p.InternID, &p.WeekNumber, &p.TasksCompleted, &p.TasksTotal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find progress: %w", err)
	}
	return &p, nil
}
