package domain

import "time"

const (
	InternActive   = "active"
	InternInactive = "inactive"
)

// Intern is a selected applicant granted portal access.
type Intern struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Position      string    `json:"position"`
	College       string    `json:"college"`
	StartDate     time.Time `json:"start_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// WeeklyTask is an assignment scoped to a single program week.
// Tasks are immutable once created; there is no update path.
type WeeklyTask struct {
	ID                    int64      `json:"id"`
	WeekNumber            int        `json:"week_number"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	MiniProjectGuidelines string     `json:"mini_project_guidelines,omitempty"`
	DSAlgoTopic           string     `json:"ds_algo_topic,omitempty"`
	AINews                string     `json:"ai_news,omitempty"`
	DueDate               *time.Time `json:"due_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// Submission records one intern response to a weekly task. An intern may
// submit multiple times for the same task; rows accumulate rather than
// replace.
type Submission struct {
	ID             int64     `json:"id"`
	InternID       int64     `json:"intern_id"`
	TaskID         int64     `json:"task_id"`
	TaskTitle      string    `json:"task_title,omitempty"`
	SubmissionFile string    `json:"submission_file"`
	SubmissionType string    `json:"submission_type,omitempty"`
	WhatLearned    string    `json:"what_learned,omitempty"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// Progress carries the per-week completion counters shown on the intern
// dashboard. The counters are maintained out-of-band and may drift from
// the actual submission rows; callers treat them as display values only.
type Progress struct {
	InternID       int64 `json:"intern_id,omitempty"`
	WeekNumber     int   `json:"week_number,omitempty"`
	TasksCompleted int   `json:"completed"`
	TasksTotal     int   `json:"total"`
}
