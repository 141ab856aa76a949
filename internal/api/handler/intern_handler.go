package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// InternHandler serves the intern portal and the admin side of the
// weekly task program.
type InternHandler struct {
	tasks ports.TaskService
}

func NewInternHandler(tasks ports.TaskService) *InternHandler {
	return &InternHandler{tasks: tasks}
}

type createTaskRequest struct {
	WeekNumber            int    `json:"week_number"`
	TaskTitle             string `json:"task_title"`
	TaskDescription       string `json:"task_description"`
	MiniProjectGuidelines string `json:"mini_project_guidelines"`
	DSAlgoTopic           string `json:"ds_algo_topic"`
	AINews                string `json:"ai_news"`
	DueDate               string `json:"due_date"`
}

type submitTaskRequest struct {
	TaskID         int64  `json:"task_id"`
	SubmissionFile string `json:"submission_file"`
	SubmissionType string `json:"submission_type"`
	WhatLearned    string `json:"what_learned"`
}

// Dashboard handles GET /api/intern/dashboard: the intern record, the
// current program week with its tasks, past submissions, and progress.
func (h *InternHandler) Dashboard(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	view, err := h.tasks.Dashboard(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	tasks := view.Tasks
	if tasks == nil {
		tasks = []domain.WeeklyTask{}
	}
	submissions := view.Submissions
	if submissions == nil {
		submissions = []domain.Submission{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"intern":       view.Intern,
		"current_week": view.CurrentWeek,
		"tasks":        tasks,
		"submissions":  submissions,
		"progress":     view.Progress,
	})
}

// SubmitTask handles POST /api/intern/submit-task. Repeat submissions
// for the same task accumulate.
func (h *InternHandler) SubmitTask(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req submitTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sub, err := h.tasks.SubmitTask(c.Request().Context(), ports.SubmissionInput{
		InternID:       principal.ID,
		TaskID:         req.TaskID,
		SubmissionFile: req.SubmissionFile,
		SubmissionType: req.SubmissionType,
		WhatLearned:    req.WhatLearned,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "Task submitted successfully",
		"submission_id": sub.ID,
	})
}

// CreateTask handles POST /api/admin/weekly-task.
func (h *InternHandler) CreateTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid due_date")
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), ports.TaskInput{
		WeekNumber:            req.WeekNumber,
		Title:                 req.TaskTitle,
		Description:           req.TaskDescription,
		MiniProjectGuidelines: req.MiniProjectGuidelines,
		DSAlgoTopic:           req.DSAlgoTopic,
		AINews:                req.AINews,
		DueDate:               dueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task created successfully",
		"task_id": task.ID,
	})
}

// ListInterns handles GET /api/admin/interns.
func (h *InternHandler) ListInterns(c echo.Context) error {
	interns, err := h.tasks.ListInterns(c.Request().Context())
	if err != nil {
		return err
	}
	if interns == nil {
		interns = []domain.Intern{}
	}
	return c.JSON(http.StatusOK, echo.Map{"interns": interns})
}

// parseDueDate accepts RFC 3339 or a plain date; the console sends the
// latter.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, &time.ParseError{Layout: "2006-01-02", Value: raw}
}
