package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// ApplicationHandler serves the public application form and the admin
// review pipeline.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

type submitApplicationRequest struct {
	Position   string `json:"position"`
	FullName   string `json:"fullName"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	College    string `json:"college"`
	Degree     string `json:"degree"`
	Semester   string `json:"semester"`
	Year       string `json:"year"`
	About      string `json:"about"`
	ResumeName string `json:"resumeName"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type selectInternRequest struct {
	ApplicationID   int64  `json:"application_id"`
	DefaultPassword string `json:"default_password"`
}

// Submit handles POST /api/applications.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.apps.Submit(c.Request().Context(), ports.ApplicationInput{
		Position:   req.Position,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		College:    req.College,
		Degree:     req.Degree,
		Semester:   req.Semester,
		Year:       req.Year,
		About:      req.About,
		ResumeName: req.ResumeName,
		LinkedIn:   req.LinkedIn,
		GitHub:     req.GitHub,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "Application submitted successfully",
		"application_id": app.ID,
	})
}

// List handles GET /api/admin/applications, newest first.
func (h *ApplicationHandler) List(c echo.Context) error {
	apps, err := h.apps.List(c.Request().Context())
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": apps})
}

// UpdateStatus handles PUT /api/admin/applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.apps.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Status updated successfully"})
}

// SelectIntern handles POST /api/admin/select-intern, promoting an
// application into an intern account.
func (h *ApplicationHandler) SelectIntern(c echo.Context) error {
	var req selectInternRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ApplicationID == 0 {
		return &domain.ValidationError{Fields: []string{"application_id"}}
	}

	intern, err := h.apps.SelectIntern(c.Request().Context(), req.ApplicationID, req.DefaultPassword)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Intern selected successfully",
		"intern_id": intern.ID,
	})
}
