package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// UserHandler serves the authenticated end-user dashboard.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type addProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Dashboard handles GET /api/user/dashboard: the account plus its
// projects.
func (h *UserHandler) Dashboard(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.GetUser(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	projects, err := h.accounts.ListProjects(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":     user,
		"projects": projects,
	})
}

// AddProject handles POST /api/user/projects.
func (h *UserHandler) AddProject(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	project, err := h.accounts.AddProject(c.Request().Context(), principal.ID, req.Name, req.Description, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"project_id": project.ID})
}
