package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// AdminHandler serves the admin console's read-side views and the
// destructive maintenance endpoint.
type AdminHandler struct {
	accounts ports.AccountService
	audit    ports.EmailAudit
	notifier ports.Notifier
}

func NewAdminHandler(accounts ports.AccountService, audit ports.EmailAudit, notifier ports.Notifier) *AdminHandler {
	return &AdminHandler{accounts: accounts, audit: audit, notifier: notifier}
}

type sendEmailRequest struct {
	ApplicationID int64  `json:"applicationId"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

type userWithProjects struct {
	domain.User
	Projects []domain.Project `json:"projects"`
}

// ListUsers handles GET /api/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// AllData handles GET /api/admin/all-data, the enhanced console view of
// every user with their projects nested.
func (h *AdminHandler) AllData(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.accounts.ListUsers(ctx)
	if err != nil {
		return err
	}

	out := make([]userWithProjects, 0, len(users))
	for _, u := range users {
		projects, err := h.accounts.ListProjects(ctx, u.ID)
		if err != nil {
			return err
		}
		if projects == nil {
			projects = []domain.Project{}
		}
		out = append(out, userWithProjects{User: u, Projects: projects})
	}

	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

// Stats handles GET /api/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	totalUsers, totalEmails, todayUsers, err := h.accounts.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_users":  totalUsers,
		"total_emails": totalEmails,
		"today_users":  todayUsers,
	})
}

// ListEmails handles GET /api/emails, the outbound email audit trail.
func (h *AdminHandler) ListEmails(c echo.Context) error {
	emails, err := h.audit.ListEmails(c.Request().Context())
	if err != nil {
		return err
	}
	if emails == nil {
		emails = []domain.EmailRecord{}
	}
	return c.JSON(http.StatusOK, echo.Map{"emails": emails})
}

// SendApplicationEmail handles POST /api/admin/send-application-email,
// an ad-hoc message from the console to a candidate.
func (h *AdminHandler) SendApplicationEmail(c echo.Context) error {
	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var missing []string
	if req.ApplicationID == 0 {
		missing = append(missing, "applicationId")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Subject == "" {
		missing = append(missing, "subject")
	}
	if req.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}

	if err := h.notifier.Notify(c.Request().Context(), req.Email, req.Subject, req.Body, nil); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Email sent successfully"})
}

// ClearData handles DELETE /api/clear-data. Unauthenticated by design of
// the original console; wipes sessions, emails, projects, and users.
func (h *AdminHandler) ClearData(c echo.Context) error {
	if err := h.accounts.ClearData(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "All data cleared successfully"})
}
