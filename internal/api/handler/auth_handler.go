package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xgenai/careers-platform/internal/api/metrics"
	"github.com/xgenai/careers-platform/internal/core/domain"
	"github.com/xgenai/careers-platform/internal/core/ports"
)

// AuthHandler serves signup and the three login flows (user, admin,
// intern) plus admin logout.
type AuthHandler struct {
	accounts ports.AccountService
	tasks    ports.TaskService
	sessions ports.SessionRegistry
}

func NewAuthHandler(accounts ports.AccountService, tasks ports.TaskService, sessions ports.SessionRegistry) *AuthHandler {
	return &AuthHandler{accounts: accounts, tasks: tasks, sessions: sessions}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Account created successfully",
		"user_id": user.ID,
		"email":   user.Email,
	})
}

// Login handles POST /api/login for end-users.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.accounts.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.sessions.Issue(c.Request().Context(), domain.KindUser, user.ID)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("user").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// AdminLogin handles POST /api/admin/login against the static admin
// principal.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.accounts.AuthenticateAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	// The admin is a singleton; every login gets its own token and any
	// number of them may be live at once.
	token, err := h.sessions.Issue(c.Request().Context(), domain.KindAdmin, 1)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("admin").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"role":  role,
	})
}

// AdminLogout handles POST /api/admin/logout, revoking the presented
// token. Revocation is idempotent so a stale token still gets a 200.
func (h *AuthHandler) AdminLogout(c echo.Context) error {
	if err := h.sessions.Revoke(c.Request().Context(), domain.KindAdmin, ctxToken(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// InternLogin handles POST /api/intern/login. An inactive intern with
// correct credentials gets 403 rather than the generic 401.
func (h *AuthHandler) InternLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	intern, err := h.tasks.AuthenticateIntern(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := h.sessions.Issue(c.Request().Context(), domain.KindIntern, intern.ID)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("intern").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"intern": intern,
	})
}
