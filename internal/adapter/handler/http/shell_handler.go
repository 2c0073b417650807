package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type ShellHandler struct {
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

type LoginRequest struct {
	Email    string `json:"email" example:"admin@goride.vn"`
	Password string `json:"password" example:"secret"`
}

type NavigateRequest struct {
	Page string `json:"page" example:"rentals"`
}

func NewShellHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *ShellHandler {
	return &ShellHandler{
		logger:  logger,
		metrics: metrics,
	}
}

// Login godoc
// @Summary Sign in
// @Description Only ADMIN accounts are accepted. Tokens are stored in the session backend.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} viewResponse "Shell view"
// @Failure 400 {object} viewResponse "Missing credentials"
// @Failure 403 {object} viewResponse "Not an administrator"
// @Failure 422 {object} viewResponse "Rejected by the API"
// @Failure 502 {object} viewResponse "API unreachable"
// @Router /api/auth/login [post]
func (h *ShellHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	shell := mustWorkspace(c).Shell
	err := shell.Login(c.Request.Context(), domain.LoginCredentials{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.Warn("Login failed", map[string]interface{}{
			"email": req.Email,
			"ip":    c.ClientIP(),
		})
	}
	newViewResponse(c, shell.View(), err)
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} viewResponse "Shell view"
// @Router /api/auth/logout [post]
func (h *ShellHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	shell := mustWorkspace(c).Shell
	if err := shell.Logout(c.Request.Context()); err != nil {
		h.logger.Error("Failed to clear session on logout", map[string]interface{}{
			"error": err.Error(),
		})
	}
	newSuccessResponse(c, http.StatusOK, shell.View())
}

// Shell godoc
// @Summary Current shell state
// @Tags shell
// @Produce json
// @Success 200 {object} viewResponse "Shell view"
// @Router /api/shell [get]
func (h *ShellHandler) Shell(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, mustWorkspace(c).Shell.View())
}

// Navigate godoc
// @Summary Select the active page
// @Description Unknown pages fall back to the dashboard.
// @Tags shell
// @Accept json
// @Produce json
// @Param request body NavigateRequest true "Page"
// @Success 200 {object} viewResponse "Shell view"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /api/shell/page [put]
func (h *ShellHandler) Navigate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	shell := mustWorkspace(c).Shell
	shell.Navigate(req.Page)
	newSuccessResponse(c, http.StatusOK, shell.View())
}

// Toasts godoc
// @Summary Pending toasts
// @Tags shell
// @Produce json
// @Success 200 {array} domain.Toast
// @Router /api/toasts [get]
func (h *ShellHandler) Toasts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	c.JSON(http.StatusOK, mustWorkspace(c).Toasts.Active())
}

// DismissToast godoc
// @Summary Dismiss a toast
// @Tags shell
// @Produce json
// @Param id path string true "Toast ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse "Unknown toast"
// @Router /api/toasts/{id} [delete]
func (h *ShellHandler) DismissToast(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if !mustWorkspace(c).Toasts.Dismiss(c.Param("id")) {
		newErrorResponse(c, http.StatusNotFound, "Toast not found")
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "dismissed"})
}
