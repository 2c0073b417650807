package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
)

const workspaceKey = "workspace"

type errorResponse struct {
	Error  string         `json:"error" example:"Unauthorized"`
	Toasts []domain.Toast `json:"toasts,omitempty"`
}

// viewResponse is the body of every page endpoint: the current view plus the
// pending toasts. Error is set when the action failed.
type viewResponse struct {
	View   interface{}    `json:"view"`
	Toasts []domain.Toast `json:"toasts"`
	Error  string         `json:"error,omitempty"`
}

type messageResponse struct {
	Message string `json:"message" example:"ok"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	resp := errorResponse{Error: message}
	if ws, ok := getWorkspace(c); ok {
		resp.Toasts = ws.Toasts.Active()
	}
	c.AbortWithStatusJSON(statusCode, resp)
}

func newSuccessResponse(c *gin.Context, statusCode int, view interface{}) {
	resp := viewResponse{View: view, Toasts: []domain.Toast{}}
	if ws, ok := getWorkspace(c); ok {
		resp.Toasts = ws.Toasts.Active()
	}
	c.JSON(statusCode, resp)
}

// newViewResponse answers with view after an action: 200 when err is nil,
// otherwise the status err maps to.
func newViewResponse(c *gin.Context, view interface{}, err error) {
	if err == nil {
		newSuccessResponse(c, http.StatusOK, view)
		return
	}
	resp := viewResponse{View: view, Toasts: []domain.Toast{}, Error: errorMessage(err)}
	if ws, ok := getWorkspace(c); ok {
		resp.Toasts = ws.Toasts.Active()
	}
	c.JSON(statusFor(err), resp)
}

func getWorkspace(c *gin.Context) (*services.Workspace, bool) {
	v, exists := c.Get(workspaceKey)
	if !exists {
		return nil, false
	}
	ws, ok := v.(*services.Workspace)
	return ws, ok
}

func mustWorkspace(c *gin.Context) *services.Workspace {
	ws, _ := getWorkspace(c)
	return ws
}

func statusFor(err error) int {
	var serverErr *domain.ServerError
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupported):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrBusy),
		errors.Is(err, domain.ErrNoActiveModal),
		errors.Is(err, domain.ErrNoChange):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnreachable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &serverErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func errorMessage(err error) string {
	var loginErr *services.LoginError
	if errors.As(err, &loginErr) {
		return loginErr.Message
	}
	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	switch {
	case errors.Is(err, domain.ErrUnreachable):
		return domain.MsgUnreachable
	case errors.Is(err, domain.ErrMissingFields):
		return domain.ErrMissingFields.Error()
	}
	for _, sentinel := range []error{
		domain.ErrBusy, domain.ErrNoActiveModal, domain.ErrNoChange,
		domain.ErrNotFound, domain.ErrUnsupported, domain.ErrAccessDenied,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Internal server error"
}
