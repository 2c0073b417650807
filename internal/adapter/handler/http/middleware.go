package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
)

const SessionCookieName = "goride_session"

type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// SessionMiddleware resolves the session cookie to a workspace, issuing a
// fresh session when the cookie is missing or invalid.
func SessionMiddleware(
	tokenService ports.TokenService,
	registry *services.WorkspaceRegistry,
	cookie CookieConfig,
	logger ports.LoggerPort,
) gin.HandlerFunc {
	if cookie.Name == "" {
		cookie.Name = SessionCookieName
	}
	return func(c *gin.Context) {
		var sid string
		if raw, err := c.Cookie(cookie.Name); err == nil && raw != "" {
			if payload, err := tokenService.VerifyToken(raw); err == nil {
				sid = payload.SessionID.String()
			}
		}

		if sid == "" {
			id := uuid.New()
			token, err := tokenService.CreateToken(&domain.SessionTokenPayload{
				SessionID: id,
				IssuedAt:  time.Now(),
			})
			if err != nil {
				logger.Error("Failed to issue session token", map[string]interface{}{
					"error": err.Error(),
				})
				newErrorResponse(c, http.StatusInternalServerError, "Failed to start session")
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, token, int(cookie.MaxAge.Seconds()), "/", "", cookie.Secure, true)
			sid = id.String()
			logger.Debug("New session issued", map[string]interface{}{
				"session_id": sid,
				"ip":         c.ClientIP(),
			})
		}

		c.Set(workspaceKey, registry.Get(c.Request.Context(), sid))
		c.Next()
	}
}

// AuthMiddleware rejects requests whose workspace is not signed in.
func AuthMiddleware(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, ok := getWorkspace(c)
		if !ok || !ws.Shell.Authenticated() {
			logger.Warn("Unauthorized access attempt", map[string]interface{}{
				"path": c.FullPath(),
				"ip":   c.ClientIP(),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}
