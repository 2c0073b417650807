package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type DashboardHandler struct {
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewDashboardHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *DashboardHandler {
	return &DashboardHandler{
		logger:  logger,
		metrics: metrics,
	}
}

// Get godoc
// @Summary Dashboard statistics
// @Description Aggregates counts from every list endpoint. Failed sources count as zero and are listed in failedSources.
// @Tags dashboard
// @Produce json
// @Success 200 {object} viewResponse
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /api/pages/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	dashboard := mustWorkspace(c).Pages().Dashboard
	if stats, err := dashboard.Load(c.Request.Context()); err != nil {
		h.logger.Warn("Dashboard loaded with missing sources", map[string]interface{}{
			"failed": stats.FailedSources,
			"error":  err.Error(),
		})
	}
	newSuccessResponse(c, http.StatusOK, dashboard.View())
}
