package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
)

type RentalHandler struct {
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

type selectStatusRequest struct {
	Status domain.RentalStatus `json:"status" binding:"required" example:"CONFIRMED"`
}

func NewRentalHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *RentalHandler {
	return &RentalHandler{
		logger:  logger,
		metrics: metrics,
	}
}

func (h *RentalHandler) controller(c *gin.Context) *services.RentalController {
	return mustWorkspace(c).Pages().Rentals
}

// List godoc
// @Summary Load the rentals page
// @Description Rentals are fetched once and filtered and paged locally. Pass refresh=true to fetch again.
// @Tags rentals
// @Produce json
// @Param status query string false "Status filter, empty for all" Enums(PENDING, CONFIRMED, ONGOING, COMPLETED, CANCELLED)
// @Param page query int false "Page number" minimum(1)
// @Param refresh query bool false "Fetch the list again"
// @Success 200 {object} viewResponse
// @Failure 400 {object} errorResponse "Invalid query"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /api/pages/rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	q, err := parseRentalQuery(c)
	if err != nil {
		h.logger.Warn("Invalid rentals query", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ctrl := h.controller(c)
	if q.Refresh || ctrl.View().State == services.StateIdle {
		ctrl.Load(c.Request.Context())
	}
	if q.HasStatus {
		ctrl.SetFilter(q.Status)
	}
	if q.HasPage {
		ctrl.SetPage(q.Page)
	}
	newSuccessResponse(c, http.StatusOK, ctrl.View())
}

// OpenStatus godoc
// @Summary Open the status editor of a rental
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} viewResponse
// @Failure 404 {object} viewResponse "Rental is not loaded"
// @Router /api/pages/rentals/{id}/status [post]
func (h *RentalHandler) OpenStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	err := ctrl.OpenStatusModal(c.Param("id"))
	newViewResponse(c, ctrl.View(), err)
}

// SelectStatus godoc
// @Summary Pick the new status
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body selectStatusRequest true "New status"
// @Success 200 {object} viewResponse
// @Failure 400 {object} errorResponse "Unknown status"
// @Failure 409 {object} viewResponse "No status editor open"
// @Router /api/pages/rentals/status [put]
func (h *RentalHandler) SelectStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req selectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		newErrorResponse(c, http.StatusBadRequest, "Invalid status")
		return
	}

	ctrl := h.controller(c)
	err := ctrl.SelectStatus(req.Status)
	newViewResponse(c, ctrl.View(), err)
}

// SubmitStatus godoc
// @Summary Save the selected status
// @Description Makes no API call when the selection equals the current status.
// @Tags rentals
// @Produce json
// @Success 200 {object} viewResponse
// @Failure 409 {object} viewResponse "Status unchanged, nothing open or already saving"
// @Failure 422 {object} viewResponse "Rejected by the API"
// @Failure 502 {object} viewResponse "API unreachable"
// @Router /api/pages/rentals/status/submit [post]
func (h *RentalHandler) SubmitStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	err := ctrl.SubmitStatus(c.Request.Context())
	newViewResponse(c, ctrl.View(), err)
}

// CloseStatus godoc
// @Summary Close the status editor
// @Tags rentals
// @Produce json
// @Success 200 {object} viewResponse
// @Router /api/pages/rentals/status [delete]
func (h *RentalHandler) CloseStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	ctrl.CloseStatusModal()
	newSuccessResponse(c, http.StatusOK, ctrl.View())
}
