package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
)

type openModalRequest struct {
	// ID selects the item to edit; empty opens the create form.
	ID string `json:"id,omitempty" example:"6650f1c2a1b2c3d4e5f60718"`
}

// PageHandler serves one CRUD page backed by a services.PageController.
type PageHandler[T any, F any, Q any] struct {
	name    string
	page    func(*services.PageSet) *services.PageController[T, F, Q]
	query   func(c *gin.Context, current Q) (Q, error)
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewPageHandler[T any, F any, Q any](
	name string,
	page func(*services.PageSet) *services.PageController[T, F, Q],
	query func(c *gin.Context, current Q) (Q, error),
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PageHandler[T, F, Q] {
	return &PageHandler[T, F, Q]{
		name:    name,
		page:    page,
		query:   query,
		logger:  logger,
		metrics: metrics,
	}
}

func NewMotorbikeHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *MotorbikeHandler {
	return NewPageHandler("motorbikes", func(p *services.PageSet) *services.MotorbikeController { return p.Motorbikes }, parseMotorbikeQuery, logger, metrics)
}

func NewUserHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *UserHandler {
	return NewPageHandler("users", func(p *services.PageSet) *services.UserController { return p.Users }, parseUserQuery, logger, metrics)
}

func NewBlogHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *BlogHandler {
	return NewPageHandler("blogs", func(p *services.PageSet) *services.BlogController { return p.Blogs }, parseNoQuery, logger, metrics)
}

func NewPromotionHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *PromotionHandler {
	return NewPageHandler("promotions", func(p *services.PageSet) *services.PromotionController { return p.Promotions }, parseNoQuery, logger, metrics)
}

func (h *PageHandler[T, F, Q]) controller(c *gin.Context) *services.PageController[T, F, Q] {
	return h.page(mustWorkspace(c).Pages())
}

// Register mounts the page routes on g.
func (h *PageHandler[T, F, Q]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("/modal", h.OpenModal)
	g.DELETE("/modal", h.CloseModal)
	g.POST("/submit", h.Submit)
	g.POST("/delete/confirm", h.ConfirmDelete)
	g.POST("/delete/:id", h.RequestDelete)
	g.DELETE("/delete", h.CancelDelete)
}

// List godoc
// @Summary Load a page
// @Description Loads the list of a CRUD page. Query parameters override the page's current query; changing a filter restarts at page 1.
// @Tags pages
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Param page query int false "Page number" minimum(1)
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Param search query string false "Search text"
// @Param type query string false "Motorbike type" Enums(MANUAL, SCOOTER, SEMI_AUTO)
// @Param status query string false "Motorbike status" Enums(AVAILABLE, RENTED, MAINTENANCE, UNAVAILABLE)
// @Success 200 {object} viewResponse
// @Failure 400 {object} errorResponse "Invalid query"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /api/pages/{entity} [get]
func (h *PageHandler[T, F, Q]) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	query, err := h.query(c, ctrl.Query())
	if err != nil {
		h.logger.Warn("Invalid list query", map[string]interface{}{
			"page":  h.name,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ctrl.Load(c.Request.Context(), query)
	newSuccessResponse(c, http.StatusOK, ctrl.View())
}

// OpenModal godoc
// @Summary Open the create or edit modal
// @Tags pages
// @Accept json
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Param request body openModalRequest false "Item to edit"
// @Success 200 {object} viewResponse
// @Failure 404 {object} viewResponse "Item is not on the current list"
// @Failure 405 {object} viewResponse "Page has no create"
// @Router /api/pages/{entity}/modal [post]
func (h *PageHandler[T, F, Q]) OpenModal(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req openModalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ctrl := h.controller(c)
	var err error
	if req.ID == "" {
		err = ctrl.OpenCreate()
	} else {
		err = ctrl.OpenEdit(req.ID)
	}
	newViewResponse(c, ctrl.View(), err)
}

// CloseModal godoc
// @Summary Close the modal
// @Tags pages
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Success 200 {object} viewResponse
// @Router /api/pages/{entity}/modal [delete]
func (h *PageHandler[T, F, Q]) CloseModal(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	ctrl.CloseModal()
	newSuccessResponse(c, http.StatusOK, ctrl.View())
}

// Submit godoc
// @Summary Save the open form
// @Description Creates or updates depending on the open modal. On success the modal closes and the list reloads.
// @Tags pages
// @Accept json
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Param request body domain.MotorbikeForm true "Form values of the page"
// @Success 200 {object} viewResponse
// @Failure 400 {object} viewResponse "Required fields are missing"
// @Failure 409 {object} viewResponse "No open modal or a save is in progress"
// @Failure 422 {object} viewResponse "Rejected by the API"
// @Failure 502 {object} viewResponse "API unreachable"
// @Router /api/pages/{entity}/submit [post]
func (h *PageHandler[T, F, Q]) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Error("Failed JSON parse in submit", map[string]interface{}{
			"page":  h.name,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	ctrl := h.controller(c)
	err := ctrl.Submit(c.Request.Context(), form)
	newViewResponse(c, ctrl.View(), err)
}

// RequestDelete godoc
// @Summary Ask for delete confirmation
// @Tags pages
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Param id path string true "Item ID"
// @Success 200 {object} viewResponse
// @Failure 405 {object} viewResponse "Page has no delete"
// @Router /api/pages/{entity}/delete/{id} [post]
func (h *PageHandler[T, F, Q]) RequestDelete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	err := ctrl.RequestDelete(c.Param("id"))
	newViewResponse(c, ctrl.View(), err)
}

// ConfirmDelete godoc
// @Summary Delete the item awaiting confirmation
// @Tags pages
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Success 200 {object} viewResponse
// @Failure 409 {object} viewResponse "Nothing to confirm or a request is in progress"
// @Failure 422 {object} viewResponse "Rejected by the API"
// @Failure 502 {object} viewResponse "API unreachable"
// @Router /api/pages/{entity}/delete/confirm [post]
func (h *PageHandler[T, F, Q]) ConfirmDelete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	err := ctrl.ConfirmDelete(c.Request.Context())
	newViewResponse(c, ctrl.View(), err)
}

// CancelDelete godoc
// @Summary Dismiss the delete confirmation
// @Tags pages
// @Produce json
// @Param entity path string true "Page" Enums(motorbikes, users, blogs, promotions)
// @Success 200 {object} viewResponse
// @Router /api/pages/{entity}/delete [delete]
func (h *PageHandler[T, F, Q]) CancelDelete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	ctrl := h.controller(c)
	ctrl.CancelDelete()
	newSuccessResponse(c, http.StatusOK, ctrl.View())
}
