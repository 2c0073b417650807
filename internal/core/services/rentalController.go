package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type RentalStatusModal struct {
	RentalID  string              `json:"rentalId"`
	Current   domain.RentalStatus `json:"currentStatus"`
	NewStatus domain.RentalStatus `json:"newStatus"`
	CanSubmit bool                `json:"canSubmit"`
}

type RentalsView struct {
	Page        string              `json:"page"`
	State       LoadState           `json:"state"`
	Items       []domain.Rental     `json:"items"`
	Total       int                 `json:"total"`
	StatusTotal int                 `json:"allTotal"`
	Filter      domain.RentalStatus `json:"status,omitempty"`
	PageNumber  int                 `json:"pageNumber"`
	TotalPages  int                 `json:"totalPages"`
	PageSize    int                 `json:"pageSize"`
	StatusModal *RentalStatusModal  `json:"statusModal,omitempty"`
	Saving      bool                `json:"saving"`
}

// RentalController lists every rental once and filters and pages them
// locally; the rentals endpoint takes no filters.
type RentalController struct {
	mu       sync.Mutex
	client   ports.RentalClient
	toasts   ToastSink
	logger   ports.LoggerPort
	pageSize int

	state     LoadState
	all       []domain.Rental
	filter    domain.RentalStatus
	page      int
	seq       uint64
	modal     *RentalStatusModal
	newStatus domain.RentalStatus
	saving    bool
}

func NewRentalController(client ports.RentalClient, toasts ToastSink, logger ports.LoggerPort) *RentalController {
	return &RentalController{
		client:   client,
		toasts:   toasts,
		logger:   logger,
		pageSize: DefaultPageSize,
		state:    StateIdle,
		all:      []domain.Rental{},
		page:     1,
	}
}

func (c *RentalController) Load(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	res, err := c.client.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return
	}
	if err != nil {
		c.state = StateLoadError
		c.logger.Error("Failed to load rentals", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	page, ok := res.Get()
	if !ok {
		c.state = StateLoadError
		c.logger.Warn("Server rejected rentals request", map[string]interface{}{
			"message": res.Message(),
		})
		return
	}
	c.all = page.Items
	c.state = StateLoaded
	c.clampPage()
}

func (c *RentalController) SetFilter(status domain.RentalStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = status
	c.page = 1
}

func (c *RentalController) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = page
	c.clampPage()
}

func (c *RentalController) clampPage() {
	pages := TotalPages(len(FilterRentals(c.all, c.filter)), c.pageSize)
	if c.page > pages {
		c.page = pages
	}
	if c.page < 1 {
		c.page = 1
	}
}

func (c *RentalController) OpenStatusModal(id string) error {
	const op = "services.RentalController.OpenStatusModal"

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.all {
		if r.ID == id {
			c.modal = &RentalStatusModal{RentalID: r.ID, Current: r.Status}
			c.newStatus = r.Status
			return nil
		}
	}
	return fmt.Errorf("%s: %s: %w", op, id, domain.ErrNotFound)
}

func (c *RentalController) SelectStatus(status domain.RentalStatus) error {
	const op = "services.RentalController.SelectStatus"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.modal == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNoActiveModal)
	}
	if !status.Valid() {
		return fmt.Errorf("%s: unknown status %q", op, status)
	}
	c.newStatus = status
	return nil
}

func (c *RentalController) CloseStatusModal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.modal = nil
	c.newStatus = ""
}

// canSubmit is false while saving and while the selection equals the
// rental's current status.
func (c *RentalController) canSubmit() bool {
	return c.modal != nil && !c.saving && c.newStatus != c.modal.Current
}

// SubmitStatus sends the selected status. It makes no call when the
// selection is unchanged.
func (c *RentalController) SubmitStatus(ctx context.Context) error {
	const op = "services.RentalController.SubmitStatus"

	c.mu.Lock()
	if c.modal == nil {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrNoActiveModal)
	}
	if c.saving {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	if !c.canSubmit() {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrNoChange)
	}
	id, status := c.modal.RentalID, c.newStatus
	c.saving = true
	c.mu.Unlock()

	res, err := c.client.UpdateStatus(ctx, id, status)

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Error("Failed to update rental status", map[string]interface{}{
			"rental_id": id,
			"status":    string(status),
			"error":     err.Error(),
		})
		c.toasts.Push(domain.ToastError, domain.MsgUnreachable)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !res.IsOk() {
		c.mu.Unlock()
		msg := messageOr(res.Message(), domain.MsgUpdateFailed)
		c.toasts.Push(domain.ToastError, msg)
		return fmt.Errorf("%s: %w", op, &domain.ServerError{Message: msg})
	}
	if c.modal != nil && c.modal.RentalID == id {
		c.modal = nil
		c.newStatus = ""
	}
	c.mu.Unlock()

	c.toasts.Push(domain.ToastSuccess, domain.MsgRentalStatusUpdated)
	c.logger.Info("Rental status updated", map[string]interface{}{
		"rental_id": id,
		"status":    string(status),
	})

	c.Load(ctx)
	return nil
}

func (c *RentalController) View() RentalsView {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := FilterRentals(c.all, c.filter)
	v := RentalsView{
		Page:        "rentals",
		State:       c.state,
		Items:       Paginate(filtered, c.page, c.pageSize),
		Total:       len(filtered),
		StatusTotal: len(c.all),
		Filter:      c.filter,
		PageNumber:  c.page,
		TotalPages:  TotalPages(len(filtered), c.pageSize),
		PageSize:    c.pageSize,
		Saving:      c.saving,
	}
	if c.modal != nil {
		m := *c.modal
		m.NewStatus = c.newStatus
		m.CanSubmit = c.canSubmit()
		v.StatusModal = &m
	}
	return v
}

// FilterRentals keeps rentals with the given status; empty keeps all.
func FilterRentals(rentals []domain.Rental, status domain.RentalStatus) []domain.Rental {
	if status == "" {
		return rentals
	}
	out := make([]domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
