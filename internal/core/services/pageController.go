package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type LoadState string

const (
	StateIdle      LoadState = "idle"
	StateLoading   LoadState = "loading"
	StateLoaded    LoadState = "loaded"
	StateLoadError LoadState = "load_error"
)

type ModalState string

const (
	ModalClosed           ModalState = "closed"
	ModalCreating         ModalState = "creating"
	ModalEditing          ModalState = "editing"
	ModalConfirmingDelete ModalState = "confirming_delete"
)

const DefaultPageSize = 10

type PageResource[T any, F any, Q any] interface {
	List(ctx context.Context, query Q) (domain.Result[domain.Page[T]], error)
	Create(ctx context.Context, form F) (domain.Result[T], error)
	Update(ctx context.Context, id string, form F) (domain.Result[T], error)
	Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error)
	ItemID(item T) string
	EmptyForm() F
	FormFor(item T) F
}

type Capabilities struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

type PageView[T any, F any, Q any] struct {
	Page      string     `json:"page"`
	State     LoadState  `json:"state"`
	Items     []T        `json:"items"`
	Total     int        `json:"total"`
	Query     Q          `json:"query"`
	Modal     ModalState `json:"modal"`
	EditingID string     `json:"editingId,omitempty"`
	Form      *F         `json:"form,omitempty"`
	Saving    bool       `json:"saving"`
	DeleteID  string     `json:"deleteId,omitempty"`
	Capabilities
}

// PageController drives one CRUD page: list loading, the create/edit modal,
// the delete confirmation and toasts. At most one mutation is in flight and
// every successful mutation reloads the list from the server. The mutex is
// never held across a network call.
type PageController[T any, F any, Q any] struct {
	mu       sync.Mutex
	name     string
	resource PageResource[T, F, Q]
	caps     Capabilities
	messages domain.PageMessages
	toasts   ToastSink
	logger   ports.LoggerPort
	validate *validator.Validate

	state    LoadState
	items    []T
	total    int
	query    Q
	seq      uint64
	modal    ModalState
	modalSeq uint64
	editID   string
	form     F
	saving   bool
	deleteID string
}

func NewPageController[T any, F any, Q any](
	name string,
	resource PageResource[T, F, Q],
	caps Capabilities,
	messages domain.PageMessages,
	initial Q,
	toasts ToastSink,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PageController[T, F, Q] {
	return &PageController[T, F, Q]{
		name:     name,
		resource: resource,
		caps:     caps,
		messages: messages,
		toasts:   toasts,
		logger:   logger,
		validate: validate,
		state:    StateIdle,
		items:    []T{},
		query:    initial,
		modal:    ModalClosed,
		form:     resource.EmptyForm(),
	}
}

func (c *PageController[T, F, Q]) Name() string {
	return c.name
}

func (c *PageController[T, F, Q]) Query() Q {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Load fetches the list for query. Failures are logged and keep the
// previous list. A response is dropped when a newer load was started
// after it.
func (c *PageController[T, F, Q]) Load(ctx context.Context, query Q) {
	c.mu.Lock()
	c.query = query
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	res, err := c.resource.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.logger.Debug("Discarding stale list response", map[string]interface{}{
			"page": c.name,
			"seq":  seq,
		})
		return
	}
	if err != nil {
		c.state = StateLoadError
		c.logger.Error("Failed to load list", map[string]interface{}{
			"page":  c.name,
			"error": err.Error(),
		})
		return
	}
	page, ok := res.Get()
	if !ok {
		c.state = StateLoadError
		c.logger.Warn("Server rejected list request", map[string]interface{}{
			"page":    c.name,
			"message": res.Message(),
		})
		return
	}
	c.items = page.Items
	c.total = page.Total
	c.state = StateLoaded
}

func (c *PageController[T, F, Q]) Reload(ctx context.Context) {
	c.Load(ctx, c.Query())
}

func (c *PageController[T, F, Q]) OpenCreate() error {
	const op = "services.PageController.OpenCreate"

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.caps.CanCreate {
		return fmt.Errorf("%s: %w", op, domain.ErrUnsupported)
	}
	c.modal = ModalCreating
	c.modalSeq++
	c.editID = ""
	c.form = c.resource.EmptyForm()
	return nil
}

func (c *PageController[T, F, Q]) OpenEdit(id string) error {
	const op = "services.PageController.OpenEdit"

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.caps.CanEdit {
		return fmt.Errorf("%s: %w", op, domain.ErrUnsupported)
	}
	for _, item := range c.items {
		if c.resource.ItemID(item) == id {
			c.modal = ModalEditing
			c.modalSeq++
			c.editID = id
			c.form = c.resource.FormFor(item)
			return nil
		}
	}
	return fmt.Errorf("%s: %s: %w", op, id, domain.ErrNotFound)
}

func (c *PageController[T, F, Q]) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.modal = ModalClosed
	c.modalSeq++
	c.editID = ""
	c.deleteID = ""
	c.form = c.resource.EmptyForm()
}

// Submit saves form through create or update depending on the open modal.
func (c *PageController[T, F, Q]) Submit(ctx context.Context, form F) error {
	const op = "services.PageController.Submit"

	c.mu.Lock()
	if c.modal != ModalCreating && c.modal != ModalEditing {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrNoActiveModal)
	}
	if c.saving {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	c.form = form
	if err := c.validate.Struct(form); err != nil {
		c.mu.Unlock()
		c.toasts.Push(domain.ToastWarning, c.messages.Required)
		return fmt.Errorf("%s: %w: %v", op, domain.ErrMissingFields, err)
	}
	mode, id, modalSeq := c.modal, c.editID, c.modalSeq
	c.saving = true
	c.mu.Unlock()

	var (
		res domain.Result[T]
		err error
	)
	if mode == ModalCreating {
		res, err = c.resource.Create(ctx, form)
	} else {
		res, err = c.resource.Update(ctx, id, form)
	}

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Error("Failed to save item", map[string]interface{}{
			"page":  c.name,
			"id":    id,
			"error": err.Error(),
		})
		c.toasts.Push(domain.ToastError, domain.MsgUnreachable)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !res.IsOk() {
		c.mu.Unlock()
		msg := messageOr(res.Message(), c.messages.SaveFailed)
		c.toasts.Push(domain.ToastError, msg)
		return fmt.Errorf("%s: %w", op, &domain.ServerError{Message: msg})
	}
	// the modal may have been closed and reopened while saving
	if c.modalSeq == modalSeq {
		c.modal = ModalClosed
		c.modalSeq++
		c.editID = ""
		c.form = c.resource.EmptyForm()
	}
	c.mu.Unlock()

	if mode == ModalCreating {
		c.toasts.Push(domain.ToastSuccess, c.messages.Created)
	} else {
		c.toasts.Push(domain.ToastSuccess, c.messages.Updated)
	}
	c.logger.Info("Item saved", map[string]interface{}{
		"page": c.name,
		"mode": string(mode),
		"id":   id,
	})

	c.Reload(ctx)
	return nil
}

func (c *PageController[T, F, Q]) RequestDelete(id string) error {
	const op = "services.PageController.RequestDelete"

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.caps.CanDelete {
		return fmt.Errorf("%s: %w", op, domain.ErrUnsupported)
	}
	c.modal = ModalConfirmingDelete
	c.modalSeq++
	c.deleteID = id
	return nil
}

func (c *PageController[T, F, Q]) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.modal == ModalConfirmingDelete {
		c.modal = ModalClosed
		c.modalSeq++
	}
	c.deleteID = ""
}

// ConfirmDelete deletes the item awaiting confirmation. On failure the
// confirmation stays open.
func (c *PageController[T, F, Q]) ConfirmDelete(ctx context.Context) error {
	const op = "services.PageController.ConfirmDelete"

	c.mu.Lock()
	if c.modal != ModalConfirmingDelete || c.deleteID == "" {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrNoActiveModal)
	}
	if c.saving {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", op, domain.ErrBusy)
	}
	id, modalSeq := c.deleteID, c.modalSeq
	c.saving = true
	c.mu.Unlock()

	res, err := c.resource.Delete(ctx, id)

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Error("Failed to delete item", map[string]interface{}{
			"page":  c.name,
			"id":    id,
			"error": err.Error(),
		})
		c.toasts.Push(domain.ToastError, domain.MsgUnreachable)
		return fmt.Errorf("%s: %w", op, err)
	}
	if !res.IsOk() {
		c.mu.Unlock()
		msg := messageOr(res.Message(), domain.MsgDeleteFailed)
		c.toasts.Push(domain.ToastError, msg)
		return fmt.Errorf("%s: %w", op, &domain.ServerError{Message: msg})
	}
	if c.modalSeq == modalSeq {
		c.deleteID = ""
		c.modal = ModalClosed
		c.modalSeq++
	}
	c.mu.Unlock()

	c.toasts.Push(domain.ToastSuccess, c.messages.Deleted)
	c.logger.Info("Item deleted", map[string]interface{}{
		"page": c.name,
		"id":   id,
	})

	c.Reload(ctx)
	return nil
}

func (c *PageController[T, F, Q]) View() PageView[T, F, Q] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	v := PageView[T, F, Q]{
		Page:         c.name,
		State:        c.state,
		Items:        items,
		Total:        c.total,
		Query:        c.query,
		Modal:        c.modal,
		EditingID:    c.editID,
		Saving:       c.saving,
		DeleteID:     c.deleteID,
		Capabilities: c.caps,
	}
	if c.modal == ModalCreating || c.modal == ModalEditing {
		form := c.form
		v.Form = &form
	}
	return v
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
