package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type ClientFactory func(tokens ports.TokenSource) ports.Clients

type WorkspaceDeps struct {
	Backend    ports.SessionBackend
	SessionTTL time.Duration
	Clients    ClientFactory
	Auth       *AuthService
	Logger     ports.LoggerPort
	Validate   *validator.Validate
}

type PageSet struct {
	Dashboard  *DashboardService
	Motorbikes *MotorbikeController
	Rentals    *RentalController
	Users      *UserController
	Blogs      *BlogController
	Promotions *PromotionController
}

// Workspace is everything one browser session sees: its persisted session,
// shell, toasts and page controllers.
type Workspace struct {
	ID      string
	Session *SessionStore
	Shell   *Shell
	Toasts  *ToastQueue

	deps    WorkspaceDeps
	clients ports.Clients

	mu    sync.Mutex
	pages *PageSet
}

func NewWorkspace(id string, deps WorkspaceDeps) *Workspace {
	session := NewSessionStore(deps.Backend, id, deps.SessionTTL, deps.Logger)
	toasts := NewToastQueue(0)
	clients := deps.Clients(session)

	w := &Workspace{
		ID:      id,
		Session: session,
		Toasts:  toasts,
		deps:    deps,
		clients: clients,
	}
	w.Shell = NewShell(session, clients.Auth, deps.Auth, toasts, deps.Logger)
	w.Shell.OnLogout(w.resetPages)
	w.pages = w.newPages()
	return w
}

func (w *Workspace) Mount(ctx context.Context) {
	w.Shell.Mount(ctx)
}

func (w *Workspace) Pages() *PageSet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pages
}

func (w *Workspace) resetPages() {
	pages := w.newPages()

	w.mu.Lock()
	w.pages = pages
	w.mu.Unlock()
}

func (w *Workspace) newPages() *PageSet {
	return &PageSet{
		Dashboard:  NewDashboardService(w.clients, w.deps.Logger),
		Motorbikes: NewMotorbikeController(w.clients.Motorbikes, w.Toasts, w.deps.Logger, w.deps.Validate),
		Rentals:    NewRentalController(w.clients.Rentals, w.Toasts, w.deps.Logger),
		Users:      NewUserController(w.clients.Users, w.Toasts, w.deps.Logger, w.deps.Validate),
		Blogs:      NewBlogController(w.clients.Blogs, w.Toasts, w.deps.Logger, w.deps.Validate),
		Promotions: NewPromotionController(w.clients.Promotions, w.Toasts, w.deps.Logger, w.deps.Validate),
	}
}

type registryEntry struct {
	ws       *Workspace
	lastSeen time.Time
}

// WorkspaceRegistry keeps workspaces in memory by session id and drops the
// ones idle for longer than idleTTL. Tokens survive eviction in the backend.
type WorkspaceRegistry struct {
	mu      sync.Mutex
	items   map[string]*registryEntry
	build   func(id string) *Workspace
	idleTTL time.Duration
	now     func() time.Time
}

func NewWorkspaceRegistry(build func(id string) *Workspace, idleTTL time.Duration) *WorkspaceRegistry {
	return &WorkspaceRegistry{
		items:   make(map[string]*registryEntry),
		build:   build,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (r *WorkspaceRegistry) Get(ctx context.Context, id string) *Workspace {
	r.mu.Lock()
	r.sweep()
	if e, ok := r.items[id]; ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.ws
	}
	r.mu.Unlock()

	ws := r.build(id)
	ws.Mount(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.items[id]; ok {
		e.lastSeen = r.now()
		return e.ws
	}
	r.items[id] = &registryEntry{ws: ws, lastSeen: r.now()}
	return ws
}

func (r *WorkspaceRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
}

func (r *WorkspaceRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *WorkspaceRegistry) sweep() {
	if r.idleTTL <= 0 {
		return
	}
	cutoff := r.now().Add(-r.idleTTL)
	for id, e := range r.items {
		if e.lastSeen.Before(cutoff) {
			delete(r.items, id)
		}
	}
}
