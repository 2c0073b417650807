package services

import (
	"context"
	"sync"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type AuthState string

const (
	AuthChecking        AuthState = "checking_auth"
	AuthUnauthenticated AuthState = "unauthenticated"
	AuthAuthenticated   AuthState = "authenticated"
)

type PageName string

const (
	PageDashboard  PageName = "dashboard"
	PageMotorbikes PageName = "motorbikes"
	PageRentals    PageName = "rentals"
	PageUsers      PageName = "users"
	PageBlogs      PageName = "blogs"
	PagePromotions PageName = "promotions"
)

var Pages = []PageName{PageDashboard, PageMotorbikes, PageRentals, PageUsers, PageBlogs, PagePromotions}

func ParsePage(name string) PageName {
	for _, p := range Pages {
		if string(p) == name {
			return p
		}
	}
	return PageDashboard
}

type ShellView struct {
	State      AuthState           `json:"state"`
	ActivePage PageName            `json:"activePage"`
	User       *domain.UserProfile `json:"user,omitempty"`
	Toasts     []domain.Toast      `json:"toasts"`
}

// Shell gates the dashboard behind login and tracks the selected page.
// The session is read once, on Mount.
type Shell struct {
	mu       sync.Mutex
	session  ports.SessionStore
	auth     ports.AuthClient
	service  *AuthService
	toasts   *ToastQueue
	logger   ports.LoggerPort
	onLogout func()

	state  AuthState
	active PageName
	user   *domain.UserProfile
}

func NewShell(session ports.SessionStore, auth ports.AuthClient, service *AuthService, toasts *ToastQueue, logger ports.LoggerPort) *Shell {
	return &Shell{
		session: session,
		auth:    auth,
		service: service,
		toasts:  toasts,
		logger:  logger,
		state:   AuthChecking,
		active:  PageDashboard,
	}
}

func (s *Shell) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

func (s *Shell) Mount(ctx context.Context) {
	loggedIn := s.session.IsLoggedIn(ctx)
	var user *domain.UserProfile
	if loggedIn {
		user = s.session.GetUser(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if loggedIn {
		s.state = AuthAuthenticated
		s.user = user
	} else {
		s.state = AuthUnauthenticated
	}
}

func (s *Shell) Login(ctx context.Context, creds domain.LoginCredentials) error {
	user, err := s.service.Login(ctx, s.auth, s.session, creds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = AuthAuthenticated
	s.user = user
	s.active = PageDashboard
	s.mu.Unlock()

	s.toasts.Push(domain.ToastSuccess, domain.MsgWelcome)
	return nil
}

// Logout always ends in the unauthenticated state; a failure to clear the
// backend is returned after the local state is reset.
func (s *Shell) Logout(ctx context.Context) error {
	err := s.service.Logout(ctx, s.session)

	s.mu.Lock()
	s.state = AuthUnauthenticated
	s.user = nil
	s.active = PageDashboard
	onLogout := s.onLogout
	s.mu.Unlock()

	if onLogout != nil {
		onLogout()
	}
	s.toasts.Push(domain.ToastInfo, domain.MsgLoggedOut)
	return err
}

func (s *Shell) Navigate(page string) PageName {
	p := ParsePage(page)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = p
	return p
}

func (s *Shell) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == AuthAuthenticated
}

func (s *Shell) View() ShellView {
	s.mu.Lock()
	v := ShellView{
		State:      s.state,
		ActivePage: s.active,
		User:       s.user,
	}
	s.mu.Unlock()

	v.Toasts = s.toasts.Active()
	return v
}
