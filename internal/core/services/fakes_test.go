package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/logger"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/memory"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

var (
	nopLogger    = logger.NewNop()
	testValidate = validator.New()
	errTransport = fmt.Errorf("dial tcp: connection refused: %w", domain.ErrUnreachable)
)

type fakeMotorbikes struct {
	mu      sync.Mutex
	list    func(ctx context.Context, q ports.MotorbikeQuery) (domain.Result[domain.Page[domain.Motorbike]], error)
	create  func(ctx context.Context, p domain.MotorbikePayload) (domain.Result[domain.Motorbike], error)
	update  func(ctx context.Context, id string, p domain.MotorbikePayload) (domain.Result[domain.Motorbike], error)
	delete  func(ctx context.Context, id string) (domain.Result[domain.Empty], error)
	lists   int
	creates int
}

func (f *fakeMotorbikes) List(ctx context.Context, q ports.MotorbikeQuery) (domain.Result[domain.Page[domain.Motorbike]], error) {
	f.mu.Lock()
	f.lists++
	f.mu.Unlock()
	return f.list(ctx, q)
}

func (f *fakeMotorbikes) Get(ctx context.Context, id string) (domain.Result[domain.Motorbike], error) {
	return domain.Err[domain.Motorbike]("not implemented"), nil
}

func (f *fakeMotorbikes) Create(ctx context.Context, p domain.MotorbikePayload) (domain.Result[domain.Motorbike], error) {
	f.mu.Lock()
	f.creates++
	f.mu.Unlock()
	return f.create(ctx, p)
}

func (f *fakeMotorbikes) Update(ctx context.Context, id string, p domain.MotorbikePayload) (domain.Result[domain.Motorbike], error) {
	return f.update(ctx, id, p)
}

func (f *fakeMotorbikes) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return f.delete(ctx, id)
}

func (f *fakeMotorbikes) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

func (f *fakeMotorbikes) createCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates
}

type fakeRentals struct {
	mu      sync.Mutex
	list    func(ctx context.Context) (domain.Result[domain.Page[domain.Rental]], error)
	update  func(ctx context.Context, id string, status domain.RentalStatus) (domain.Result[domain.Rental], error)
	updates int
}

func (f *fakeRentals) List(ctx context.Context) (domain.Result[domain.Page[domain.Rental]], error) {
	return f.list(ctx)
}

func (f *fakeRentals) Get(ctx context.Context, id string) (domain.Result[domain.Rental], error) {
	return domain.Err[domain.Rental]("not implemented"), nil
}

func (f *fakeRentals) UpdateStatus(ctx context.Context, id string, status domain.RentalStatus) (domain.Result[domain.Rental], error) {
	f.mu.Lock()
	f.updates++
	f.mu.Unlock()
	return f.update(ctx, id, status)
}

type fakeUsers struct {
	list func(ctx context.Context, q ports.UserQuery) (domain.Result[domain.Page[domain.UserProfile]], error)
}

func (f *fakeUsers) List(ctx context.Context, q ports.UserQuery) (domain.Result[domain.Page[domain.UserProfile]], error) {
	return f.list(ctx, q)
}

func (f *fakeUsers) Get(ctx context.Context, id string) (domain.Result[domain.UserProfile], error) {
	return domain.Err[domain.UserProfile]("not implemented"), nil
}

func (f *fakeUsers) Update(ctx context.Context, id string, p domain.UserPayload) (domain.Result[domain.UserProfile], error) {
	return domain.Ok(domain.UserProfile{ID: id, Name: p.Name, Role: p.Role}), nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return domain.Ok(domain.Empty{}), nil
}

type fakeBlogs struct {
	list func(ctx context.Context) (domain.Result[domain.Page[domain.Blog]], error)
}

func (f *fakeBlogs) List(ctx context.Context) (domain.Result[domain.Page[domain.Blog]], error) {
	return f.list(ctx)
}

func (f *fakeBlogs) Get(ctx context.Context, id string) (domain.Result[domain.Blog], error) {
	return domain.Err[domain.Blog]("not implemented"), nil
}

func (f *fakeBlogs) Create(ctx context.Context, p domain.BlogPayload) (domain.Result[domain.Blog], error) {
	return domain.Ok(domain.Blog{ID: "b-new", Title: p.Title}), nil
}

func (f *fakeBlogs) Update(ctx context.Context, id string, p domain.BlogPayload) (domain.Result[domain.Blog], error) {
	return domain.Ok(domain.Blog{ID: id, Title: p.Title}), nil
}

func (f *fakeBlogs) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return domain.Ok(domain.Empty{}), nil
}

type fakePromotions struct {
	list func(ctx context.Context) (domain.Result[domain.Page[domain.Promotion]], error)
}

func (f *fakePromotions) List(ctx context.Context) (domain.Result[domain.Page[domain.Promotion]], error) {
	return f.list(ctx)
}

func (f *fakePromotions) Get(ctx context.Context, id string) (domain.Result[domain.Promotion], error) {
	return domain.Err[domain.Promotion]("not implemented"), nil
}

func (f *fakePromotions) Create(ctx context.Context, p domain.PromotionPayload) (domain.Result[domain.Promotion], error) {
	return domain.Ok(domain.Promotion{ID: "p-new", Title: p.Title}), nil
}

func (f *fakePromotions) Update(ctx context.Context, id string, p domain.PromotionPayload) (domain.Result[domain.Promotion], error) {
	return domain.Ok(domain.Promotion{ID: id, Title: p.Title}), nil
}

func (f *fakePromotions) Delete(ctx context.Context, id string) (domain.Result[domain.Empty], error) {
	return domain.Ok(domain.Empty{}), nil
}

type fakeAuth struct {
	login    func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error)
	profile  func(ctx context.Context, accessToken string) (domain.Result[domain.UserProfile], error)
	refresh  func(ctx context.Context, refreshToken string) (domain.Result[domain.LoginData], error)
	profiles int
}

func (f *fakeAuth) Login(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
	return f.login(ctx, creds)
}

func (f *fakeAuth) Register(ctx context.Context, p domain.RegisterPayload) (domain.Result[domain.UserProfile], error) {
	return domain.Err[domain.UserProfile]("not implemented"), nil
}

func (f *fakeAuth) Profile(ctx context.Context, accessToken string) (domain.Result[domain.UserProfile], error) {
	f.profiles++
	return f.profile(ctx, accessToken)
}

func (f *fakeAuth) Refresh(ctx context.Context, refreshToken string) (domain.Result[domain.LoginData], error) {
	return f.refresh(ctx, refreshToken)
}

// failingBackend fails every call.
type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func (failingBackend) Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error {
	return errors.New("connection reset")
}

func (failingBackend) Delete(ctx context.Context, keys ...string) error {
	return errors.New("connection reset")
}

func newTestStore() *SessionStore {
	return NewSessionStore(memory.NewSessionBackend(), "test", 0, nopLogger)
}

func motorbikes(n int) []domain.Motorbike {
	out := make([]domain.Motorbike, n)
	for i := range out {
		out[i] = domain.Motorbike{
			ID:           fmt.Sprintf("m-%d", i+1),
			Name:         fmt.Sprintf("Bike %d", i+1),
			Type:         domain.Scooter,
			Status:       domain.Available,
			PricePerDay:  150000,
			LicensePlate: fmt.Sprintf("59A-%05d", i+1),
		}
	}
	return out
}

func rentalsWith(status domain.RentalStatus, n int, offset int) []domain.Rental {
	out := make([]domain.Rental, n)
	for i := range out {
		out[i] = domain.Rental{
			ID:         fmt.Sprintf("r-%d", offset+i+1),
			Status:     status,
			TotalPrice: 100000,
		}
	}
	return out
}

func toastMessages(q *ToastQueue) []string {
	var out []string
	for _, t := range q.Active() {
		out = append(out, t.Message)
	}
	return out
}
