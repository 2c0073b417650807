package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/logger"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/memory"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/prometheus"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/resources"
	"github.com/sm8ta/goride_admin_dashboard/internal/config"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers the rental API calls the dashboard makes.
type fakeAPI struct {
	mu         sync.Mutex
	role       domain.UserRole
	motorbikes []domain.Motorbike
	rentals    []domain.Rental
	deletes    []string
}

func (f *fakeAPI) Do(ctx context.Context, req ports.APIRequest) (*domain.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case req.Method == http.MethodPost && req.Path == "/auth/login":
		return ok(map[string]interface{}{
			"accessToken":  "access",
			"refreshToken": "refresh",
			"user":         domain.UserProfile{ID: "u1", Name: "Admin", Email: "admin@goride.vn", Role: f.role},
		}), nil
	case req.Method == http.MethodGet && req.Path == "/motorbikes":
		return ok(map[string]interface{}{"motorbikes": f.motorbikes, "total": len(f.motorbikes)}), nil
	case req.Method == http.MethodDelete && req.Path == "/motorbikes/{id}":
		id := req.PathParams["id"]
		f.deletes = append(f.deletes, id)
		kept := f.motorbikes[:0]
		for _, m := range f.motorbikes {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		f.motorbikes = kept
		return ok(nil), nil
	case req.Method == http.MethodGet && req.Path == "/rentals/all":
		return ok(f.rentals), nil
	case req.Method == http.MethodGet:
		return ok([]interface{}{}), nil
	}
	return &domain.Envelope{Success: false, Message: "unexpected call"}, nil
}

func ok(data interface{}) *domain.Envelope {
	raw, _ := json.Marshal(data)
	return &domain.Envelope{Success: true, Data: raw}
}

type testClient struct {
	t      *testing.T
	engine *gin.Engine
	cookie *http.Cookie
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.engine.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func setupRouter(t *testing.T, api *fakeAPI) (*testClient, *services.WorkspaceRegistry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	validate := validator.New()
	deps := services.WorkspaceDeps{
		Backend: memory.NewSessionBackend(),
		Clients: func(tokens ports.TokenSource) ports.Clients {
			return resources.NewClients(api)
		},
		Auth:     services.NewAuthService(log, validate),
		Logger:   log,
		Validate: validate,
	}
	registry := services.NewWorkspaceRegistry(func(id string) *services.Workspace {
		return services.NewWorkspace(id, deps)
	}, time.Hour)

	metrics := prometheus.NewPrometheusAdapter(prom.NewRegistry())
	router, err := NewRouter(
		&config.HTTP{Env: "test", CookieMaxAge: time.Hour},
		NewJWTTokenService("test-secret", time.Hour, log),
		registry,
		log,
		NewHandlers(log, metrics),
	)
	require.NoError(t, err)
	return &testClient{t: t, engine: router.Engine()}, registry
}

func login(t *testing.T, c *testClient) {
	t.Helper()
	rec := c.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "admin@goride.vn", Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{})

	rec := c.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_PagesRequireLogin(t *testing.T) {
	c, registry := setupRouter(t, &fakeAPI{})

	rec := c.do(http.MethodGet, "/api/pages/motorbikes", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	assert.Equal(t, 1, registry.Len())

	rec = c.do(http.MethodGet, "/api/shell", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	view := decode(t, rec)["view"].(map[string]interface{})
	assert.Equal(t, "unauthenticated", view["state"])
	assert.Equal(t, 1, registry.Len())
}

func TestRouter_LoginDeniesCustomer(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Customer})

	rec := c.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: "user@goride.vn", Password: "pw"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, domain.MsgAccessDenied, body["error"])
	assert.Equal(t, "unauthenticated", body["view"].(map[string]interface{})["state"])
}

func TestRouter_LoginAndDeleteMotorbike(t *testing.T) {
	api := &fakeAPI{
		role: domain.Admin,
		motorbikes: []domain.Motorbike{
			{ID: "m1", Name: "Vision"},
			{ID: "m2", Name: "Wave"},
		},
	}
	c, _ := setupRouter(t, api)
	login(t, c)

	rec := c.do(http.MethodGet, "/api/pages/motorbikes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode(t, rec)["view"].(map[string]interface{})
	assert.Len(t, view["items"], 2)

	rec = c.do(http.MethodPost, "/api/pages/motorbikes/delete/m1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirming_delete", decode(t, rec)["view"].(map[string]interface{})["modal"])

	rec = c.do(http.MethodPost, "/api/pages/motorbikes/delete/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	view = body["view"].(map[string]interface{})
	items := view["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "m2", items[0].(map[string]interface{})["id"])
	assert.Equal(t, []string{"m1"}, api.deletes)
	assert.NotEmpty(t, body["toasts"])

	rec = c.do(http.MethodPost, "/api/pages/motorbikes/delete/confirm", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, []string{"m1"}, api.deletes)
}

func TestRouter_SubmitMissingFields(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Admin})
	login(t, c)

	rec := c.do(http.MethodPost, "/api/pages/blogs/modal", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/pages/blogs/submit", domain.BlogForm{Title: "Only a title"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "creating", body["view"].(map[string]interface{})["modal"])
}

func TestRouter_UsersHaveNoCreate(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Admin})
	login(t, c)

	rec := c.do(http.MethodPost, "/api/pages/users/modal", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_InvalidListQuery(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Admin})
	login(t, c)

	rec := c.do(http.MethodGet, "/api/pages/motorbikes?page=0&type=BOAT", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodGet, "/api/pages/motorbikes?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodGet, "/api/pages/rentals?status=LOST", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RentalsFilterAndInertStatus(t *testing.T) {
	api := &fakeAPI{role: domain.Admin}
	for i := 0; i < 12; i++ {
		status := domain.Pending
		if i%3 == 0 {
			status = domain.Completed
		}
		api.rentals = append(api.rentals, domain.Rental{ID: string(rune('a' + i)), Status: status})
	}
	c, _ := setupRouter(t, api)
	login(t, c)

	rec := c.do(http.MethodGet, "/api/pages/rentals?status=PENDING", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode(t, rec)["view"].(map[string]interface{})
	assert.EqualValues(t, 8, view["total"])
	assert.EqualValues(t, 1, view["totalPages"])

	rec = c.do(http.MethodPost, "/api/pages/rentals/b/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPost, "/api/pages/rentals/status/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.do(http.MethodDelete, "/api/pages/rentals/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LogoutResetsShell(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Admin})
	login(t, c)

	rec := c.do(http.MethodPut, "/api/shell/page", NavigateRequest{Page: "users"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "users", decode(t, rec)["view"].(map[string]interface{})["activePage"])

	rec = c.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode(t, rec)["view"].(map[string]interface{})
	assert.Equal(t, "unauthenticated", view["state"])
	assert.Equal(t, "dashboard", view["activePage"])

	rec = c.do(http.MethodGet, "/api/pages/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Dashboard(t *testing.T) {
	api := &fakeAPI{
		role:       domain.Admin,
		motorbikes: []domain.Motorbike{{ID: "m1", Status: domain.Available}},
		rentals:    []domain.Rental{{ID: "r1", Status: domain.Completed, TotalPrice: 300000}},
	}
	c, _ := setupRouter(t, api)
	login(t, c)

	rec := c.do(http.MethodGet, "/api/pages/dashboard", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["view"].(map[string]interface{})["stats"].(map[string]interface{})
	assert.EqualValues(t, 1, stats["totalMotorbikes"])
	assert.EqualValues(t, 300000, stats["revenue"])
	assert.Equal(t, false, stats["partial"])
}

func TestRouter_ToastsDismiss(t *testing.T) {
	c, _ := setupRouter(t, &fakeAPI{role: domain.Admin})
	login(t, c)

	rec := c.do(http.MethodGet, "/api/toasts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var toasts []domain.Toast
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toasts))
	require.Len(t, toasts, 1)
	assert.Equal(t, domain.MsgWelcome, toasts[0].Message)

	rec = c.do(http.MethodDelete, "/api/toasts/"+toasts[0].ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = c.do(http.MethodDelete, "/api/toasts/"+toasts[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour, logger.NewNop())
	payload := &domain.SessionTokenPayload{SessionID: uuid.New(), IssuedAt: time.Now()}

	token, err := svc.CreateToken(payload)
	require.NoError(t, err)

	got, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload.SessionID, got.SessionID)

	other := NewJWTTokenService("other", time.Hour, logger.NewNop())
	_, err = other.VerifyToken(token)
	assert.Error(t, err)

	expired := NewJWTTokenService("secret", time.Minute, logger.NewNop())
	old, err := expired.CreateToken(&domain.SessionTokenPayload{SessionID: payload.SessionID, IssuedAt: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	_, err = expired.VerifyToken(old)
	assert.Error(t, err)
}
