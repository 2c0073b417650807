package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/apiclient"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/handler/http"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/logger"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/memory"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/postgres"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/prometheus"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/redis"
	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/resources"
	"github.com/sm8ta/goride_admin_dashboard/internal/config"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"

	"github.com/go-playground/validator/v10"
	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
)

const purgeInterval = 10 * time.Minute

type App struct {
	Config         *config.Container
	Logger         ports.LoggerPort
	DB             *sql.DB
	RedisClient    *redisClient.Client
	SessionBackend ports.SessionBackend
	Registry       *services.WorkspaceRegistry
	HTTPRouter     *http.Router

	server *nethttp.Server
	stop   context.CancelFunc
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":             cfg.App.Name,
		"env":             cfg.App.Env,
		"session_backend": cfg.Session.Backend,
	})

	a := &App{
		Config: cfg,
		Logger: loggerAdapter,
	}

	// Session backend
	backend, err := a.openSessionBackend(ctx)
	if err != nil {
		return nil, err
	}
	a.SessionBackend = backend

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer)

	// Rental API client
	api, err := apiclient.New(cfg.API.URL, nil, loggerAdapter,
		apiclient.WithHTTPClient(&nethttp.Client{Timeout: cfg.API.Timeout}),
		apiclient.WithMetrics(metrics),
	)
	if err != nil {
		a.closeBackends()
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	// Services
	authService := services.NewAuthService(loggerAdapter, validate)
	deps := services.WorkspaceDeps{
		Backend:    backend,
		SessionTTL: cfg.Session.TTL,
		Clients: func(tokens ports.TokenSource) ports.Clients {
			return resources.NewClients(api.WithTokens(tokens))
		},
		Auth:     authService,
		Logger:   loggerAdapter,
		Validate: validate,
	}
	a.Registry = services.NewWorkspaceRegistry(func(id string) *services.Workspace {
		return services.NewWorkspace(id, deps)
	}, cfg.Session.IdleTTL)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, cfg.Token.Duration, loggerAdapter)
	handlers := http.NewHandlers(loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		tokenService,
		a.Registry,
		loggerAdapter,
		handlers,
	)
	if err != nil {
		a.closeBackends()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}
	a.HTTPRouter = router

	return a, nil
}

func (a *App) openSessionBackend(ctx context.Context) (ports.SessionBackend, error) {
	cfg := a.Config
	switch cfg.Session.Backend {
	case config.BackendRedis:
		conn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := conn.Ping(ctx).Result(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.RedisClient = conn
		return redis.NewRedisAdapter(conn, redis.DefaultKeyPrefix), nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.DB.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := postgres.Migrate(db, postgres.MigrationsDir); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		a.DB = db
		return postgres.NewSessionRepository(db), nil
	}

	a.Logger.Warn("Using in-memory sessions; sign-ins are lost on restart", nil)
	return memory.NewSessionBackend(), nil
}

// Run serves HTTP in the background.
func (a *App) Run() {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	if repo, ok := a.SessionBackend.(*postgres.SessionRepository); ok {
		go a.purgeExpired(ctx, repo)
	}

	a.server = &nethttp.Server{
		Addr:              listenAddr,
		Handler:           a.HTTPRouter.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()
}

func (a *App) purgeExpired(ctx context.Context, repo *postgres.SessionRepository) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.PurgeExpired(ctx)
			if err != nil {
				a.Logger.Warn("Failed to purge expired sessions", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			if n > 0 {
				a.Logger.Debug("Purged expired sessions", map[string]interface{}{
					"count": n,
				})
			}
		}
	}
}

// Stop shuts the HTTP server down and closes the session backend.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if a.stop != nil {
		a.stop()
	}
	var shutdownErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
			shutdownErr = err
		}
	}
	a.closeBackends()

	a.Logger.Info("Application stopped successfully", nil)
	return shutdownErr
}

func (a *App) closeBackends() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
