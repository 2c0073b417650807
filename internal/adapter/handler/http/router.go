package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sm8ta/goride_admin_dashboard/internal/config"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

type Handlers struct {
	Shell      *ShellHandler
	Dashboard  *DashboardHandler
	Rentals    *RentalHandler
	Motorbikes *MotorbikeHandler
	Users      *UserHandler
	Blogs      *BlogHandler
	Promotions *PromotionHandler
}

func NewHandlers(logger ports.LoggerPort, metrics ports.MetricsPort) Handlers {
	return Handlers{
		Shell:      NewShellHandler(logger, metrics),
		Dashboard:  NewDashboardHandler(logger, metrics),
		Rentals:    NewRentalHandler(logger, metrics),
		Motorbikes: NewMotorbikeHandler(logger, metrics),
		Users:      NewUserHandler(logger, metrics),
		Blogs:      NewBlogHandler(logger, metrics),
		Promotions: NewPromotionHandler(logger, metrics),
	}
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	registry *services.WorkspaceRegistry,
	logger ports.LoggerPort,
	handlers Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	origins := strings.Split(cfg.AllowedOrigins, ",")
	if cfg.AllowedOrigins == "" {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(SessionMiddleware(tokenService, registry, CookieConfig{
		Name:   SessionCookieName,
		MaxAge: cfg.CookieMaxAge,
		Secure: cfg.CookieSecure,
	}, logger))
	{
		api.POST("/auth/login", handlers.Shell.Login)
		api.POST("/auth/logout", handlers.Shell.Logout)
		api.GET("/shell", handlers.Shell.Shell)
		api.GET("/toasts", handlers.Shell.Toasts)
		api.DELETE("/toasts/:id", handlers.Shell.DismissToast)
	}

	authed := api.Group("")
	authed.Use(AuthMiddleware(logger))
	authed.PUT("/shell/page", handlers.Shell.Navigate)

	pages := authed.Group("/pages")
	{
		pages.GET("/dashboard", handlers.Dashboard.Get)

		rentals := pages.Group("/rentals")
		rentals.GET("", handlers.Rentals.List)
		rentals.PUT("/status", handlers.Rentals.SelectStatus)
		rentals.DELETE("/status", handlers.Rentals.CloseStatus)
		rentals.POST("/status/submit", handlers.Rentals.SubmitStatus)
		rentals.POST("/:id/status", handlers.Rentals.OpenStatus)

		handlers.Motorbikes.Register(pages.Group("/motorbikes"))
		handlers.Users.Register(pages.Group("/users"))
		handlers.Blogs.Register(pages.Group("/blogs"))
		handlers.Promotions.Register(pages.Group("/promotions"))
	}
	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
