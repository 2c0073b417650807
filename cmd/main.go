package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sm8ta/goride_admin_dashboard/docs"
	"github.com/sm8ta/goride_admin_dashboard/internal/app"
	"github.com/sm8ta/goride_admin_dashboard/internal/config"

	_ "github.com/lib/pq"
)

// @title GoRide Admin Dashboard API
// @version 1.0
// @description Backend for the GoRide motorbike rental admin dashboard. Each browser session is identified by the goride_session cookie.

// @host localhost:8080
// @BasePath /
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create app
	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	application.Run()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop app: %v", err)
	}
}
