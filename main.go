package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pgstay-backend/config"
	"pgstay-backend/controllers"
	"pgstay-backend/models"
	"pgstay-backend/routes"
	"pgstay-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️  JWT_SECRET is not set; using the built-in development secret")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Photo storage (MinIO or local uploads fallback)
	photoService, err := services.NewPhotoServiceFromEnv()
	if err != nil {
		log.Fatalf("❌ Photo storage init failed: %v", err)
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := photoService.EnsureBucket(ctx); err != nil {
			log.Fatalf("❌ Photo bucket check failed: %v", err)
		}
		cancel()
	}

	workers, _ := strconv.Atoi(os.Getenv("NOTIFY_WORKERS"))
	notificationService := services.NewNotificationService(workers)

	// Initialize services
	pgService := services.NewListingService(db, models.PropertyTypePG)
	hostelService := services.NewListingService(db, models.PropertyTypeHostel)
	bookingService := services.NewBookingService(db, notificationService)

	// Initialize controllers
	pgController := controllers.NewListingController(pgService, photoService)
	hostelController := controllers.NewListingController(hostelService, photoService)
	bookingController := controllers.NewBookingController(bookingService)

	// Build router
	router := routes.SetupRouter(pgController, hostelController, bookingController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	// Drain queued notifications before exiting
	notificationService.Shutdown()

	log.Println("✅ Server stopped gracefully")
}
