package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"tourismportal/internal/auth"
	"tourismportal/internal/config"
	"tourismportal/internal/db"
	"tourismportal/internal/email"
	"tourismportal/internal/images"
	"tourismportal/internal/jobs"
	"tourismportal/internal/metrics"
	"tourismportal/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() {
		if err := database.SeedDevPlaces(ctx); err != nil {
			log.Printf("Warning: failed to seed dev places: %v", err)
		}
	}

	// Redis-backed token store (refresh tokens + access blacklist)
	storage := redis.New(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		Database: cfg.RedisDB,
	})
	defer storage.Close()

	tokenStore := auth.NewTokenStore(storage)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Image uploads
	imageStore, err := images.NewStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	notifier := email.NewNotifier(cfg, database)

	metrics.Init(database)

	// Background sweep of uploaded images no place references anymore
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	if cfg.ImageSweepInterval > 0 {
		sweeper := jobs.NewImageSweeper(database, imageStore.Dir(),
			time.Duration(cfg.ImageSweepInterval)*time.Minute, 24*time.Hour)
		go sweeper.Start(jobCtx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(server.Deps{
		DB:         database,
		JWT:        jwtService,
		TokenStore: tokenStore,
		Images:     imageStore,
		Notifier:   notifier,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
