package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pageza/promptchef/backend/config"
	"github.com/pageza/promptchef/backend/internal/database"
	"github.com/pageza/promptchef/backend/internal/middleware"
	"github.com/pageza/promptchef/backend/internal/router"
	"github.com/pageza/promptchef/backend/internal/server"
	"github.com/pageza/promptchef/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	generator, closeGenerator, err := service.NewGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create %s generator: %v", cfg.Provider, err)
	}
	defer closeGenerator()

	deps := router.Dependencies{
		Recipes:     service.NewRecipeService(generator),
		Evaluations: service.NewEvaluationService(generator, cfg.Model),
		StaticDir:   cfg.StaticDir,
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if db != nil {
		deps.History = service.NewHistoryService(db)
	}

	if cfg.S3BucketName != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		deps.Archive = service.NewReportArchive(s3Config)
	}

	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		} else {
			defer redisClient.Close()
			deps.Limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimitPerHour)
			deps.RateLimit = cfg.RateLimitPerHour
		}
	}

	if cfg.OperatorJWTSecret != "" {
		deps.Tokens = service.NewOperatorTokenService(cfg.OperatorJWTSecret)
	}

	srv := server.New(cfg, router.SetupRouter(deps))

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server with %s provider (model %s)", cfg.Provider, cfg.Model)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
