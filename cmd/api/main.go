package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Himanshur25/recipe-master/config"
	"github.com/Himanshur25/recipe-master/internal/api"
	"github.com/Himanshur25/recipe-master/internal/database"
	"github.com/Himanshur25/recipe-master/internal/middleware"
	"github.com/Himanshur25/recipe-master/internal/router"
	"github.com/Himanshur25/recipe-master/internal/server"
	"github.com/Himanshur25/recipe-master/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The app works without Redis; the rate limiters just switch off.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	imageService := service.NewImageService(s3Config)
	recipeService := service.NewRecipeService(db, imageService)

	handlers := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Recipe:         api.NewRecipeHandler(recipeService, imageService),
		Health:         api.NewHealthHandler(db, redisClient),
		TokenValidator: authService,
	}
	if redisClient != nil {
		handlers.RecipeCreationLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		handlers.ReactionLimiter = middleware.NewReactionRateLimiter(redisClient)
	}

	srv := server.New(router.Setup(handlers), cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		errChan <- srv.Start()
	}()

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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
