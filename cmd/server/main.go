package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"tutorial-service/internal/application/services"
	"tutorial-service/internal/config"
	"tutorial-service/internal/delivery/handler"
	"tutorial-service/internal/infrastructure"
	"tutorial-service/internal/infrastructure/db/postgres"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	cache := infrastructure.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cache.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	loginLimiter := infrastructure.NewRateLimiter(
		rate.Limit(float64(cfg.LoginRatePerMinute)/60.0), cfg.LoginBurst)

	userRepo := postgres.NewUserRepository(db)
	tutorialRepo := postgres.NewTutorialRepository(db)

	authService := services.NewAuthService(userRepo, jwtService, loginLimiter)
	userService := services.NewUserService(userRepo, cache)
	tutorialService := services.NewTutorialService(tutorialRepo, cache)

	h := handler.NewHandler(authService, userService, tutorialService)
	e := handler.NewRouter(h, authService, logger)

	logger.Info("server starting", zap.Int("port", cfg.Port))
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
