package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/logger"
	"github.com/KirkDiggler/buddyup/internal/common/uuid"
	"github.com/KirkDiggler/buddyup/internal/config"
	"github.com/KirkDiggler/buddyup/internal/handlers/rest"
	"github.com/KirkDiggler/buddyup/internal/models"
	"github.com/KirkDiggler/buddyup/internal/picker"
	eventRepo "github.com/KirkDiggler/buddyup/internal/repositories/event"
	userRepo "github.com/KirkDiggler/buddyup/internal/repositories/user"
	authService "github.com/KirkDiggler/buddyup/internal/services/auth"
	eventService "github.com/KirkDiggler/buddyup/internal/services/event"
	userService "github.com/KirkDiggler/buddyup/internal/services/user"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadAPI()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	events, err := eventRepo.NewRedis(&eventRepo.Config{RedisClient: redisClient})
	if err != nil {
		zapLogger.Fatal("Failed to create event repository", zap.Error(err))
	}

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		zapLogger.Fatal("Failed to create user repository", zap.Error(err))
	}

	// Identity providers; a provider without credentials is disabled
	verifiers := map[models.Provider]authService.IdentityVerifier{}

	if cfg.Facebook.AppID != "" && cfg.Facebook.AppSecret != "" {
		fb, err := authService.NewFacebookVerifier(&authService.FacebookConfig{
			AppID:     cfg.Facebook.AppID,
			AppSecret: cfg.Facebook.AppSecret,
			GraphURL:  cfg.Facebook.GraphURL,
			Logger:    zapLogger,
		})
		if err != nil {
			zapLogger.Fatal("Failed to create Facebook verifier", zap.Error(err))
		}
		verifiers[models.ProviderFacebook] = fb
	} else {
		zapLogger.Warn("Facebook login disabled, FACEBOOK_APP_ID or FACEBOOK_APP_SECRET not set")
	}

	if cfg.Google.ClientID != "" {
		g, err := authService.NewGoogleVerifier(&authService.GoogleConfig{
			ClientID: cfg.Google.ClientID,
			Logger:   zapLogger,
		})
		if err != nil {
			zapLogger.Fatal("Failed to create Google verifier", zap.Error(err))
		}
		verifiers[models.ProviderGoogle] = g
	} else {
		zapLogger.Warn("Google login disabled, GOOGLE_CLIENT_ID not set")
	}

	// Initialize services
	authSvc, err := authService.New(&authService.Config{
		UserRepo:      users,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Verifiers:     verifiers,
		JWTSecret:     cfg.JWT.Secret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
		Logger:        zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create auth service", zap.Error(err))
	}

	eventSvc, err := eventService.New(&eventService.Config{
		EventRepo:     events,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Sampler:       picker.New(&picker.Config{}),
		Logger:        zapLogger,
		PageSize:      cfg.PageSize,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create event service", zap.Error(err))
	}

	userSvc, err := userService.New(&userService.Config{
		UserRepo: users,
		Clock:    clock.New(),
		Logger:   zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create user service", zap.Error(err))
	}

	limiter := rest.NewRateLimiter(float64(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	defer limiter.Close()

	router, err := rest.NewRouter(&rest.Config{
		AuthService:  authSvc,
		EventService: eventSvc,
		UserService:  userSvc,
		Logger:       zapLogger,
		HealthCheck: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        limiter,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server has been shut down")
}
