package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/buddyup/internal/clients/buddyup"
	"github.com/KirkDiggler/buddyup/internal/common/clock"
	"github.com/KirkDiggler/buddyup/internal/common/logger"
	"github.com/KirkDiggler/buddyup/internal/config"
	"github.com/KirkDiggler/buddyup/internal/handlers/discord"
	searchRepo "github.com/KirkDiggler/buddyup/internal/repositories/search"
	sessionRepo "github.com/KirkDiggler/buddyup/internal/repositories/session"
	"github.com/KirkDiggler/buddyup/internal/services/directory"
	"github.com/KirkDiggler/buddyup/internal/services/membership"
	"github.com/KirkDiggler/buddyup/internal/services/messaging"
	"github.com/KirkDiggler/buddyup/internal/services/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadBot()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.DiscordToken == "" {
		zapLogger.Fatal("DISCORD_TOKEN environment variable is required")
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

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		zapLogger.Fatal("Failed to create session repository", zap.Error(err))
	}

	searches, err := searchRepo.NewRedis(&searchRepo.Config{RedisClient: redisClient})
	if err != nil {
		zapLogger.Fatal("Failed to create search repository", zap.Error(err))
	}

	apiClient, err := buddyup.New(&buddyup.Config{
		BaseURL: cfg.APIURL,
		Logger:  zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create API client", zap.Error(err))
	}

	realClock := clock.New()

	// Initialize services
	sessionSvc, err := session.New(&session.Config{
		SessionRepo: sessions,
		Client:      apiClient,
		Clock:       realClock,
		Logger:      zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create session service", zap.Error(err))
	}

	directorySvc, err := directory.New(&directory.Config{
		Client:   apiClient,
		Clock:    realClock,
		PageSize: cfg.PageSize,
		Logger:   zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create directory service", zap.Error(err))
	}

	membershipSvc, err := membership.New(&membership.Config{
		Client: apiClient,
		Logger: zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create membership service", zap.Error(err))
	}

	messagingSvc, err := messaging.New(&messaging.Config{Logger: zapLogger})
	if err != nil {
		zapLogger.Fatal("Failed to create messaging service", zap.Error(err))
	}

	views, err := discord.NewViews(&discord.ViewsConfig{
		SessionService:    sessionSvc,
		DirectoryService:  directorySvc,
		MembershipService: membershipSvc,
		MessagingService:  messagingSvc,
		Client:            apiClient,
		Clock:             realClock,
		SearchRepo:        searches,
		APIBaseURL:        cfg.APIURL,
		DefaultCity:       cfg.DefaultCity,
		Logger:            zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create views", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Views:         views,
		Logger:        zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		zapLogger.Fatal("Failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	if err := bot.Stop(); err != nil {
		zapLogger.Error("Error stopping bot", zap.Error(err))
	}

	zapLogger.Info("Bot has been shut down")
}
