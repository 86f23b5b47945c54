package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/youssefhk11/seneca-hackathon/internal/cli"
	"github.com/youssefhk11/seneca-hackathon/internal/config"
	"github.com/youssefhk11/seneca-hackathon/internal/repository"
	"github.com/youssefhk11/seneca-hackathon/internal/services"
	"github.com/youssefhk11/seneca-hackathon/internal/storage"
)

func main() {
	ctx := context.Background()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// 2. Open the store
	var store storage.Store
	if cfg.RedisAddr != "" {
		redisStore, err := storage.NewRedisStore(ctx, storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to storage: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		logger.Warn("REDIS_ADDR not set, using the in-memory store; data will not survive this run")
		store = storage.NewMemoryStore()
	}

	// 3. Wire the app
	db := storage.NewDB(store, logger)
	repository.EnsureSeedUsers(ctx, db)

	sessions := repository.NewSessionRepository(db)
	users := repository.NewUserRepository(db, sessions)

	app := &cli.App{
		Users:     users,
		Sessions:  sessions,
		Chat:      repository.NewChatRepository(db),
		Community: services.NewCommunityService(users),
		Out:       os.Stdout,
	}
	if cfg.AIEnabled() {
		app.AI = services.NewGeminiService(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	}

	// 4. Run the requested command
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("fitconnect: %v", err)
	}
}
