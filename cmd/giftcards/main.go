package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/richxcame/giftcard-service/internal/giftcards"
	"github.com/richxcame/giftcard-service/pkg/config"
	"github.com/richxcame/giftcard-service/pkg/database"
	"github.com/richxcame/giftcard-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(pool)

	repo := giftcards.NewRepository(pool)
	_ = giftcards.NewService(repo)

	logger.Info("gift card service ready",
		zap.Int32("max_connections", cfg.Database.MaxConnections),
	)
}
