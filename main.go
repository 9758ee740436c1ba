// main.go
package main

import (
	"context"
	"log"

	"glamhaven/cmd"
	"glamhaven/internal/data/cache"
	"glamhaven/internal/data/repository"
	"glamhaven/internal/data/seed"
	"glamhaven/internal/wire"
	"glamhaven/pkg/database"
	"glamhaven/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	ctx := context.Background()
	if err := database.Migrate(ctx, db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	if err := seed.Run(ctx, repos, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Redis is optional. Without it salon reads go straight to postgres.
	if config.Redis.Addr != "" {
		rdb, err := cache.ConnectRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, salon cache disabled", zap.Error(err))
		} else {
			repos.Salon = cache.NewCachedSalonRepository(repos.Salon, rdb, logger)
			logger.Info("Salon cache enabled", zap.String("addr", config.Redis.Addr))
		}
	}

	app := wire.Wiring(repos, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
