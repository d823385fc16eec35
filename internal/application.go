package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
)

// RunApp - runs the application until SIGINT/SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameRepo, closeStorage, err := openGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	gameUseCase := usecase.NewGameUseCase(logger, gameRepo)
	router := rest.NewRouter(logger, gameUseCase)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
	if err = rest.Start(ctx, conf.HTTPPort, router, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}

// openGameRepository connects the configured storage and returns a close func for it.
func openGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	switch conf.Storage {
	case config.StorageMongo:
		client, err := storage.NewMongo(ctx, conf.Mongo.URI)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to mongo storage: %w", err)
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("could not close mongo storage", "error", err)
			}
		}

		collection := client.Database(conf.Mongo.Database).Collection(conf.Mongo.Collection)
		gameRepo := repository.NewMongoGameRepository(collection, conf.GameTTL)
		if err = gameRepo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}

		return gameRepo, closeFn, nil
	default:
		redisStorage, err := storage.NewRedis(ctx, storage.RedisOptions{
			Addr:     conf.Redis.GetRedisAddr(),
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeFn := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewRedisGameRepository(redisStorage, conf.GameTTL), closeFn, nil
	}
}
