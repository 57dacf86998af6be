package main

import (
	"context"
	"time"

	"pathly/run-planner/internal/config"
	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/repository"
	"pathly/run-planner/internal/repository/kv"
	"pathly/run-planner/internal/repository/mongo"
	"pathly/run-planner/internal/repository/redis"
	"pathly/run-planner/internal/repository/sqlite"
)

type repositories struct {
	plans    repository.PlanRepository
	profiles repository.ProfileRepository
	close    func() error
}

func kvRepositories(store kv.Store, closeFn func() error) repositories {
	return repositories{
		plans:    kv.NewPlanRepository(store),
		profiles: kv.NewProfileRepository(store),
		close:    closeFn,
	}
}

// openRepositories connects the storage backend named by storage.backend.
func openRepositories(ctx context.Context, cfg config.Config, log *logger.Logger) (repositories, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := sqlite.New(ctx, cfg.SQLite.Path)
		if err != nil {
			return repositories{}, err
		}
		log.Info("using sqlite storage", "path", cfg.SQLite.Path)
		return kvRepositories(store, store.Close), nil

	case config.BackendRedis:
		store, err := redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		if err != nil {
			return repositories{}, err
		}
		log.Info("using redis storage", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		return kvRepositories(store, store.Close), nil

	case config.BackendMongo:
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return repositories{}, err
		}
		db := client.Database(cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err = mongo.EnsureIndexes(indexCtx, db); err != nil {
			log.Warn("failed to ensure indexes", "error", err)
		}
		log.Info("using mongo storage", "database", cfg.Database.Name)
		return repositories{
			plans:    mongo.NewMongoPlanRepository(db),
			profiles: mongo.NewMongoProfileRepository(db),
			close:    func() error { return mongo.DisconnectDB(client) },
		}, nil

	default:
		log.Info("using in-memory storage, data is lost on exit")
		return kvRepositories(kv.NewMemoryStore(), func() error { return nil }), nil
	}
}
