// Package container assembles the application with uber/fx
package container

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	coachsvc "github.com/fitforge/api/internal/application/coach"
	dietsvc "github.com/fitforge/api/internal/application/diet"
	progresssvc "github.com/fitforge/api/internal/application/progress"
	usersvc "github.com/fitforge/api/internal/application/user"
	workoutsvc "github.com/fitforge/api/internal/application/workout"
	"github.com/fitforge/api/internal/infrastructure/ai/huggingface"
	"github.com/fitforge/api/internal/infrastructure/catalog"
	"github.com/fitforge/api/internal/infrastructure/catalog/exercisedb"
	"github.com/fitforge/api/internal/infrastructure/catalog/wger"
	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/infrastructure/http/handlers"
	"github.com/fitforge/api/internal/infrastructure/http/server"
	gormrepo "github.com/fitforge/api/internal/infrastructure/persistence/gorm"
	"github.com/fitforge/api/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/fitforge/api/internal/infrastructure/persistence/redis"
	"github.com/fitforge/api/internal/infrastructure/security"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/logger"
)

// New assembles the full application graph
func New(configPath string) *fx.App {
	return fx.New(
		fx.Provide(
			func() (*config.Config, error) { return config.Load(configPath) },
			newLogger,
			newDatabase,
			newRedisClient,
			redisrepo.NewCacheRepository,
			gormrepo.NewUserRepository,
			gormrepo.NewWorkoutRepository,
			gormrepo.NewDietRepository,
			gormrepo.NewProgressRepository,
			security.NewTokenManager,
			newInferenceClient,
			newExerciseCatalog,
			newFoodCatalog,
			usersvc.NewAuthService,
			usersvc.NewService,
			workoutsvc.NewService,
			dietsvc.NewService,
			progresssvc.NewService,
			newCoachService,
			newValidator,
			handlers.NewAuthHandler,
			handlers.NewUserHandler,
			handlers.NewWorkoutHandler,
			handlers.NewDietHandler,
			handlers.NewProgressHandler,
			handlers.NewCoachHandler,
			handlers.NewCatalogHandler,
			newHealthHandler,
			newServer,
		),
		fx.Invoke(runServer),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := postgres.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return postgres.Close(db, log)
		},
	})
	return db, nil
}

func newRedisClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// the API still works without redis, with token revocation and
		// caching degraded
		log.Warn("redis unreachable at startup", zap.Error(err))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func newInferenceClient(cfg *config.Config, log *zap.Logger) outbound.InferenceClient {
	return huggingface.NewClient(cfg, log)
}

func newExerciseCatalog(cfg *config.Config, log *zap.Logger, cache outbound.CacheRepository) outbound.ExerciseCatalog {
	return catalog.NewCachedExerciseCatalog(exercisedb.NewClient(cfg, log), cache, cfg.Catalog.CacheTTL, log)
}

func newFoodCatalog(cfg *config.Config, log *zap.Logger, cache outbound.CacheRepository) outbound.FoodCatalog {
	return catalog.NewCachedFoodCatalog(wger.NewClient(cfg, log), cache, cfg.Catalog.CacheTTL, log)
}

func newCoachService(
	users outbound.UserRepository,
	workouts outbound.WorkoutRepository,
	diets outbound.DietRepository,
	progressRepo outbound.ProgressRepository,
	inference outbound.InferenceClient,
	log *zap.Logger,
) inbound.CoachService {
	return coachsvc.NewService(users, workouts, diets, progressRepo, inference, log)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func newHealthHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *handlers.HealthHandler {
	return handlers.NewHealthHandler(db, redisClient, cfg.App.Version)
}

func newServer(
	cfg *config.Config,
	log *zap.Logger,
	tokens outbound.TokenManager,
	auth *handlers.AuthHandler,
	user *handlers.UserHandler,
	workout *handlers.WorkoutHandler,
	diet *handlers.DietHandler,
	progress *handlers.ProgressHandler,
	coach *handlers.CoachHandler,
	catalog *handlers.CatalogHandler,
	health *handlers.HealthHandler,
) *server.Server {
	return server.New(cfg, log, server.Handlers{
		Auth:     auth,
		User:     user,
		Workout:  workout,
		Diet:     diet,
		Progress: progress,
		Coach:    coach,
		Catalog:  catalog,
		Health:   health,
	}, tokens)
}

func runServer(lc fx.Lifecycle, srv *server.Server, log *zap.Logger, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
