// Package server wires the gin engine, routes and the HTTP listener
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/infrastructure/http/handlers"
	"github.com/fitforge/api/internal/infrastructure/http/middleware"
	"github.com/fitforge/api/internal/ports/outbound"
)

// Handlers groups every route handler the server mounts
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Workout  *handlers.WorkoutHandler
	Diet     *handlers.DietHandler
	Progress *handlers.ProgressHandler
	Coach    *handlers.CoachHandler
	Catalog  *handlers.CatalogHandler
	Health   *handlers.HealthHandler
}

// Server is the HTTP front of the API
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	http   *http.Server
	engine *gin.Engine
}

// New builds the gin engine, installs the middleware chain and mounts
// all routes
func New(cfg *config.Config, logger *zap.Logger, h Handlers, tokens outbound.TokenManager) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.Server.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.Server.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger))
	engine.Use(middleware.Recovery(logger))
	if cfg.Server.EnableCORS {
		engine.Use(middleware.CORS())
	}
	if cfg.RateLimit.Enable {
		engine.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.BurstSize))
	}

	registerRoutes(engine, h, tokens)

	return &Server{
		cfg:    cfg,
		logger: logger.Named("http-server"),
		engine: engine,
		http: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

func registerRoutes(engine *gin.Engine, h Handlers, tokens outbound.TokenManager) {
	engine.GET("/health", h.Health.Live)
	engine.GET("/health/ready", h.Health.Ready)

	v1 := engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	authed := v1.Group("")
	authed.Use(middleware.Auth(tokens))
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		users := authed.Group("/users")
		{
			users.GET("/me", h.User.Me)
			users.PUT("/me/profile", h.User.UpdateProfile)
			users.GET("/me/metrics", h.User.Metrics)
			users.DELETE("/me", h.User.Deactivate)
		}

		workouts := authed.Group("/workouts")
		{
			workouts.POST("", h.Workout.Create)
			workouts.GET("", h.Workout.List)
			workouts.GET("/:id", h.Workout.Get)
			workouts.PUT("/:id", h.Workout.Update)
			workouts.POST("/:id/complete", h.Workout.CompleteExercise)
			workouts.POST("/:id/reset", h.Workout.ResetProgress)
			workouts.DELETE("/:id", h.Workout.Delete)
		}

		diets := authed.Group("/diets")
		{
			diets.POST("", h.Diet.Create)
			diets.GET("", h.Diet.List)
			diets.GET("/:id", h.Diet.Get)
			diets.PUT("/:id", h.Diet.Update)
			diets.POST("/:id/consume", h.Diet.ConsumeMeal)
			diets.POST("/:id/reset", h.Diet.ResetConsumption)
			diets.DELETE("/:id", h.Diet.Delete)
		}

		progress := authed.Group("/progress")
		{
			progress.POST("", h.Progress.Record)
			progress.GET("", h.Progress.List)
			progress.GET("/trend", h.Progress.Trend)
			progress.DELETE("/:id", h.Progress.Delete)
		}

		coach := authed.Group("/coach")
		{
			coach.POST("/workout", h.Coach.SuggestWorkout)
			coach.POST("/diet", h.Coach.SuggestDiet)
			coach.GET("/progress", h.Coach.AnalyzeProgress)
			coach.POST("/chat", h.Coach.Chat)
			coach.POST("/nutrition", h.Coach.EstimateNutrition)
			// deterministic calculator endpoints, no inference involved
			coach.GET("/nutrition", h.User.Metrics)
			coach.POST("/estimate", h.Workout.Estimate)
		}

		catalog := authed.Group("/catalog")
		{
			catalog.GET("/exercises", h.Catalog.Exercises)
			catalog.GET("/exercises/:id", h.Catalog.ExerciseByID)
			catalog.GET("/bodyparts", h.Catalog.BodyParts)
			catalog.GET("/equipment", h.Catalog.EquipmentTypes)
			catalog.GET("/foods", h.Catalog.Foods)
			catalog.GET("/foods/:id", h.Catalog.FoodByID)
		}
	}
}

// Engine exposes the router for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving. It blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.http.Shutdown(ctx)
}
