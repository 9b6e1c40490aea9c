package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/config"
	"github.com/nutrivue/backend/internal/api"
	"github.com/nutrivue/backend/internal/middleware"
	"github.com/nutrivue/backend/internal/planner"
	"github.com/nutrivue/backend/internal/router"
	"github.com/nutrivue/backend/internal/service"
)

// Server wires services, handlers, and the HTTP listener together.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	log    *zap.SugaredLogger
}

// NewServer builds the full application. redisClient may be nil, in which
// case plan caching and rate limiting are disabled.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.SugaredLogger) *Server {
	var planCache planner.Cache
	var planLimiter *middleware.RateLimiter
	if redisClient != nil {
		planCache = planner.NewRedisCache(redisClient)
		planLimiter = middleware.NewPlanRegenerationRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db, planCache)
	dishService := service.NewDishService(db)
	planService := service.NewPlanService(db, planCache)
	mealLogService := service.NewMealLogService(db)
	workoutService := service.NewWorkoutService(db)
	dashboardService := service.NewDashboardService(db)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Dish:      api.NewDishHandler(dishService),
		MealPlan:  api.NewMealPlanHandler(planService),
		MealLog:   api.NewMealLogHandler(mealLogService),
		Workout:   api.NewWorkoutHandler(workoutService),
		Dashboard: api.NewDashboardHandler(dashboardService),
	}

	engine := router.SetupRouter(log, cfg.CORSAllowedOrigins, handlers, authService, planLimiter)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              cfg.ServerHost + ":" + cfg.ServerPort,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.log.Infow("starting server", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down server")
	return s.http.Shutdown(ctx)
}
