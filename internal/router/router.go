package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrivue/backend/internal/api"
	"github.com/nutrivue/backend/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Dish      *api.DishHandler
	MealPlan  *api.MealPlanHandler
	MealLog   *api.MealLogHandler
	Workout   *api.WorkoutHandler
	Dashboard *api.DashboardHandler
}

// SetupRouter configures the application routes. planLimiter may be nil when
// Redis is unavailable (tests); the regenerate endpoint is then unthrottled.
func SetupRouter(
	log *zap.SugaredLogger,
	allowedOrigins []string,
	handlers Handlers,
	validator middleware.TokenValidator,
	planLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		handlers.Profile.RegisterRoutes(protected)
		handlers.Dish.RegisterRoutes(protected)
		handlers.MealLog.RegisterRoutes(protected)
		handlers.Workout.RegisterRoutes(protected)
		handlers.Dashboard.RegisterRoutes(protected)

		var regenerateMiddleware []gin.HandlerFunc
		if planLimiter != nil {
			regenerateMiddleware = append(regenerateMiddleware, planLimiter.RateLimitMiddleware())
		}
		handlers.MealPlan.RegisterRoutes(protected, regenerateMiddleware...)
	}

	return router
}
