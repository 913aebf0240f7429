package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fittrack-dev/fittrack/internal/auth"
	"github.com/fittrack-dev/fittrack/internal/config"
	"github.com/fittrack-dev/fittrack/internal/handlers"
	"github.com/fittrack-dev/fittrack/internal/middleware"
	"github.com/fittrack-dev/fittrack/internal/services"
)

// New wires the whole application: token manager, services and handlers
// are constructed here once and passed explicitly, never referenced as
// ambient state.
func New(cfg *config.Config, gdb *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(gdb, tokens)
	exerciseService := services.NewExerciseService(gdb)
	workoutService := services.NewWorkoutService(gdb)
	metricsService := services.NewMetricsService(gdb)
	analyticsService := services.NewAnalyticsService(gdb)

	authHandler := handlers.NewAuthHandler(authService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	profileHandler := handlers.NewProfileHandler(authService)
	metricsHandler := handlers.NewMetricsHandler(metricsService, analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	requireAuth := middleware.RequireAuth(tokens, gdb)

	r.GET("/health", handlers.HealthCheck)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/check_session", requireAuth, authHandler.CheckSession)
	}

	exercises := r.Group("/exercises")
	{
		exercises.GET("", exerciseHandler.List)
		exercises.GET("/:id", exerciseHandler.Get)
		exercises.POST("", requireAuth, exerciseHandler.Create)
		exercises.PUT("/:id", requireAuth, exerciseHandler.Update)
		exercises.DELETE("/:id", requireAuth, exerciseHandler.Delete)
	}

	workouts := r.Group("/workouts", requireAuth)
	{
		workouts.GET("", workoutHandler.List)
		workouts.POST("", workoutHandler.Create)
		workouts.GET("/:id", workoutHandler.Get)
		workouts.DELETE("/:id", workoutHandler.Delete)
		workouts.POST("/:id/items", workoutHandler.AddItem)
	}

	profile := r.Group("/profile", requireAuth)
	{
		profile.GET("", profileHandler.Get)
		profile.PUT("", profileHandler.Update)
		profile.PUT("/password", profileHandler.ChangePassword)
	}

	metrics := r.Group("/metrics", requireAuth)
	{
		metrics.POST("/log_water", metricsHandler.LogWater)
		metrics.POST("/log_weight", metricsHandler.LogWeight)
		metrics.GET("/summary", metricsHandler.Summary)
	}

	analytics := r.Group("/analytics", requireAuth)
	{
		analytics.GET("/stats", analyticsHandler.Stats)
	}

	return r
}
