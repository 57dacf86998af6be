package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"pathly/run-planner/internal/logger"
	"pathly/run-planner/internal/service"
)

// Services groups the service dependencies of the HTTP layer.
type Services struct {
	Profiles   service.ProfileService
	Plans      service.PlanService
	Onboarding service.OnboardingService
	Tokens     service.TokenService
	Media      service.MediaService
}

// RouterConfig holds the HTTP-level settings of SetupRoutes.
type RouterConfig struct {
	ServiceName    string   // span name prefix for otelgin
	AllowedOrigins []string // empty allows any origin
}

func SetupRoutes(router *gin.Engine, cfg RouterConfig, log *logger.Logger, svc Services) {
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	onboardingHandler := NewOnboardingHandler(svc.Onboarding, svc.Tokens, log)
	profileHandler := NewProfileHandler(svc.Profiles, log)
	planHandler := NewPlanHandler(svc.Plans, svc.Profiles, svc.Media, log)

	authMiddleware := AuthMiddleware(svc.Tokens)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/options", onboardingHandler.GetOptions)
		apiV1.POST("/onboarding", onboardingHandler.Complete)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/profile", profileHandler.GetProfile)
		protected.DELETE("/profile", profileHandler.DeleteProfile)

		planGroup := protected.Group("/plan")
		{
			planGroup.GET("", planHandler.GetPlan)
			planGroup.POST("/regenerate", planHandler.RegeneratePlan)
			planGroup.GET("/workouts/:workoutId", planHandler.GetWorkout)
			planGroup.PATCH("/workouts/:workoutId", planHandler.UpdateWorkout)
		}
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
