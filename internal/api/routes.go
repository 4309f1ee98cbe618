package api

import (
	"net/http"
	"time"

	"gymlog/workout-app/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware and the API route table. The access gate
// runs on every request, before any handler.
func SetupRoutes(
	router *gin.Engine,
	resolver SessionResolver,
	authService service.AuthService,
	workoutService service.WorkoutService,
	tokenMaxAge time.Duration,
) {
	authHandler := NewAuthHandler(authService, tokenMaxAge)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.Use(RequestID())
	router.Use(AccessGate(resolver))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	apiGroup.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}

		// The gate already rejected unauthenticated callers for these.
		apiGroup.POST("/workout", workoutHandler.CreateWorkout)
		apiGroup.GET("/workout", workoutHandler.ListWorkouts)
	}
}
