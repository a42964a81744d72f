package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Himanshur25/recipe-master/internal/api"
	"github.com/Himanshur25/recipe-master/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth   *api.AuthHandler
	Recipe *api.RecipeHandler
	Health *api.HealthHandler

	TokenValidator middleware.TokenValidator

	// Limiters are optional; without Redis the routes run unthrottled.
	RecipeCreationLimiter *middleware.RateLimiter
	ReactionLimiter       *middleware.RateLimiter
}

// Setup configures the application routes
func Setup(h Handlers) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", h.Health.Health)

	root := router.Group("/api")

	auth := root.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/users", middleware.Auth(h.TokenValidator), h.Auth.ListUsers)
	}

	recipes := root.Group("/recipes")
	recipes.Use(middleware.Auth(h.TokenValidator))
	{
		recipes.GET("", h.Recipe.List)
		recipes.GET("/:id", h.Recipe.Get)
		recipes.PUT("/:id", h.Recipe.Update)
		recipes.DELETE("/:id", h.Recipe.Delete)

		if h.RecipeCreationLimiter != nil {
			recipes.POST("", h.RecipeCreationLimiter.Middleware(), h.Recipe.Create)
		} else {
			recipes.POST("", h.Recipe.Create)
		}
		if h.ReactionLimiter != nil {
			recipes.PATCH("/:id/reactions", h.ReactionLimiter.Middleware(), h.Recipe.React)
		} else {
			recipes.PATCH("/:id/reactions", h.Recipe.React)
		}
	}

	return router
}
