package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipebox/webclient/internal/config"
	"recipebox/webclient/internal/handler/middleware"
	"recipebox/webclient/pkg/response"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	recipeHandler *RecipeHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Recipe ids are opaque and may contain escaped slashes.
	r.UseRawPath = true

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Page and form targets
	r.GET("/", recipeHandler.Index)
	r.POST("/recipes", recipeHandler.Create)
	r.POST("/recipes/:id/delete", recipeHandler.Delete)

	api := r.Group("/api")
	api.Use(middleware.CORS(cfg.CORS))
	{
		api.GET("/recipes", recipeHandler.Snapshot)
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})

	return r
}
