// Package console is the HTTP surface of the demo: it drives a workflow engine and
// exposes the resulting board over a small JSON API.
package console

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zra-sdk/zra-demo/internal/config"
	"github.com/zra-sdk/zra-demo/internal/constants"
	"github.com/zra-sdk/zra-demo/internal/middleware"
	"github.com/zra-sdk/zra-demo/internal/workflow"

	_ "github.com/zra-sdk/zra-demo/docs" // swagger spec registration
)

// Deps are the collaborators the console routes need.
type Deps struct {
	Config *config.Config
	Engine *workflow.Engine
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// NewRouter builds a gin engine with every console route installed.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Config.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	InitializeRoutes(router, deps)
	return router
}

// InitializeRoutes installs middleware and routes on router.
func InitializeRoutes(router *gin.Engine, deps Deps) {
	router.Use(configureCORS(deps.Config.Console))
	router.Use(middleware.CorrelationIDMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", Health(deps.Config.Stage))

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	workflowHandler := NewWorkflowHandler(deps.Engine)
	limit := dispatchLimit(deps.Config.Console)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		workflows := v1.Group("/workflows")
		{
			workflows.GET("", workflowHandler.ListWorkflows)
			workflows.GET("/:workflow", workflowHandler.GetWorkflow)
			workflows.POST("/:workflow", limit, workflowHandler.SubmitWorkflow)
		}

		quickActions := v1.Group("/quick-actions")
		{
			quickActions.GET("", workflowHandler.ListQuickActions)
			quickActions.POST("", limit, workflowHandler.RunQuickAction)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// dispatchLimit throttles the routes that reach the tax-authority service. Reads
// are never limited.
func dispatchLimit(conf config.ConsoleConf) gin.HandlerFunc {
	if conf.RateLimit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.NewRateLimiter(conf.RateLimit, conf.RateBurst).Middleware()
}

func configureCORS(conf config.ConsoleConf) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = conf.AllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	if len(conf.AllowedMethods) > 0 {
		corsConfig.AllowMethods = conf.AllowedMethods
	}
	if len(conf.AllowedHeaders) > 0 {
		corsConfig.AllowHeaders = conf.AllowedHeaders
	}
	corsConfig.ExposeHeaders = []string{constants.CorrelationIDHeader}

	return cors.New(corsConfig)
}
