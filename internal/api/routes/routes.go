package routes

import (
	"net/http"

	"team-lifecycle-backend/internal/api/handlers"
	"team-lifecycle-backend/internal/api/middleware"
	"team-lifecycle-backend/internal/auth"
	"team-lifecycle-backend/internal/config"
	"team-lifecycle-backend/internal/delivery"
	"team-lifecycle-backend/internal/repository"
	"team-lifecycle-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the long-lived components the router exposes
type Dependencies struct {
	Lifecycle *service.TeamLifecycleService
	Hub       *delivery.Hub
	Auth      *auth.AuthService
	// Audit is nil when the notification audit log is disabled
	Audit    repository.NotificationRepositoryInterface
	Health   map[string]handlers.Pinger
	Registry *prometheus.Registry
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	// handlers pass the gin context down as context.Context; cancellation follows the request
	router.ContextWithFallback = true

	var httpMetrics *middleware.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = middleware.NewHTTPMetrics(deps.Registry)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(httpMetrics.Instrument())

	authHandler := auth.NewAuthHandler(deps.Auth, cfg.BotAPIKey)
	authMiddleware := auth.NewAuthMiddleware(deps.Auth)

	healthHandler := handlers.NewHealthHandler(deps.Lifecycle, deps.Health)
	teamHandler := handlers.NewTeamHandler(deps.Lifecycle)
	adminHandler := handlers.NewAdminHandler(deps.Lifecycle)
	notificationHandler := handlers.NewNotificationHandler(deps.Hub, deps.Audit, deps.Lifecycle, cfg.AllowedOrigins)

	joinLimiter := middleware.NewKeyedRateLimiter(cfg.JoinRequestsPerMinute, cfg.JoinRequestsPerMinute)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Token minting is authenticated by the bot key, not a bearer token
	v1.POST("/auth/token", authHandler.IssueToken)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		teams := protected.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/mine", teamHandler.MyTeam)
			teams.POST("/leave", teamHandler.Leave)
			teams.POST("/timer", teamHandler.Timer)
			teams.GET("/:number", teamHandler.GetTeam)
			teams.DELETE("/:number", teamHandler.EndTeam)
			teams.POST("/:number/join", middleware.PerUser(joinLimiter, httpMetrics), teamHandler.RequestJoin)
		}

		requests := protected.Group("/join-requests")
		{
			requests.GET("", teamHandler.PendingRequests)
			requests.POST("/:id/approve", teamHandler.Approve)
			requests.POST("/:id/deny", teamHandler.Deny)
		}

		protected.POST("/capacity-requests", teamHandler.RequestCapacity)
		protected.POST("/commands", teamHandler.Command)

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/stream", notificationHandler.Stream)
		}

		admin := protected.Group("/admin")
		{
			admin.POST("/reset", adminHandler.Reset)
			admin.POST("/teams/:number/close", adminHandler.CloseTeam)
			admin.POST("/teams/:number/reopen", adminHandler.ReopenTeam)
			admin.POST("/admins", adminHandler.AddAdmin)
			admin.DELETE("/admins/:userId", adminHandler.RemoveAdmin)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PATCH("/settings", adminHandler.UpdateSettings)
			admin.GET("/snapshot", adminHandler.Snapshot)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
