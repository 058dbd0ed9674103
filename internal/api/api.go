package api

import (
	"net/http"
	"time"

	affiliateHandler "affiliate-server/internal/affiliate/handler"
	"affiliate-server/internal/apierrors"
	authHandler "affiliate-server/internal/auth/handler"
	"affiliate-server/internal/bootstrap"
	"affiliate-server/internal/ratelimit"
	trackingHandler "affiliate-server/internal/tracking/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	serverName       string
	readiness        bootstrap.Readiness
	authHandler      authHandler.Handler
	affiliateHandler affiliateHandler.Handler
	trackingHandler  trackingHandler.Handler
	rateLimiter      *ratelimit.Service
	now              func() time.Time
}

func New(
	router *gin.RouterGroup,
	serverName string,
	readiness bootstrap.Readiness,
	authHandler authHandler.Handler,
	affiliateHandler affiliateHandler.Handler,
	trackingHandler trackingHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:           router,
		serverName:       serverName,
		readiness:        readiness,
		authHandler:      authHandler,
		affiliateHandler: affiliateHandler,
		trackingHandler:  trackingHandler,
		rateLimiter:      rateLimiter,
		now:              time.Now,
	}
}

func (a *API) RegisterRoutes() {
	a.router.GET("/health", a.HandleHealth)
	a.router.GET("/ping-status", a.HandlePingStatus)

	affiliateGroup := a.router.Group("/api/affiliate")
	{
		affiliateGroup.GET("/health", a.HandleHealth)

		dbGroup := affiliateGroup.Group("", a.requireDatabase)
		dbGroup.POST("/click", a.rateLimiter.Middleware("click"), a.trackingHandler.HandleClick)
		dbGroup.POST("/conversion", a.rateLimiter.Middleware("conversion"), a.trackingHandler.HandleConversion)
		dbGroup.POST("/register", a.rateLimiter.Middleware("register"), a.affiliateHandler.HandleRegister)
		dbGroup.POST("/login", a.rateLimiter.Middleware("login"), a.authHandler.HandleLogin)
		dbGroup.GET("/dashboard", a.authHandler.HandleJWTMiddleware, a.affiliateHandler.HandleDashboard)
	}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database bool   `json:"database"`
	Email    bool   `json:"email"`
	Cache    bool   `json:"cache"`
	Events   bool   `json:"events"`
}

// HandleHealth always answers 200. Status is "degraded" while the database is unavailable.
func (a *API) HandleHealth(c *gin.Context) {
	status := "ok"
	if !a.readiness.Database {
		status = "degraded"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:   status,
		Database: a.readiness.Database,
		Email:    a.readiness.Email,
		Cache:    a.readiness.Cache,
		Events:   a.readiness.Events,
	})
}

type PingStatusResponse struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Timestamp string `json:"timestamp"`
}

func (a *API) HandlePingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, PingStatusResponse{
		Status:    "alive",
		Server:    a.serverName,
		Timestamp: a.now().UTC().Format(time.RFC3339),
	})
}

func (a *API) requireDatabase(c *gin.Context) {
	if !a.readiness.Database {
		apierrors.DependencyUnavailable(c, "database", "DB_HOST, DB_USERNAME and DB_NAME must point at a reachable Postgres")
		return
	}
	c.Next()
}
