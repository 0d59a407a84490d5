package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"second-brain/cmd/api/handlers"
	"second-brain/cmd/api/middleware"
	"second-brain/cmd/api/services"
)

// New wires all routes. Everything except health and the auth endpoints
// requires a bearer token.
func New(authSvc *services.AuthService, captureSvc *services.CaptureService, knowledge handlers.Knowledge, docs handlers.DocumentLister) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLoggingMiddleware())

	r.GET("/health", handlers.HealthHandler())

	r.POST("/auth/register", handlers.RegisterHandler(authSvc))
	r.POST("/auth/token", handlers.TokenHandler(authSvc))

	authorized := r.Group("/", middleware.RequireAuth(authSvc))
	{
		authorized.GET("/users/me", handlers.GetCurrentUserHandler(authSvc))
		authorized.POST("/capture", handlers.CaptureHandler(captureSvc))
		authorized.POST("/capture/feed", handlers.CaptureFeedHandler(captureSvc))
		authorized.GET("/documents", handlers.ListDocumentsHandler(docs))
		authorized.POST("/query", handlers.QueryHandler(knowledge))
		authorized.POST("/summary", handlers.SummaryHandler(knowledge))
		authorized.POST("/video/transcribe", handlers.TranscribeHandler(captureSvc))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
