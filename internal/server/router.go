package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/ysagp/attendance-analytics/internal/handlers"
  "github.com/ysagp/attendance-analytics/internal/middleware"
)

type RouterConfig struct {
  EventHandler     *handlers.EventHandler
  AnalyticsHandler *handlers.AnalyticsHandler
  AuthMiddleware   *middleware.AuthMiddleware
  AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowOrigins,
    AllowMethods:     []string{"GET", "POST", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

  // Change-event push endpoints. Reached only from the platform's push
  // subscription inside the project boundary; caller auth on these is the
  // platform's access-control layer, not ours.
  events := router.Group("/events")
  {
    events.POST("/records", cfg.EventHandler.RecordChanged)
    events.POST("/sessions", cfg.EventHandler.SessionChanged)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.POST("/analytics/class-breakdown", cfg.AnalyticsHandler.ClassBreakdown)

  return router
}
