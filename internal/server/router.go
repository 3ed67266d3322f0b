package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/soundswipe/soundswipe-backend/internal/handlers"
  "github.com/soundswipe/soundswipe-backend/internal/middleware"
)

type RouterConfig struct {
  UserMiddleware        *middleware.UserMiddleware
  RecommendationHandler *handlers.RecommendationHandler
  SwipeHandler          *handlers.SwipeHandler
  TrackHandler          *handlers.TrackHandler
  ProfileHandler        *handlers.ProfileHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(otelgin.Middleware("soundswipe-backend"))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-ID"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.GET("/api/tracks", cfg.TrackHandler.ListTracks)
  router.POST("/api/tracks/sync", cfg.TrackHandler.SyncTracks)

// ===============
// || Per-user  ||
// ===============
  api := router.Group("/api")
  api.Use(cfg.UserMiddleware.RequireUser())
  // Recommendations
  api.GET("/recommendations", cfg.RecommendationHandler.GetRecommendations)
  // Swipes
  api.POST("/swipes", cfg.SwipeHandler.RecordSwipe)
  api.GET("/swipes", cfg.SwipeHandler.GetDeck)
  api.GET("/history", cfg.SwipeHandler.GetHistory)
  // Taste profile
  api.GET("/profile", cfg.ProfileHandler.GetProfile)
  api.POST("/profile/recalculate", cfg.ProfileHandler.RecalculateProfile)

  return router
}
