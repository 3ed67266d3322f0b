package main

import (
  "context"
  "fmt"
  "os"
  "github.com/soundswipe/soundswipe-backend/internal/clients/redis"
  "github.com/soundswipe/soundswipe-backend/internal/db"
  "github.com/soundswipe/soundswipe-backend/internal/handlers"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/middleware"
  "github.com/soundswipe/soundswipe-backend/internal/observability"
  "github.com/soundswipe/soundswipe-backend/internal/repos"
  "github.com/soundswipe/soundswipe-backend/internal/server"
  "github.com/soundswipe/soundswipe-backend/internal/services"
  "github.com/soundswipe/soundswipe-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Tracing
  shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "soundswipe-backend",
    Environment: utils.GetEnv("APP_ENV", "development", log),
    Version:     utils.GetEnv("APP_VERSION", "dev", log),
  })
  defer func() {
    _ = shutdownOtel(context.Background())
  }()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  trackRepo := repos.NewTrackRepo(thePG, log)
  swipeRepo := repos.NewSwipeRepo(thePG, log)
  tasteProfileRepo := repos.NewTasteProfileRepo(thePG, log)

  // Redis (optional taste profile cache)
  profileCache, err := redis.NewProfileCache(log)
  if err != nil {
    log.Warn("Could not init redis profile cache, continuing without it", "error", err)
    profileCache = nil
  }

  // Services
  log.Info("Setting up Services from main...")
  recommendationService := services.NewRecommendationService(log, trackRepo)
  swipeService := services.NewSwipeService(thePG, log, swipeRepo, trackRepo, userRepo, profileCache)
  trackService := services.NewTrackService(thePG, log, trackRepo)
  tasteProfileService := services.NewTasteProfileService(thePG, log, trackRepo, tasteProfileRepo, profileCache)

  // Handlers
  log.Info("Setting up handlers from main...")
  recommendationHandler := handlers.NewRecommendationHandler(log, recommendationService)
  swipeHandler := handlers.NewSwipeHandler(log, swipeService)
  trackHandler := handlers.NewTrackHandler(log, trackService)
  profileHandler := handlers.NewProfileHandler(log, tasteProfileService)

  // Middleware
  log.Info("Setting up middleware from main...")
  userMiddleware := middleware.NewUserMiddleware(log)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    UserMiddleware:        userMiddleware,
    RecommendationHandler: recommendationHandler,
    SwipeHandler:          swipeHandler,
    TrackHandler:          trackHandler,
    ProfileHandler:        profileHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
