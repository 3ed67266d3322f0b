package main

import (
  "context"
  "fmt"
  "os"
  "gopkg.in/yaml.v3"
  "github.com/google/uuid"
  "github.com/soundswipe/soundswipe-backend/internal/db"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/repos"
  "github.com/soundswipe/soundswipe-backend/internal/services"
  "github.com/soundswipe/soundswipe-backend/internal/types"
  "github.com/soundswipe/soundswipe-backend/internal/utils"
)

type seedFile struct {
  Users []struct {
    Email       string      `yaml:"email"`
    DisplayName string      `yaml:"display_name"`
  } `yaml:"users"`
  Tracks []services.ProviderTrack    `yaml:"tracks"`
}

// Seeds the catalog (and demo users) from a YAML file so a fresh database has
// something to swipe through before the catalog-sync side runs.
func main() {
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

  seedPath := utils.GetEnv("SEED_FILE", "scripts/seed-catalog.yaml", log)
  raw, err := os.ReadFile(seedPath)
  if err != nil {
    log.Error("Failed to read seed file", "path", seedPath, "error", err)
    os.Exit(1)
  }
  var seed seedFile
  if err := yaml.Unmarshal(raw, &seed); err != nil {
    log.Error("Failed to parse seed file", "path", seedPath, "error", err)
    os.Exit(1)
  }

  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err := postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  ctx := context.Background()

  userRepo := repos.NewUserRepo(thePG, log)
  users := make([]*types.User, 0, len(seed.Users))
  for _, u := range seed.Users {
    users = append(users, &types.User{
      ID:          uuid.New(),
      Email:       u.Email,
      DisplayName: u.DisplayName,
    })
  }
  if err := userRepo.Upsert(ctx, nil, users); err != nil {
    log.Error("Failed to seed users", "error", err)
    os.Exit(1)
  }
  log.Info("Users seeded", "count", len(users))

  trackRepo := repos.NewTrackRepo(thePG, log)
  trackService := services.NewTrackService(thePG, log, trackRepo)
  count, err := trackService.SyncCatalog(ctx, seed.Tracks)
  if err != nil {
    log.Error("Failed to seed tracks", "error", err)
    os.Exit(1)
  }
  log.Info("Catalog seeded", "count", count)
}
