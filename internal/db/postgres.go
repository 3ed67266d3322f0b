package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/types"
  "github.com/soundswipe/soundswipe-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "soundswipe", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.Track{},
    &types.Swipe{},
    &types.TasteProfile{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  if err := s.db.Exec(`
    ALTER TABLE "swipe"
    ADD CONSTRAINT "fk_swipe_user_id"
    FOREIGN KEY ("user_id")
    REFERENCES "user"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Could not add fk_swipe_user_id (may already exist)", "error", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "swipe"
    ADD CONSTRAINT "fk_swipe_track_id"
    FOREIGN KEY ("track_id")
    REFERENCES "track"("spotify_id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Could not add fk_swipe_track_id (may already exist)", "error", err)
  }
  if err := s.db.Exec(`
    ALTER TABLE "taste_profile"
    ADD CONSTRAINT "fk_taste_profile_user_id"
    FOREIGN KEY ("user_id")
    REFERENCES "user"("id")
    ON DELETE CASCADE
  `).Error; err != nil {
    s.log.Warn("Could not add fk_taste_profile_user_id (may already exist)", "error", err)
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
