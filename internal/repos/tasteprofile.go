package repos

import (
  "context"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
  "github.com/soundswipe/soundswipe-backend/internal/types"
)

type TasteProfileRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, profile *types.TasteProfile) error
  GetByUserID(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error)
}

type tasteProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTasteProfileRepo(db *gorm.DB, baseLog *logger.Logger) TasteProfileRepo {
  repoLog := baseLog.With("repo", "TasteProfileRepo")
  return &tasteProfileRepo{db: db, log: repoLog}
}

func (tpr *tasteProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.TasteProfile) error {
  transaction := tx
  if transaction == nil {
    transaction = tpr.db
  }

  if profile == nil {
    return fmt.Errorf("%w: profile required", apperrors.ErrInvalidArgument)
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "user_id"}},
      DoUpdates: clause.AssignmentColumns([]string{
        "avg_energy", "avg_valence", "avg_tempo",
        "genre_counts", "total_genre_swipes", "mood_tag", "updated_at",
      }),
    }).
    Create(profile).Error; err != nil {
    return fmt.Errorf("Failed to upsert taste profile: %w", err)
  }
  return nil
}

func (tpr *tasteProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error) {
  var result types.TasteProfile

  if err := tpr.db.WithContext(ctx).
    Where("user_id = ?", userID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, fmt.Errorf("%w: taste profile for user %s", apperrors.ErrNotFound, userID)
    }
    return nil, fmt.Errorf("%w: get taste profile: %w", apperrors.ErrUnavailable, err)
  }
  return &result, nil
}
