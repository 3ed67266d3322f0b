package repos

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
  "github.com/soundswipe/soundswipe-backend/internal/types"
)

type SwipeRepo interface {
  Create(ctx context.Context, tx *gorm.DB, swipe *types.Swipe) (*types.Swipe, error)
  CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type swipeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSwipeRepo(db *gorm.DB, baseLog *logger.Logger) SwipeRepo {
  repoLog := baseLog.With("repo", "SwipeRepo")
  return &swipeRepo{db: db, log: repoLog}
}

func (sr *swipeRepo) Create(ctx context.Context, tx *gorm.DB, swipe *types.Swipe) (*types.Swipe, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }

  if swipe == nil {
    return nil, fmt.Errorf("%w: swipe required", apperrors.ErrInvalidArgument)
  }

  if err := transaction.WithContext(ctx).Create(swipe).Error; err != nil {
    return nil, fmt.Errorf("Failed to create swipe: %w", err)
  }
  return swipe, nil
}

func (sr *swipeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
  var count int64

  if err := sr.db.WithContext(ctx).
    Model(&types.Swipe{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, fmt.Errorf("%w: count swipes: %w", apperrors.ErrUnavailable, err)
  }
  return count, nil
}
