package repos

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
  "github.com/soundswipe/soundswipe-backend/internal/types"
)

type UserRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, users []*types.User) error
  GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*types.User, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Upsert(ctx context.Context, tx *gorm.DB, users []*types.User) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if len(users) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "email"}},
      DoNothing: true,
    }).
    Create(&users).Error; err != nil {
    return fmt.Errorf("Failed to upsert users: %w", err)
  }
  return nil
}

func (ur *userRepo) GetByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*types.User, error) {
  var results []*types.User

  if len(userIDs) == 0 {
    return results, nil
  }

  if err := ur.db.WithContext(ctx).
    Where("id IN ?", userIDs).
    Find(&results).Error; err != nil {
    return nil, fmt.Errorf("%w: get users by ids: %w", apperrors.ErrUnavailable, err)
  }
  return results, nil
}
