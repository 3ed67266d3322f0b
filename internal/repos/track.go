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

// TrackRepo owns catalog reads and the sync-side upsert. The four read
// methods implement recommend.TrackSource; they run against the live db
// handle because the scorer only needs a point-in-time snapshot.
type TrackRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, tracks []*types.Track) error
  GetBySpotifyIDs(ctx context.Context, spotifyIDs []string) ([]*types.Track, error)
  ListAll(ctx context.Context) ([]*types.Track, error)
  ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]*types.Track, error)
  ListSwipedIDsByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
  ListByPopularityDesc(ctx context.Context, excludeIDs []string, limit int) ([]*types.Track, error)
}

type trackRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
  repoLog := baseLog.With("repo", "TrackRepo")
  return &trackRepo{db: db, log: repoLog}
}

func (tr *trackRepo) Upsert(ctx context.Context, tx *gorm.DB, tracks []*types.Track) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(tracks) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "spotify_id"}},
      DoUpdates: clause.AssignmentColumns([]string{
        "name", "artist", "cover_image", "preview_url",
        "popularity", "energy", "valence", "tempo", "genre", "updated_at",
      }),
    }).
    Create(&tracks).Error; err != nil {
    return fmt.Errorf("Failed to upsert tracks: %w", err)
  }
  return nil
}

func (tr *trackRepo) GetBySpotifyIDs(ctx context.Context, spotifyIDs []string) ([]*types.Track, error) {
  var results []*types.Track

  if len(spotifyIDs) == 0 {
    return results, nil
  }

  if err := tr.db.WithContext(ctx).
    Where("spotify_id IN ?", spotifyIDs).
    Find(&results).Error; err != nil {
    return nil, fmt.Errorf("%w: get tracks by spotify ids: %w", apperrors.ErrUnavailable, err)
  }
  return results, nil
}

func (tr *trackRepo) ListAll(ctx context.Context) ([]*types.Track, error) {
  var results []*types.Track

  if err := tr.db.WithContext(ctx).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, fmt.Errorf("%w: list tracks: %w", apperrors.ErrUnavailable, err)
  }
  return results, nil
}

func (tr *trackRepo) ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]*types.Track, error) {
  var results []*types.Track

  if err := tr.db.WithContext(ctx).
    Model(&types.Track{}).
    Select("track.*").
    Joins("JOIN swipe ON swipe.track_id = track.spotify_id").
    Where("swipe.user_id = ? AND swipe.liked = ?", userID, true).
    Order("swipe.created_at DESC").
    Find(&results).Error; err != nil {
    return nil, fmt.Errorf("%w: list liked tracks: %w", apperrors.ErrUnavailable, err)
  }
  return results, nil
}

func (tr *trackRepo) ListSwipedIDsByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
  var ids []string

  if err := tr.db.WithContext(ctx).
    Model(&types.Swipe{}).
    Distinct().
    Where("user_id = ?", userID).
    Pluck("track_id", &ids).Error; err != nil {
    return nil, fmt.Errorf("%w: list swiped track ids: %w", apperrors.ErrUnavailable, err)
  }
  return ids, nil
}

func (tr *trackRepo) ListByPopularityDesc(ctx context.Context, excludeIDs []string, limit int) ([]*types.Track, error) {
  var results []*types.Track

  query := tr.db.WithContext(ctx).Model(&types.Track{})
  // An empty exclude list must short-circuit: "NOT IN ()" is not a valid
  // query fragment.
  if len(excludeIDs) > 0 {
    query = query.Where("spotify_id NOT IN ?", excludeIDs)
  }
  if limit > 0 {
    query = query.Limit(limit)
  }
  if err := query.
    Order("popularity DESC").
    Find(&results).Error; err != nil {
    return nil, fmt.Errorf("%w: list tracks by popularity: %w", apperrors.ErrUnavailable, err)
  }
  return results, nil
}
