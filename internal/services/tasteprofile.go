package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	redisclient "github.com/soundswipe/soundswipe-backend/internal/clients/redis"
	"github.com/soundswipe/soundswipe-backend/internal/logger"
	apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
	"github.com/soundswipe/soundswipe-backend/internal/recommend"
	"github.com/soundswipe/soundswipe-backend/internal/repos"
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

type TasteProfileService interface {
	// Get serves the persisted snapshot, cache first.
	Get(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error)
	// Recalculate rebuilds the snapshot from the user's liked swipes and
	// persists it. The recommendation path never reads this row; it always
	// recomputes from swipes.
	Recalculate(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error)
}

type tasteProfileService struct {
	db           *gorm.DB
	log          *logger.Logger
	trackRepo    repos.TrackRepo
	profileRepo  repos.TasteProfileRepo
	profileCache redisclient.ProfileCache
}

func NewTasteProfileService(db *gorm.DB, baseLog *logger.Logger, trackRepo repos.TrackRepo, profileRepo repos.TasteProfileRepo, profileCache redisclient.ProfileCache) TasteProfileService {
	serviceLog := baseLog.With("service", "TasteProfileService")
	return &tasteProfileService{
		db:           db,
		log:          serviceLog,
		trackRepo:    trackRepo,
		profileRepo:  profileRepo,
		profileCache: profileCache,
	}
}

// moodTagFor maps the average feature vector to a display tag.
func moodTagFor(avgEnergy, avgValence float64) string {
	switch {
	case avgEnergy < 0.4 && avgValence < 0.4:
		return "Late Night 🌙"
	case avgEnergy > 0.7:
		return "Workout High ⚡"
	case avgValence > 0.6:
		return "Happy Vibe ✨"
	case avgEnergy < 0.4:
		return "Chill Session ☕"
	default:
		return "Musical Explorer"
	}
}

func (tps *tasteProfileService) Get(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}

	if tps.profileCache != nil {
		cached, err := tps.profileCache.Get(ctx, userID)
		if err != nil {
			tps.log.Warn("Taste profile cache read failed, falling back to db", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	profile, err := tps.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tps.profileCache != nil {
		if err := tps.profileCache.Set(ctx, profile); err != nil {
			tps.log.Warn("Could not backfill taste profile cache", "user_id", userID, "error", err)
		}
	}
	return profile, nil
}

func (tps *tasteProfileService) Recalculate(ctx context.Context, userID uuid.UUID) (*types.TasteProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}

	liked, err := tps.trackRepo.ListLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	derived := recommend.BuildProfile(liked)
	if derived == nil {
		return nil, fmt.Errorf("%w: no liked history for user %s", apperrors.ErrNotFound, userID)
	}

	genreJSON, err := json.Marshal(derived.GenreCounts)
	if err != nil {
		return nil, fmt.Errorf("marshal genre counts: %w", err)
	}

	row := &types.TasteProfile{
		ID:               uuid.New(),
		UserID:           userID,
		AvgEnergy:        derived.AvgEnergy,
		AvgValence:       derived.AvgValence,
		AvgTempo:         derived.AvgTempo,
		GenreCounts:      datatypes.JSON(genreJSON),
		TotalGenreSwipes: derived.TotalGenreSwipes,
		MoodTag:          moodTagFor(derived.AvgEnergy, derived.AvgValence),
	}
	if err := tps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tps.profileRepo.Upsert(ctx, tx, row)
	}); err != nil {
		return nil, err
	}

	persisted, err := tps.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tps.profileCache != nil {
		if err := tps.profileCache.Set(ctx, persisted); err != nil {
			tps.log.Warn("Could not cache recalculated taste profile", "user_id", userID, "error", err)
		}
	}
	tps.log.Info("Taste profile recalculated", "user_id", userID, "liked", derived.LikedCount, "mood_tag", persisted.MoodTag)
	return persisted, nil
}
