package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/soundswipe/soundswipe-backend/internal/clients/redis"
	"github.com/soundswipe/soundswipe-backend/internal/logger"
	apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
	"github.com/soundswipe/soundswipe-backend/internal/recommend"
	"github.com/soundswipe/soundswipe-backend/internal/repos"
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

type SwipeService interface {
	// Record stores one verdict. Swipes are append-only; re-swiping a track
	// adds a row, aggregation downstream deduplicates.
	Record(ctx context.Context, userID uuid.UUID, trackID string, liked bool) (*types.Swipe, error)
	// Deck returns the tracks the user has not judged yet, in catalog order.
	Deck(ctx context.Context, userID uuid.UUID) ([]*types.Track, error)
	// History returns the user's liked tracks, most recent first, plus the
	// total number of verdicts they have cast.
	History(ctx context.Context, userID uuid.UUID) ([]*types.Track, int64, error)
}

type swipeService struct {
	db           *gorm.DB
	log          *logger.Logger
	swipeRepo    repos.SwipeRepo
	trackRepo    repos.TrackRepo
	userRepo     repos.UserRepo
	profileCache redisclient.ProfileCache
}

// NewSwipeService wires the swipe flow. profileCache may be nil; it is only
// used to drop a stale cached taste profile after a liked verdict.
func NewSwipeService(db *gorm.DB, baseLog *logger.Logger, swipeRepo repos.SwipeRepo, trackRepo repos.TrackRepo, userRepo repos.UserRepo, profileCache redisclient.ProfileCache) SwipeService {
	serviceLog := baseLog.With("service", "SwipeService")
	return &swipeService{
		db:           db,
		log:          serviceLog,
		swipeRepo:    swipeRepo,
		trackRepo:    trackRepo,
		userRepo:     userRepo,
		profileCache: profileCache,
	}
}

func (ss *swipeService) Record(ctx context.Context, userID uuid.UUID, trackID string, liked bool) (*types.Swipe, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}
	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return nil, fmt.Errorf("%w: track_id required", apperrors.ErrInvalidArgument)
	}

	users, err := ss.userRepo.GetByIDs(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}

	tracks, err := ss.trackRepo.GetBySpotifyIDs(ctx, []string{trackID})
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: track %s", apperrors.ErrNotFound, trackID)
	}

	swipe := &types.Swipe{
		ID:      uuid.New(),
		UserID:  userID,
		TrackID: trackID,
		Liked:   liked,
	}
	created, err := ss.swipeRepo.Create(ctx, nil, swipe)
	if err != nil {
		return nil, err
	}

	if liked && ss.profileCache != nil {
		if err := ss.profileCache.Invalidate(ctx, userID); err != nil {
			ss.log.Warn("Could not invalidate cached taste profile", "user_id", userID, "error", err)
		}
	}
	return created, nil
}

func (ss *swipeService) Deck(ctx context.Context, userID uuid.UUID) ([]*types.Track, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}
	catalog, err := ss.trackRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	swipedIDs, err := ss.trackRepo.ListSwipedIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommend.FilterSeen(catalog, swipedIDs), nil
}

func (ss *swipeService) History(ctx context.Context, userID uuid.UUID) ([]*types.Track, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}
	liked, err := ss.trackRepo.ListLikedByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	total, err := ss.swipeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return liked, total, nil
}
