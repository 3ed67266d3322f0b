package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/soundswipe/soundswipe-backend/internal/logger"
	apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// TrackSource is everything the engine needs from the surrounding system.
// Implemented by repos.TrackRepo; tests use an in-memory fake.
type TrackSource interface {
	ListAll(ctx context.Context) ([]*types.Track, error)
	ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]*types.Track, error)
	ListSwipedIDsByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	ListByPopularityDesc(ctx context.Context, excludeIDs []string, limit int) ([]*types.Track, error)
}

type Options struct {
	// Limit caps the result size. Zero means DefaultLimit; negative is invalid.
	Limit int
}

// ScoredTrack is one ranked result. FeatureScore and GenreScore are the two
// weighted sub-components of Score, kept so callers can explain a ranking.
// Cold-start results carry all three as zero.
type ScoredTrack struct {
	Track        *types.Track `json:"track"`
	Score        float64      `json:"score"`
	FeatureScore float64      `json:"feature_score"`
	GenreScore   float64      `json:"genre_score"`
}

type Result struct {
	Tracks    []ScoredTrack `json:"tracks"`
	ColdStart bool          `json:"cold_start"`
}

type Config struct {
	// TempoSpread scales tempo differences into the 0-1 range of the other
	// features. 200 BPM covers the practical spread of popular music.
	TempoSpread   float64
	FeatureWeight float64
	GenreWeight   float64
	DefaultLimit  int
}

func DefaultConfig() Config {
	return Config{
		TempoSpread:   200,
		FeatureWeight: 0.7,
		GenreWeight:   0.3,
		DefaultLimit:  10,
	}
}

type Engine struct {
	source TrackSource
	log    *logger.Logger
	cfg    Config
}

func NewEngine(source TrackSource, baseLog *logger.Logger, cfg Config) *Engine {
	if cfg.TempoSpread <= 0 {
		cfg.TempoSpread = 200
	}
	if cfg.FeatureWeight <= 0 && cfg.GenreWeight <= 0 {
		cfg.FeatureWeight = 0.7
		cfg.GenreWeight = 0.3
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	var engineLog *logger.Logger
	if baseLog != nil {
		engineLog = baseLog.With("component", "RecommendEngine")
	}
	return &Engine{source: source, log: engineLog, cfg: cfg}
}

// Recommend ranks unswiped catalog tracks for one user. Exactly one of two
// paths runs per call: personalized scoring against the user's taste profile,
// or the popularity fallback when the user has no liked history. An empty
// result is a valid outcome, not an error; a failed datastore read is
// surfaced, never downgraded to the fallback.
func (e *Engine) Recommend(ctx context.Context, userID uuid.UUID, opts Options) (*Result, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", apperrors.ErrInvalidArgument)
	}
	limit := opts.Limit
	if limit == 0 {
		limit = e.cfg.DefaultLimit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrInvalidArgument)
	}

	// The three reads are independent; only their results are ordered.
	var (
		catalog   []*types.Track
		liked     []*types.Track
		swipedIDs []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = e.source.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		liked, err = e.source.ListLikedByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		swipedIDs, err = e.source.ListSwipedIDsByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile := BuildProfile(liked)
	if profile == nil {
		popular, err := e.source.ListByPopularityDesc(ctx, swipedIDs, limit)
		if err != nil {
			return nil, err
		}
		if e.log != nil {
			e.log.Debug("Serving cold start recommendations", "user_id", userID, "count", len(popular))
		}
		out := make([]ScoredTrack, 0, len(popular))
		for _, t := range popular {
			out = append(out, ScoredTrack{Track: t})
		}
		return &Result{Tracks: out, ColdStart: true}, nil
	}

	candidates := FilterSeen(catalog, swipedIDs)
	ranked := e.scoreAndRank(profile, candidates, limit)
	if e.log != nil {
		e.log.Debug("Serving personalized recommendations", "user_id", userID, "liked", profile.LikedCount, "candidates", len(candidates), "returned", len(ranked))
	}
	return &Result{Tracks: ranked}, nil
}
