package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundswipe/soundswipe-backend/internal/logger"
	apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
	"github.com/soundswipe/soundswipe-backend/internal/repos"
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// ProviderTrack is the shape the catalog-sync side hands us: one track from
// the external music provider, features already merged in (or absent when the
// feature fetch was skipped).
type ProviderTrack struct {
	SpotifyID  string   `json:"spotify_id" yaml:"spotify_id"`
	Name       string   `json:"name" yaml:"name"`
	Artist     string   `json:"artist" yaml:"artist"`
	CoverImage string   `json:"cover_image" yaml:"cover_image"`
	PreviewURL string   `json:"preview_url" yaml:"preview_url"`
	Popularity int      `json:"popularity" yaml:"popularity"`
	Energy     *float64 `json:"energy" yaml:"energy"`
	Valence    *float64 `json:"valence" yaml:"valence"`
	Tempo      *float64 `json:"tempo" yaml:"tempo"`
	Genre      *string  `json:"genre" yaml:"genre"`
}

type TrackService interface {
	ListCatalog(ctx context.Context) ([]*types.Track, error)
	// SyncCatalog upserts provider-shaped tracks by spotify_id and returns how
	// many rows were written.
	SyncCatalog(ctx context.Context, incoming []ProviderTrack) (int, error)
}

type trackService struct {
	db        *gorm.DB
	log       *logger.Logger
	trackRepo repos.TrackRepo
}

func NewTrackService(db *gorm.DB, baseLog *logger.Logger, trackRepo repos.TrackRepo) TrackService {
	serviceLog := baseLog.With("service", "TrackService")
	return &trackService{db: db, log: serviceLog, trackRepo: trackRepo}
}

func (ts *trackService) ListCatalog(ctx context.Context) ([]*types.Track, error) {
	return ts.trackRepo.ListAll(ctx)
}

func (ts *trackService) SyncCatalog(ctx context.Context, incoming []ProviderTrack) (int, error) {
	if len(incoming) == 0 {
		return 0, fmt.Errorf("%w: no tracks provided", apperrors.ErrInvalidArgument)
	}

	rows := make([]*types.Track, 0, len(incoming))
	for i, pt := range incoming {
		spotifyID := strings.TrimSpace(pt.SpotifyID)
		name := strings.TrimSpace(pt.Name)
		if spotifyID == "" || name == "" {
			return 0, fmt.Errorf("%w: track %d missing spotify_id or name", apperrors.ErrInvalidArgument, i)
		}
		rows = append(rows, &types.Track{
			ID:         uuid.New(),
			SpotifyID:  spotifyID,
			Name:       name,
			Artist:     pt.Artist,
			CoverImage: pt.CoverImage,
			PreviewURL: pt.PreviewURL,
			Popularity: pt.Popularity,
			Energy:     pt.Energy,
			Valence:    pt.Valence,
			Tempo:      pt.Tempo,
			Genre:      pt.Genre,
		})
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ts.trackRepo.Upsert(ctx, tx, rows)
	}); err != nil {
		ts.log.Warn("Catalog sync failed", "count", len(rows), "error", err)
		return 0, err
	}
	ts.log.Info("Catalog synced", "count", len(rows))
	return len(rows), nil
}
