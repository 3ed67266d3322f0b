package services

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/soundswipe/soundswipe-backend/internal/logger"
	"github.com/soundswipe/soundswipe-backend/internal/recommend"
	"github.com/soundswipe/soundswipe-backend/internal/repos"
)

type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int) (*recommend.Result, error)
}

type recommendationService struct {
	log    *logger.Logger
	engine *recommend.Engine
}

func NewRecommendationService(baseLog *logger.Logger, trackRepo repos.TrackRepo) RecommendationService {
	serviceLog := baseLog.With("service", "RecommendationService")
	engine := recommend.NewEngine(trackRepo, baseLog, recommend.DefaultConfig())
	return &recommendationService{log: serviceLog, engine: engine}
}

func (rs *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) (*recommend.Result, error) {
	ctx, span := otel.Tracer("soundswipe-backend/services").Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	result, err := rs.engine.Recommend(ctx, userID, recommend.Options{Limit: limit})
	if err != nil {
		rs.log.Warn("Recommendation failed", "user_id", userID, "error", err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("recommendations.count", len(result.Tracks)),
		attribute.Bool("recommendations.cold_start", result.ColdStart),
	)
	rs.log.Info("Recommendations served", "user_id", userID, "count", len(result.Tracks), "cold_start", result.ColdStart)
	return result, nil
}
