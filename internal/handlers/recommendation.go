package handlers

import (
  "fmt"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/requestdata"
  "github.com/soundswipe/soundswipe-backend/internal/services"
)

type RecommendationHandler struct {
  log    *logger.Logger
  recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{
    log:    log.With("handler", "RecommendationHandler"),
    recSvc: recSvc,
  }
}

// GET /api/recommendations?limit=10
// Ranked unswiped tracks for the calling user; popularity fallback when they
// have no liked history yet.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  limit := 0
  if raw := c.Query("limit"); raw != "" {
    parsed, err := strconv.Atoi(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_argument", fmt.Errorf("limit must be an integer"))
      return
    }
    limit = parsed
  }

  result, err := h.recSvc.Recommend(c.Request.Context(), userID, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{
    "recommendations": result.Tracks,
    "cold_start":      result.ColdStart,
  })
}
