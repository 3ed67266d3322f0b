package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/services"
)

type TrackHandler struct {
  log      *logger.Logger
  trackSvc services.TrackService
}

func NewTrackHandler(log *logger.Logger, trackSvc services.TrackService) *TrackHandler {
  return &TrackHandler{
    log:      log.With("handler", "TrackHandler"),
    trackSvc: trackSvc,
  }
}

// GET /api/tracks
func (h *TrackHandler) ListTracks(c *gin.Context) {
  tracks, err := h.trackSvc.ListCatalog(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tracks": tracks})
}

type syncTracksRequest struct {
  Tracks []services.ProviderTrack    `json:"tracks" binding:"required"`
}

// POST /api/tracks/sync
// Provider-shaped payloads land here from the catalog-sync side.
func (h *TrackHandler) SyncTracks(c *gin.Context) {
  var req syncTracksRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_argument", err)
    return
  }

  count, err := h.trackSvc.SyncCatalog(c.Request.Context(), req.Tracks)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "Successfully synced tracks", "count": count})
}
