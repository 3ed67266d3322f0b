package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/requestdata"
  "github.com/soundswipe/soundswipe-backend/internal/services"
)

type SwipeHandler struct {
  log      *logger.Logger
  swipeSvc services.SwipeService
}

func NewSwipeHandler(log *logger.Logger, swipeSvc services.SwipeService) *SwipeHandler {
  return &SwipeHandler{
    log:      log.With("handler", "SwipeHandler"),
    swipeSvc: swipeSvc,
  }
}

type recordSwipeRequest struct {
  TrackID string    `json:"track_id" binding:"required"`
  Liked   *bool     `json:"liked" binding:"required"`
}

// POST /api/swipes
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  var req recordSwipeRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_argument", err)
    return
  }

  swipe, err := h.swipeSvc.Record(c.Request.Context(), userID, req.TrackID, *req.Liked)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"success": true, "swipe": swipe})
}

// GET /api/swipes
// The swipe deck: catalog tracks the user has not judged yet.
func (h *SwipeHandler) GetDeck(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  deck, err := h.swipeSvc.Deck(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tracks": deck})
}

// GET /api/history
// Liked tracks, most recent first, plus the total verdict count.
func (h *SwipeHandler) GetHistory(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  liked, total, err := h.swipeSvc.History(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tracks": liked, "total_swipes": total})
}
