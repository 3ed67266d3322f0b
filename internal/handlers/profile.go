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

type ProfileHandler struct {
  log        *logger.Logger
  profileSvc services.TasteProfileService
}

func NewProfileHandler(log *logger.Logger, profileSvc services.TasteProfileService) *ProfileHandler {
  return &ProfileHandler{
    log:        log.With("handler", "ProfileHandler"),
    profileSvc: profileSvc,
  }
}

// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  profile, err := h.profileSvc.Get(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, profile)
}

// POST /api/profile/recalculate
func (h *ProfileHandler) RecalculateProfile(c *gin.Context) {
  userID := requestdata.UserID(c.Request.Context())
  if userID == uuid.Nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("user id not resolved"))
    return
  }

  profile, err := h.profileSvc.Recalculate(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, profile)
}
