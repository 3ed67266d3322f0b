package middleware

import (
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/soundswipe/soundswipe-backend/internal/logger"
  "github.com/soundswipe/soundswipe-backend/internal/requestdata"
)

// UserMiddleware resolves the caller's identity. Session handling lives with
// the auth collaborator in front of this service; by the time a request gets
// here the user id travels in the X-User-ID header.
type UserMiddleware struct {
  log *logger.Logger
}

func NewUserMiddleware(log *logger.Logger) *UserMiddleware {
  middlewareLog := log.With("middleware", "UserMiddleware")
  return &UserMiddleware{log: middlewareLog}
}

func (um *UserMiddleware) RequireUser() gin.HandlerFunc {
  return func(c *gin.Context) {
    raw := strings.TrimSpace(c.GetHeader("X-User-ID"))
    if raw == "" {
      raw = strings.TrimSpace(c.Query("user_id"))
    }
    if raw == "" {
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
      return
    }
    userID, err := uuid.Parse(raw)
    if err != nil || userID == uuid.Nil {
      um.log.Debug("Rejected malformed user id", "raw", raw)
      c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
      return
    }
    ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{UserID: userID})
    c.Request = c.Request.WithContext(ctx)
    c.Next()
  }
}
