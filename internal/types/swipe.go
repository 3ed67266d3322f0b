package types

import (
  "time"
  "github.com/google/uuid"
)

// Swipe is one user's verdict on one track. Rows are append-only; the
// recommendation layer deduplicates by track when it aggregates.
type Swipe struct {
  ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_swipe_user" json:"user_id"`
  TrackID   string      `gorm:"not null;index:idx_swipe_user_track;column:track_id" json:"track_id"`
  Liked     bool        `gorm:"not null;column:liked" json:"liked"`
  CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

func (Swipe) TableName() string {
  return "swipe"
}
