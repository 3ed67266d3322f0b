package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// TasteProfile is a persisted snapshot of a user's derived listening profile.
// The recommendation engine always recomputes from swipes; this row (and the
// redis copy in front of it) only backs the profile endpoints.
type TasteProfile struct {
  ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  UserID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
  AvgEnergy        float64         `gorm:"not null;column:avg_energy" json:"avg_energy"`
  AvgValence       float64         `gorm:"not null;column:avg_valence" json:"avg_valence"`
  AvgTempo         float64         `gorm:"not null;column:avg_tempo" json:"avg_tempo"`
  GenreCounts      datatypes.JSON  `gorm:"type:jsonb;column:genre_counts" json:"genre_counts"`
  TotalGenreSwipes int             `gorm:"not null;default:0;column:total_genre_swipes" json:"total_genre_swipes"`
  MoodTag          string          `gorm:"column:mood_tag" json:"mood_tag"`
  CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (TasteProfile) TableName() string {
  return "taste_profile"
}
