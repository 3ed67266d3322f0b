package types

import (
  "time"
  "github.com/google/uuid"
)

// Track is a catalog entry owned by the catalog-sync side. Audio features are
// nullable: tracks ingested without a feature fetch carry nil and the scoring
// layer substitutes a neutral default.
type Track struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  SpotifyID   string      `gorm:"uniqueIndex;not null;column:spotify_id" json:"spotify_id"`
  Name        string      `gorm:"not null;column:name" json:"name"`
  Artist      string      `gorm:"column:artist" json:"artist"`
  CoverImage  string      `gorm:"column:cover_image" json:"cover_image"`
  PreviewURL  string      `gorm:"column:preview_url" json:"preview_url"`
  Popularity  int         `gorm:"not null;default:0;column:popularity" json:"popularity"`
  Energy      *float64    `gorm:"column:energy" json:"energy"`
  Valence     *float64    `gorm:"column:valence" json:"valence"`
  Tempo       *float64    `gorm:"column:tempo" json:"tempo"`
  Genre       *string     `gorm:"column:genre" json:"genre"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (Track) TableName() string {
  return "track"
}
