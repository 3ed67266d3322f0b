package types

import (
  "time"
  "github.com/google/uuid"
)

type User struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Email       string      `gorm:"uniqueIndex;not null;column:email" json:"email"`
  DisplayName string      `gorm:"not null;column:display_name" json:"display_name"`
  AvatarURL   string      `gorm:"column:avatar_url" json:"avatar_url"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}
