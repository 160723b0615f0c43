package models

import "time"

// AppConfig is a user-scoped key/value setting persisted in the database,
// distinct from the in-process configuration loaded at startup.
type AppConfig struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"not null;index" validate:"required"`
	Key       string    `json:"key" gorm:"not null" validate:"required"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
