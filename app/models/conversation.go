package models

import "time"

// Conversation is a logged chat query/response pair.
type Conversation struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Query          string    `json:"query" gorm:"not null" validate:"required"`
	Response       string    `json:"response" gorm:"not null"`
	AudioFilePath  *string   `json:"audio_file_path,omitempty"`
	QueryType      QueryType `json:"query_type" gorm:"not null;default:'text';type:varchar(10)"`
	ProcessingTime float64   `json:"processing_time"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
