package models

import "time"

// Note is an unstructured student note stored as a point in the vector
// collection. It never touches the relational store; the payload carries
// everything needed to render a search hit.
type Note struct {
	ID          string                 `json:"id"`
	StudentID   string                 `json:"student_id" validate:"required,uuid"`
	Content     string                 `json:"content" validate:"required"`
	ContentType ContentType            `json:"content_type"`
	Date        time.Time              `json:"date"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}
