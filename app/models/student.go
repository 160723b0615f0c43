package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ContactInfo is the free-form contact document stored on a student (JSONB column).
type ContactInfo map[string]string

// Value implements driver.Valuer so ContactInfo can be written as JSONB.
func (c ContactInfo) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner so ContactInfo can be read back from JSONB.
func (c *ContactInfo) Scan(src interface{}) error {
	if src == nil {
		*c = ContactInfo{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("contact_info: unsupported scan type %T", src)
	}
	return json.Unmarshal(b, c)
}

// Student represents a tracked student.
type Student struct {
	ID          string      `json:"student_id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string      `json:"name" gorm:"not null" validate:"required"`
	Class       string      `json:"class" gorm:"not null" validate:"required"`
	ContactInfo ContactInfo `json:"contact_info" gorm:"type:jsonb"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}
