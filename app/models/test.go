package models

import "time"

// Test represents one assessment result for a student.
//
// Percentage is a stored generated column (score/total_marks*100); it is read back
// from the database and never written by application code.
type Test struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID  string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Subject    string    `json:"subject" gorm:"not null" validate:"required"`
	Score      float64   `json:"score" gorm:"not null" validate:"min=0"`
	TotalMarks float64   `json:"total_marks" gorm:"not null" validate:"required,gt=0"`
	Percentage float64   `json:"percentage" gorm:"->"`
	Date       time.Time `json:"date" gorm:"not null;index"`
	TestType   TestType  `json:"test_type" gorm:"not null;type:varchar(20)"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
