package models

import "time"

// Payment represents a monthly fee payment made for a student.
type Payment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required,gt=0"`
	Month         int           `json:"month" gorm:"not null" validate:"required,min=1,max=12"`
	Year          int           `json:"year" gorm:"not null" validate:"required"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'pending';index;type:varchar(20)"`
	PaymentDate   time.Time     `json:"payment_date" gorm:"not null;index"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"type:varchar(30)"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
