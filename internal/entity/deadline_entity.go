package entity

import "github.com/google/uuid"

type Deadline struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	DueDate     string    `gorm:"not null"`
	Course      *string
	Urgency     string `gorm:"not null"`
	Description *string
}
