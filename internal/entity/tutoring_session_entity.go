package entity

import "github.com/google/uuid"

type TutoringSession struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tutor        string    `gorm:"not null"`
	Subject      string    `gorm:"not null"`
	Time         string    `gorm:"not null"`
	Location     string    `gorm:"not null"`
	Availability string    `gorm:"not null"`
}
