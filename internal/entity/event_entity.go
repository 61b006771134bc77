package entity

import "github.com/google/uuid"

type Event struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Date        string    `gorm:"not null"`
	Time        string    `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	Description *string
}
