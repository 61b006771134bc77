package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Message   string    `gorm:"type:text;not null"`
	IsAI      bool      `gorm:"not null"`
	Timestamp time.Time `gorm:"not null"`
}
