package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindAll returns every message in insertion order.
	FindAll(ctx context.Context) ([]*entity.ChatMessage, error)
}
