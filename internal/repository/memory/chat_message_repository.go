package memory

import (
	"context"
	"sync"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"
)

// ChatMessageRepository keeps the full conversation in process memory.
// Messages are append-only and FindAll preserves insertion order, which is
// what the history endpoint and the prompt window rely on.
type ChatMessageRepository struct {
	mu       sync.RWMutex
	messages []*entity.ChatMessage
}

func NewChatMessageRepository() contract.ChatMessageRepository {
	return &ChatMessageRepository{}
}

func (r *ChatMessageRepository) Create(_ context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *ChatMessageRepository) FindAll(_ context.Context) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ChatMessage, len(r.messages))
	for i, m := range r.messages {
		copied := *m
		out[i] = &copied
	}
	return out, nil
}
