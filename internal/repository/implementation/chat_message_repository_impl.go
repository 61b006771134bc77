package implementation

import (
	"context"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: db}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	var messages []*entity.ChatMessage
	if err := r.db.WithContext(ctx).Order("timestamp ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
