package dto

import "time"

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageDTO struct {
	Id        string    `json:"id"`
	Message   string    `json:"message"`
	IsAI      bool      `json:"isAI"`
	Timestamp time.Time `json:"timestamp"`
}

type SendChatResponse struct {
	UserMessage *ChatMessageDTO `json:"userMessage"`
	AiMessage   *ChatMessageDTO `json:"aiMessage"`
}
