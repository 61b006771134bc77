package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/pkg/enrich/prompt"
	"campus-assistant-be/pkg/enrich/webpage"
	"campus-assistant-be/pkg/llm"
)

type IChatService interface {
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context) ([]*dto.ChatMessageDTO, error)
}

// ContextEnricher turns a chat message into fetched web page context.
// Satisfied by enrich.Assembler.
type ContextEnricher interface {
	Enrich(ctx context.Context, message string) []webpage.FetchResult
}

type chatService struct {
	chatRepo     contract.ChatMessageRepository
	eventRepo    contract.EventRepository
	deadlineRepo contract.DeadlineRepository
	tutoringRepo contract.TutoringSessionRepository
	llmProvider  llm.LLMProvider
	enricher     ContextEnricher
	log          logger.ILogger
}

func NewChatService(
	chatRepo contract.ChatMessageRepository,
	eventRepo contract.EventRepository,
	deadlineRepo contract.DeadlineRepository,
	tutoringRepo contract.TutoringSessionRepository,
	llmProvider llm.LLMProvider,
	enricher ContextEnricher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		chatRepo:     chatRepo,
		eventRepo:    eventRepo,
		deadlineRepo: deadlineRepo,
		tutoringRepo: tutoringRepo,
		llmProvider:  llmProvider,
		enricher:     enricher,
		log:          log,
	}
}

// SendChat runs one chat turn: persist the user message, gather campus data
// and web context, call the model, persist and return its reply. A model
// failure leaves the user message stored but records no AI reply.
func (s *chatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		Message:   req.Message,
		IsAI:      false,
		Timestamp: time.Now(),
	}
	if err := s.chatRepo.Create(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	deadlines, err := s.deadlineRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deadlines: %w", err)
	}
	tutoring, err := s.tutoringRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutoring sessions: %w", err)
	}
	history, err := s.chatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	pages := s.enricher.Enrich(ctx, req.Message)

	systemPrompt := prompt.BuildSystemPrompt(events, deadlines, tutoring, pages)

	// The just-created user record is appended separately, so it must not
	// also appear in the history window.
	recent := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		if msg.Id == userMessage.Id {
			continue
		}
		role := "user"
		if msg.IsAI {
			role = "assistant"
		}
		recent = append(recent, llm.Message{Role: role, Content: msg.Message})
	}

	messages := prompt.AssembleMessages(systemPrompt, recent, req.Message)

	s.log.Info("chat", "calling model", map[string]interface{}{
		"history_messages": len(recent),
		"fetched_pages":    len(pages),
	})

	reply, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		s.log.Error("chat", "model call failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	aiMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		Message:   reply,
		IsAI:      true,
		Timestamp: time.Now(),
	}
	if err := s.chatRepo.Create(ctx, aiMessage); err != nil {
		return nil, fmt.Errorf("failed to save AI message: %w", err)
	}

	return &dto.SendChatResponse{
		UserMessage: toChatMessageDTO(userMessage),
		AiMessage:   toChatMessageDTO(aiMessage),
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context) ([]*dto.ChatMessageDTO, error) {
	messages, err := s.chatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	result := make([]*dto.ChatMessageDTO, 0, len(messages))
	for _, msg := range messages {
		result = append(result, toChatMessageDTO(msg))
	}
	return result, nil
}

func toChatMessageDTO(msg *entity.ChatMessage) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:        msg.Id.String(),
		Message:   msg.Message,
		IsAI:      msg.IsAI,
		Timestamp: msg.Timestamp,
	}
}
