package bootstrap

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"campus-assistant-be/internal/config"
	"campus-assistant-be/internal/controller"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/internal/repository/implementation"
	"campus-assistant-be/internal/repository/memory"
	"campus-assistant-be/internal/service"
	"campus-assistant-be/pkg/enrich"
	"campus-assistant-be/pkg/enrich/webpage"
	"campus-assistant-be/pkg/llm/factory"
)

type Container struct {
	ChatController   controller.IChatController
	CampusController controller.ICampusController
}

// NewContainer wires the whole dependency graph. db may be nil, in which
// case everything runs against seeded in-memory stores.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var (
		chatRepo     contract.ChatMessageRepository
		eventRepo    contract.EventRepository
		deadlineRepo contract.DeadlineRepository
		tutoringRepo contract.TutoringSessionRepository
	)

	if db != nil {
		if err := db.AutoMigrate(
			&entity.ChatMessage{},
			&entity.Event{},
			&entity.Deadline{},
			&entity.TutoringSession{},
		); err != nil {
			log.Fatalf("[FATAL] Failed to run migrations: %v", err)
		}
		chatRepo = implementation.NewChatMessageRepository(db)
		eventRepo = implementation.NewEventRepository(db)
		deadlineRepo = implementation.NewDeadlineRepository(db)
		tutoringRepo = implementation.NewTutoringSessionRepository(db)
		log.Println("[INFO] Using Postgres storage")
	} else {
		chatRepo = memory.NewChatMessageRepository()
		eventRepo = memory.NewEventRepository()
		deadlineRepo = memory.NewDeadlineRepository()
		tutoringRepo = memory.NewTutoringSessionRepository()
		if err := memory.SeedDemoData(context.Background(), eventRepo, deadlineRepo, tutoringRepo); err != nil {
			log.Fatalf("[FATAL] Failed to seed demo data: %v", err)
		}
		log.Println("[INFO] Using in-memory storage with demo data")
	}

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:      cfg.Ai.Provider,
		NvidiaAPIKey:  cfg.Ai.NvidiaAPIKey,
		NvidiaBaseURL: cfg.Ai.NvidiaBaseURL,
		NvidiaModel:   cfg.Ai.NvidiaModel,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OllamaModel:   cfg.Ai.OllamaModel,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.Provider)

	fetcher := webpage.NewFetcher(
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
		cfg.Fetch.UserAgent,
	)
	assembler := enrich.NewAssembler(fetcher, sysLogger)

	chatService := service.NewChatService(
		chatRepo,
		eventRepo,
		deadlineRepo,
		tutoringRepo,
		llmProvider,
		assembler,
		sysLogger,
	)
	campusService := service.NewCampusService(eventRepo, deadlineRepo, tutoringRepo)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		CampusController: controller.NewCampusController(campusService),
	}
}
