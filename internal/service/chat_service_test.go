package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/repository/memory"
	"campus-assistant-be/pkg/enrich/webpage"
	"campus-assistant-be/pkg/llm"
)

type fakeLLM struct {
	reply    string
	err      error
	received []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.received = history
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type fakeEnricher struct {
	results []webpage.FetchResult
}

func (f *fakeEnricher) Enrich(ctx context.Context, message string) []webpage.FetchResult {
	return f.results
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestChatService(t *testing.T, provider llm.LLMProvider, enricher ContextEnricher) IChatService {
	t.Helper()

	eventRepo := memory.NewEventRepository()
	deadlineRepo := memory.NewDeadlineRepository()
	tutoringRepo := memory.NewTutoringSessionRepository()
	err := memory.SeedDemoData(context.Background(), eventRepo, deadlineRepo, tutoringRepo)
	assert.NoError(t, err)

	return NewChatService(
		memory.NewChatMessageRepository(),
		eventRepo,
		deadlineRepo,
		tutoringRepo,
		provider,
		enricher,
		nopLogger{},
	)
}

func TestSendChatRoundTrip(t *testing.T) {
	provider := &fakeLLM{reply: "The career fair is on campus this week."}
	svc := newTestChatService(t, provider, &fakeEnricher{})

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{Message: "any career events soon?"})
	assert.NoError(t, err)
	assert.NotNil(t, res.UserMessage)
	assert.NotNil(t, res.AiMessage)
	assert.Equal(t, "any career events soon?", res.UserMessage.Message)
	assert.False(t, res.UserMessage.IsAI)
	assert.Equal(t, provider.reply, res.AiMessage.Message)
	assert.True(t, res.AiMessage.IsAI)

	history, err := svc.GetHistory(context.Background())
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, res.UserMessage.Id, history[0].Id)
	assert.Equal(t, res.AiMessage.Id, history[1].Id)
}

func TestSendChatSystemPromptCarriesCampusData(t *testing.T) {
	provider := &fakeLLM{reply: "ok"}
	enricher := &fakeEnricher{results: []webpage.FetchResult{
		{URL: "https://www.howard.edu/events", Text: "Homecoming schedule"},
	}}
	svc := newTestChatService(t, provider, enricher)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{Message: "what is happening on campus?"})
	assert.NoError(t, err)

	assert.NotEmpty(t, provider.received)
	system := provider.received[0]
	assert.Equal(t, "system", system.Role)
	assert.Contains(t, system.Content, "UPCOMING EVENTS:")
	assert.Contains(t, system.Content, "DEADLINES:")
	assert.Contains(t, system.Content, "TUTORING SESSIONS:")
	assert.Contains(t, system.Content, "Homecoming schedule")

	last := provider.received[len(provider.received)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "what is happening on campus?", last.Content)
}

func TestSendChatHistoryExcludesNewMessage(t *testing.T) {
	provider := &fakeLLM{reply: "first answer"}
	svc := newTestChatService(t, provider, &fakeEnricher{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{Message: "first question"})
	assert.NoError(t, err)

	provider.reply = "second answer"
	_, err = svc.SendChat(context.Background(), &dto.SendChatRequest{Message: "second question"})
	assert.NoError(t, err)

	// system, first question, first answer, second question
	assert.Len(t, provider.received, 4)
	assert.Equal(t, "first question", provider.received[1].Content)
	assert.Equal(t, "user", provider.received[1].Role)
	assert.Equal(t, "first answer", provider.received[2].Content)
	assert.Equal(t, "assistant", provider.received[2].Role)
	assert.Equal(t, "second question", provider.received[3].Content)

	occurrences := 0
	for _, m := range provider.received {
		if m.Role == "user" && strings.Contains(m.Content, "second question") {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "the new user message must appear exactly once")
}

func TestSendChatModelFailureKeepsUserMessage(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream unavailable")}
	svc := newTestChatService(t, provider, &fakeEnricher{})

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{Message: "hello?"})
	assert.Error(t, err)
	assert.Nil(t, res)

	history, histErr := svc.GetHistory(context.Background())
	assert.NoError(t, histErr)
	assert.Len(t, history, 1)
	assert.Equal(t, "hello?", history[0].Message)
	assert.False(t, history[0].IsAI)
}
