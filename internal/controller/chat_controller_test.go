package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"campus-assistant-be/internal/dto"
)

type fakeChatService struct {
	sendRes *dto.SendChatResponse
	sendErr error
	history []*dto.ChatMessageDTO
}

func (f *fakeChatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	return f.sendRes, f.sendErr
}

func (f *fakeChatService) GetHistory(ctx context.Context) ([]*dto.ChatMessageDTO, error) {
	return f.history, nil
}

func newChatApp(svc *fakeChatService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewChatController(svc).RegisterRoutes(api)
	return app
}

func TestSendChatEndpoint(t *testing.T) {
	now := time.Now()
	svc := &fakeChatService{
		sendRes: &dto.SendChatResponse{
			UserMessage: &dto.ChatMessageDTO{Id: "u1", Message: "hi", IsAI: false, Timestamp: now},
			AiMessage:   &dto.ChatMessageDTO{Id: "a1", Message: "hello!", IsAI: true, Timestamp: now},
		},
	}
	app := newChatApp(svc)

	body, _ := json.Marshal(dto.SendChatRequest{Message: "hi"})
	req := httptest.NewRequest("POST", "/api/chat/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    dto.SendChatResponse `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "hi", envelope.Data.UserMessage.Message)
	assert.Equal(t, "hello!", envelope.Data.AiMessage.Message)
	assert.True(t, envelope.Data.AiMessage.IsAI)
}

func TestSendChatEndpointRejectsEmptyMessage(t *testing.T) {
	app := newChatApp(&fakeChatService{})

	body, _ := json.Marshal(dto.SendChatRequest{Message: ""})
	req := httptest.NewRequest("POST", "/api/chat/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendChatEndpointServiceFailure(t *testing.T) {
	app := newChatApp(&fakeChatService{sendErr: errors.New("model unavailable")})

	body, _ := json.Marshal(dto.SendChatRequest{Message: "hi"})
	req := httptest.NewRequest("POST", "/api/chat/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetHistoryEndpoint(t *testing.T) {
	svc := &fakeChatService{
		history: []*dto.ChatMessageDTO{
			{Id: "u1", Message: "hi", IsAI: false, Timestamp: time.Now()},
			{Id: "a1", Message: "hello!", IsAI: true, Timestamp: time.Now()},
		},
	}
	app := newChatApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/history", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                  `json:"success"`
		Data    []*dto.ChatMessageDTO `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, "u1", envelope.Data[0].Id)
}
