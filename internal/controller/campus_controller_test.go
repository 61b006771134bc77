package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"campus-assistant-be/internal/dto"
)

type fakeCampusService struct {
	events    []*dto.EventDTO
	deadlines []*dto.DeadlineDTO
	sessions  []*dto.TutoringSessionDTO
}

func (f *fakeCampusService) GetEvents(ctx context.Context) ([]*dto.EventDTO, error) {
	return f.events, nil
}

func (f *fakeCampusService) GetDeadlines(ctx context.Context) ([]*dto.DeadlineDTO, error) {
	return f.deadlines, nil
}

func (f *fakeCampusService) GetTutoringSessions(ctx context.Context) ([]*dto.TutoringSessionDTO, error) {
	return f.sessions, nil
}

func TestCampusEndpoints(t *testing.T) {
	svc := &fakeCampusService{
		events:    []*dto.EventDTO{{Id: "e1", Title: "Career Fair"}},
		deadlines: []*dto.DeadlineDTO{{Id: "d1", Title: "Midterm"}},
		sessions:  []*dto.TutoringSessionDTO{{Id: "t1", Subject: "Calculus II"}},
	}
	app := fiber.New()
	NewCampusController(svc).RegisterRoutes(app.Group("/api"))

	tests := []struct {
		name string
		path string
	}{
		{name: "events", path: "/api/events"},
		{name: "deadlines", path: "/api/deadlines"},
		{name: "tutoring", path: "/api/tutoring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var envelope struct {
				Success bool            `json:"success"`
				Data    json.RawMessage `json:"data"`
			}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
			assert.True(t, envelope.Success)
			assert.NotEqual(t, "null", string(envelope.Data))
		})
	}
}
