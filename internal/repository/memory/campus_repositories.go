package memory

import (
	"context"
	"sync"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"
)

type EventRepository struct {
	mu     sync.RWMutex
	events []*entity.Event
}

func NewEventRepository() contract.EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

func (r *EventRepository) FindAll(_ context.Context) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Event, len(r.events))
	for i, e := range r.events {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

type DeadlineRepository struct {
	mu        sync.RWMutex
	deadlines []*entity.Deadline
}

func NewDeadlineRepository() contract.DeadlineRepository {
	return &DeadlineRepository{}
}

func (r *DeadlineRepository) Create(_ context.Context, deadline *entity.Deadline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *deadline
	r.deadlines = append(r.deadlines, &stored)
	return nil
}

func (r *DeadlineRepository) FindAll(_ context.Context) ([]*entity.Deadline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Deadline, len(r.deadlines))
	for i, d := range r.deadlines {
		copied := *d
		out[i] = &copied
	}
	return out, nil
}

type TutoringSessionRepository struct {
	mu       sync.RWMutex
	sessions []*entity.TutoringSession
}

func NewTutoringSessionRepository() contract.TutoringSessionRepository {
	return &TutoringSessionRepository{}
}

func (r *TutoringSessionRepository) Create(_ context.Context, session *entity.TutoringSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.sessions = append(r.sessions, &stored)
	return nil
}

func (r *TutoringSessionRepository) FindAll(_ context.Context) ([]*entity.TutoringSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.TutoringSession, len(r.sessions))
	for i, s := range r.sessions {
		copied := *s
		out[i] = &copied
	}
	return out, nil
}
