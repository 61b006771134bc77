package service

import (
	"context"
	"fmt"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"
)

type ICampusService interface {
	GetEvents(ctx context.Context) ([]*dto.EventDTO, error)
	GetDeadlines(ctx context.Context) ([]*dto.DeadlineDTO, error)
	GetTutoringSessions(ctx context.Context) ([]*dto.TutoringSessionDTO, error)
}

type campusService struct {
	eventRepo    contract.EventRepository
	deadlineRepo contract.DeadlineRepository
	tutoringRepo contract.TutoringSessionRepository
}

func NewCampusService(
	eventRepo contract.EventRepository,
	deadlineRepo contract.DeadlineRepository,
	tutoringRepo contract.TutoringSessionRepository,
) ICampusService {
	return &campusService{
		eventRepo:    eventRepo,
		deadlineRepo: deadlineRepo,
		tutoringRepo: tutoringRepo,
	}
}

func (s *campusService) GetEvents(ctx context.Context) ([]*dto.EventDTO, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	result := make([]*dto.EventDTO, 0, len(events))
	for _, e := range events {
		result = append(result, toEventDTO(e))
	}
	return result, nil
}

func (s *campusService) GetDeadlines(ctx context.Context) ([]*dto.DeadlineDTO, error) {
	deadlines, err := s.deadlineRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deadlines: %w", err)
	}

	result := make([]*dto.DeadlineDTO, 0, len(deadlines))
	for _, d := range deadlines {
		result = append(result, toDeadlineDTO(d))
	}
	return result, nil
}

func (s *campusService) GetTutoringSessions(ctx context.Context) ([]*dto.TutoringSessionDTO, error) {
	sessions, err := s.tutoringRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutoring sessions: %w", err)
	}

	result := make([]*dto.TutoringSessionDTO, 0, len(sessions))
	for _, t := range sessions {
		result = append(result, toTutoringSessionDTO(t))
	}
	return result, nil
}

func toEventDTO(e *entity.Event) *dto.EventDTO {
	return &dto.EventDTO{
		Id:          e.Id.String(),
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Description: e.Description,
	}
}

func toDeadlineDTO(d *entity.Deadline) *dto.DeadlineDTO {
	return &dto.DeadlineDTO{
		Id:          d.Id.String(),
		Title:       d.Title,
		DueDate:     d.DueDate,
		Course:      d.Course,
		Urgency:     d.Urgency,
		Description: d.Description,
	}
}

func toTutoringSessionDTO(t *entity.TutoringSession) *dto.TutoringSessionDTO {
	return &dto.TutoringSessionDTO{
		Id:           t.Id.String(),
		Tutor:        t.Tutor,
		Subject:      t.Subject,
		Time:         t.Time,
		Location:     t.Location,
		Availability: t.Availability,
	}
}
