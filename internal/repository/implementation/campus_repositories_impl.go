package implementation

import (
	"context"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Event, error) {
	var events []*entity.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

type DeadlineRepositoryImpl struct {
	db *gorm.DB
}

func NewDeadlineRepository(db *gorm.DB) contract.DeadlineRepository {
	return &DeadlineRepositoryImpl{db: db}
}

func (r *DeadlineRepositoryImpl) Create(ctx context.Context, deadline *entity.Deadline) error {
	return r.db.WithContext(ctx).Create(deadline).Error
}

func (r *DeadlineRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Deadline, error) {
	var deadlines []*entity.Deadline
	if err := r.db.WithContext(ctx).Find(&deadlines).Error; err != nil {
		return nil, err
	}
	return deadlines, nil
}

type TutoringSessionRepositoryImpl struct {
	db *gorm.DB
}

func NewTutoringSessionRepository(db *gorm.DB) contract.TutoringSessionRepository {
	return &TutoringSessionRepositoryImpl{db: db}
}

func (r *TutoringSessionRepositoryImpl) Create(ctx context.Context, session *entity.TutoringSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *TutoringSessionRepositoryImpl) FindAll(ctx context.Context) ([]*entity.TutoringSession, error) {
	var sessions []*entity.TutoringSession
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
