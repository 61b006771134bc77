package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindAll(ctx context.Context) ([]*entity.Event, error)
}
