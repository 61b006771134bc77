package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
)

type DeadlineRepository interface {
	Create(ctx context.Context, deadline *entity.Deadline) error
	FindAll(ctx context.Context) ([]*entity.Deadline, error)
}
