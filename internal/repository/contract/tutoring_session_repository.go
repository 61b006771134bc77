package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
)

type TutoringSessionRepository interface {
	Create(ctx context.Context, session *entity.TutoringSession) error
	FindAll(ctx context.Context) ([]*entity.TutoringSession, error)
}
