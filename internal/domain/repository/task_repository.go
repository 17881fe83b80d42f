package repository

import (
	"context"

	"github.com/andresmx/tasktrack/internal/domain/entity"
)

// TaskPatch carries a partial update. Nil means "leave unchanged"; a pointer
// to the empty string is a real value (relevant for Description).
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskRepository scopes every operation to an owner. The ownerID parameter is
// mandatory by signature so no call path can skip the ownership check. A task
// that exists but belongs to someone else is indistinguishable from a missing
// one: both return ErrNotFound.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Task, error)
	Update(ctx context.Context, ownerID, id string, patch TaskPatch) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
}
