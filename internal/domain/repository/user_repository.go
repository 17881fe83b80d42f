package repository

import (
	"context"

	"github.com/andresmx/tasktrack/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create must fail with ErrDuplicateEmail when the normalized email is
// already present; uniqueness is enforced by the store, not by a prior read.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
