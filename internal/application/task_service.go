package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/andresmx/tasktrack/internal/domain/entity"
	repo "github.com/andresmx/tasktrack/internal/domain/repository"
)

// TaskService executes task operations on behalf of an authenticated owner.
// Every method takes the owner id resolved by the auth middleware; there is
// no way to reach the repository without it.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// List returns the owner's tasks, newest created first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Get fetches a single task by id, scoped to the owner.
func (s *TaskService) Get(ctx context.Context, ownerID, id string) (*entity.Task, error) {
	return s.Repo.GetByID(ctx, ownerID, id)
}

// Create validates the input and stores a new task. Description defaults to
// the empty string and status to pending.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*entity.Task, error) {
	var reasons []string
	if strings.TrimSpace(in.Title) == "" {
		reasons = append(reasons, "title is required")
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	} else if !entity.ValidStatus(status) {
		reasons = append(reasons, "status must be one of: pending, in_progress, completed")
	}
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	t := &entity.Task{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "owner_id": ownerID}).Debug("task created")
	return t, nil
}

// Update applies a partial update. Nil patch fields keep their prior value;
// an explicitly provided empty description is stored as empty. A provided
// title must be non-empty and a provided status must be one of the three
// known states. ErrNotFound covers both a missing task and one owned by
// someone else.
func (s *TaskService) Update(ctx context.Context, ownerID, id string, patch repo.TaskPatch) (*entity.Task, error) {
	var reasons []string
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		reasons = append(reasons, "title cannot be empty")
	}
	if patch.Status != nil && !entity.ValidStatus(*patch.Status) {
		reasons = append(reasons, "status must be one of: pending, in_progress, completed")
	}
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}
	return s.Repo.Update(ctx, ownerID, id, patch)
}

// Delete removes the task permanently. Same ownership semantics as Update.
func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"task_id": id, "owner_id": ownerID}).Debug("task deleted")
	return nil
}
