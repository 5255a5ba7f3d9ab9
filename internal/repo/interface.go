package repo

import (
	"context"

	"github.com/BuzzLyutic/task-planner/internal/model"
)

// TaskRepository is the CRUD surface over the task set.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id int64, field, value string) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

// Store persists the complete task set.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error
}
