package repo

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/BuzzLyutic/task-planner/internal/model"
)

var (
	ErrorNotFound   = errors.New("not found")
	ErrIDsExhausted = errors.New("no task id left above the current maximum")
)

// TaskRepo owns the in-memory task list and rewrites the Store after each change.
type TaskRepo struct {
	store Store
	tasks []model.Task
}

// Open loads the stored task set once; every later mutation rewrites it.
func Open(ctx context.Context, store Store) (*TaskRepo, error) {
	tasks, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &TaskRepo{
		store: store,
		tasks: tasks,
	}, nil
}

// Create assigns the next id (max existing id + 1, or 1 when empty), appends
// the task and persists. Deleting the highest id lets that id be handed out
// again.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	id, err := r.nextID()
	if err != nil {
		return model.Task{}, err
	}
	t.ID = id
	r.tasks = append(r.tasks, t)
	return t, r.store.Save(ctx, r.tasks)
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	i := r.index(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return r.tasks[i], nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	return slices.Clone(r.tasks), nil
}

// Update sets one field on the matching task. An unrecognized field name
// changes nothing but the set is still persisted.
func (r *TaskRepo) Update(ctx context.Context, id int64, field, value string) (model.Task, error) {
	i := r.index(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	r.tasks[i].Set(field, value)
	return r.tasks[i], r.store.Save(ctx, r.tasks)
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	kept := slices.DeleteFunc(slices.Clone(r.tasks), func(t model.Task) bool {
		return t.ID == id
	})
	if len(kept) == len(r.tasks) {
		return ErrorNotFound
	}
	r.tasks = kept
	return r.store.Save(ctx, r.tasks)
}

func (r *TaskRepo) nextID() (int64, error) {
	var top int64
	for _, t := range r.tasks {
		if t.ID > top {
			top = t.ID
		}
	}
	if top == math.MaxInt64 {
		return 0, ErrIDsExhausted
	}
	return top + 1, nil
}

func (r *TaskRepo) index(id int64) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool {
		return t.ID == id
	})
}
