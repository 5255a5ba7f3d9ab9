package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-planner/internal/model"
	"github.com/BuzzLyutic/task-planner/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo   repo.TaskRepository
	logger *zap.Logger
}

func NewTaskService(repo repo.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TaskService) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if err := s.validate(t); err != nil {
		return t, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return created, err
	}

	s.logger.Info("task added", zap.Int64("task_id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Update checks the value only for recognized fields; an unknown field name
// goes through to the repository, which ignores it.
func (s *TaskService) Update(ctx context.Context, id int64, field, value string) (model.Task, error) {
	if f, ok := model.ParseField(field); ok {
		if err := validateField(f, value); err != nil {
			return model.Task{}, err
		}
	} else {
		s.logger.Debug("ignoring unknown field", zap.Int64("task_id", id), zap.String("field", field))
	}

	updated, err := s.repo.Update(ctx, id, field, value)
	if err != nil {
		return updated, err
	}

	s.logger.Info("task updated", zap.Int64("task_id", id), zap.String("field", field))
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("task deleted", zap.Int64("task_id", id))
	return nil
}

func (s *TaskService) validate(t model.Task) error {
	values := map[model.Field]string{
		model.FieldTitle:       t.Title,
		model.FieldDescription: t.Description,
		model.FieldPriority:    string(t.Priority),
		model.FieldDueDate:     t.DueDate,
		model.FieldCategory:    t.Category,
	}
	for _, f := range model.Fields {
		if err := validateField(f, values[f]); err != nil {
			return err
		}
	}
	return nil
}

func validateField(f model.Field, value string) error {
	switch f {
	case model.FieldPriority:
		if _, ok := model.ParsePriority(value); !ok {
			return fmt.Errorf("%w: priority must be high, medium or low", ErrValidation)
		}
	case model.FieldDueDate:
		if !model.ValidDueDate(value) {
			return fmt.Errorf("%w: due_date must be a valid YYYY-MM-DD date", ErrValidation)
		}
	default:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrValidation, f)
		}
	}
	return nil
}
