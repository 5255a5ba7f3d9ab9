package handler

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-planner/internal/model"
	"github.com/BuzzLyutic/task-planner/internal/repo"
	"github.com/BuzzLyutic/task-planner/internal/service"
	"github.com/BuzzLyutic/task-planner/internal/validator"
	"github.com/BuzzLyutic/task-planner/pkg/respond"
)

// Prompter collects validated input from the user.
type Prompter interface {
	Ask(ctx context.Context, prompt string, pattern *regexp.Regexp) (string, error)
	AskDate(ctx context.Context, prompt string) (string, error)
}

type TaskHandler struct {
	service *service.TaskService
	prompt  Prompter
	out     io.Writer
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, prompt Prompter, out io.Writer, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		prompt:  prompt,
		out:     out,
		logger:  logger,
	}
}

func (h *TaskHandler) Add(ctx context.Context) error {
	var (
		t   model.Task
		err error
	)

	if t.Title, err = h.prompt.Ask(ctx, "Enter task title: ", validator.NonEmpty); err != nil {
		return err
	}
	if t.Description, err = h.prompt.Ask(ctx, "Enter task description: ", validator.NonEmpty); err != nil {
		return err
	}
	priority, err := h.prompt.Ask(ctx, "Enter task priority (high/medium/low): ", validator.Priority)
	if err != nil {
		return err
	}
	t.Priority = model.Priority(priority)
	if t.DueDate, err = h.prompt.AskDate(ctx, "Enter task due date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if t.Category, err = h.prompt.Ask(ctx, "Enter task category: ", validator.NonEmpty); err != nil {
		return err
	}

	if _, err := h.service.Create(ctx, t); err != nil {
		return h.handleErrors("", err)
	}
	respond.Message(h.out, "Task added successfully.")
	return nil
}

func (h *TaskHandler) Delete(ctx context.Context) error {
	raw, err := h.prompt.Ask(ctx, "Enter task ID to delete: ", validator.ID)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		respond.NotFound(h.out, raw)
		return nil
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return h.handleErrors(strconv.FormatInt(id, 10), err)
	}
	respond.Message(h.out, "Task deleted successfully.")
	return nil
}

func (h *TaskHandler) Update(ctx context.Context) error {
	raw, err := h.prompt.Ask(ctx, "Enter task ID to update: ", validator.ID)
	if err != nil {
		return err
	}
	field, err := h.prompt.Ask(ctx, "Enter field to update (title/description/priority/due_date/category): ", validator.FieldName)
	if err != nil {
		return err
	}
	value, err := h.askValue(ctx, field)
	if err != nil {
		return err
	}

	id, ok := parseID(raw)
	if !ok {
		respond.NotFound(h.out, raw)
		return nil
	}
	if _, err := h.service.Update(ctx, id, field, value); err != nil {
		return h.handleErrors(strconv.FormatInt(id, 10), err)
	}
	respond.Message(h.out, "Task updated successfully.")
	return nil
}

// askValue applies the same rule to a new value as adding a task would.
func (h *TaskHandler) askValue(ctx context.Context, field string) (string, error) {
	prompt := "Enter new value for " + field + ": "
	switch model.Field(field) {
	case model.FieldPriority:
		return h.prompt.Ask(ctx, prompt, validator.Priority)
	case model.FieldDueDate:
		return h.prompt.AskDate(ctx, prompt)
	default:
		return h.prompt.Ask(ctx, prompt, validator.NonEmpty)
	}
}

func (h *TaskHandler) List(ctx context.Context) error {
	tasks, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	respond.Message(h.out, "\nList of Tasks:")
	respond.Tasks(h.out, tasks)
	return nil
}

func (h *TaskHandler) Search(ctx context.Context) error {
	raw, err := h.prompt.Ask(ctx, "Enter task ID to search: ", validator.ID)
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		respond.NotFound(h.out, raw)
		return nil
	}

	task, err := h.service.Get(ctx, id)
	if err != nil {
		return h.handleErrors(strconv.FormatInt(id, 10), err)
	}
	respond.Task(h.out, task)
	return nil
}

// handleErrors absorbs outcomes the user can act on and passes the rest up.
func (h *TaskHandler) handleErrors(id string, err error) error {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.NotFound(h.out, id)
		return nil
	case errors.Is(err, service.ErrValidation):
		h.logger.Warn("rejected input", zap.Error(err))
		respond.Message(h.out, "Invalid input. Please try again.")
		return nil
	default:
		return err
	}
}

// parseID fails only for digit strings too large for an id, which can never
// name a stored task.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}
