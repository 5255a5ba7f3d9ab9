package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-planner/internal/storage"
	"github.com/BuzzLyutic/task-planner/internal/validator"
	"github.com/BuzzLyutic/task-planner/pkg/respond"
)

// ErrInterrupted means the user interrupted the session.
var ErrInterrupted = errors.New("interrupted")

const menu = `
Task Planner
1. Add Task
2. Delete Task
3. Update Task
4. List Tasks
5. Search Task
6. Exit`

// Shell shows the menu, dispatches one choice at a time and loops until the
// user exits.
type Shell struct {
	tasks  *TaskHandler
	prompt Prompter
	out    io.Writer
	logger *zap.Logger
}

func NewShell(tasks *TaskHandler, prompt Prompter, out io.Writer, logger *zap.Logger) *Shell {
	return &Shell{
		tasks:  tasks,
		prompt: prompt,
		out:    out,
		logger: logger,
	}
}

// Run returns nil when the user picks Exit, ErrInterrupted when ctx is
// canceled, and any storage or unexpected error otherwise.
func (s *Shell) Run(ctx context.Context) error {
	for {
		respond.Message(s.out, menu)

		choice, err := s.prompt.Ask(ctx, "Enter your choice: ", validator.MenuChoice)
		if err != nil {
			return s.interrupted(ctx, err)
		}
		if choice == "6" {
			respond.Message(s.out, "Exiting Task Manager.")
			return nil
		}

		if err := s.dispatch(ctx, choice); err != nil {
			return s.interrupted(ctx, err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, choice string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in menu action", zap.String("choice", choice), zap.Any("panic", r))
			err = fmt.Errorf("%v", r)
		}
	}()

	s.logger.Debug("menu choice", zap.String("choice", choice))
	switch choice {
	case "1":
		return s.tasks.Add(ctx)
	case "2":
		return s.tasks.Delete(ctx)
	case "3":
		return s.tasks.Update(ctx)
	case "4":
		return s.tasks.List(ctx)
	case "5":
		return s.tasks.Search(ctx)
	default:
		// unreachable while MenuChoice gates the input
		respond.Message(s.out, "Invalid choice. Please enter a valid option.")
		return nil
	}
}

func (s *Shell) interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ErrInterrupted
	}
	return err
}

// Report prints the outcome of a session and returns the process exit code.
func Report(w io.Writer, err error) int {
	var storageErr *storage.StorageError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
		respond.Message(w, "\nKeyboard Interrupt: Exiting Task Manager.")
		return 0
	case errors.As(err, &storageErr):
		respond.Error(w, err.Error())
		return 1
	default:
		respond.Error(w, "An unexpected error occurred: "+err.Error())
		return 1
	}
}
