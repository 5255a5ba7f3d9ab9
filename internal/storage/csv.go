package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-planner/internal/model"
)

// Header is the fixed column set of the data file, in order.
var Header = []string{"id", "title", "description", "priority", "due_date", "category"}

// StorageError wraps any failure to read or write the data file.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Failed to %s tasks - %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CSVStore keeps the whole task set in one delimited text file and rewrites
// it on every save.
type CSVStore struct {
	path   string
	logger *zap.Logger
}

func NewCSVStore(path string, logger *zap.Logger) *CSVStore {
	return &CSVStore{
		path:   path,
		logger: logger,
	}
}

func (s *CSVStore) Path() string {
	return s.path
}

// Load returns the tasks in file order. A missing file is an empty set.
func (s *CSVStore) Load(ctx context.Context) ([]model.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, s.fail("load", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no data file yet", zap.String("path", s.path))
			return []model.Task{}, nil
		}
		return nil, s.fail("load", err)
	}
	defer f.Close()

	tasks, err := decode(f)
	if err != nil {
		return nil, s.fail("load", err)
	}

	s.logger.Info("tasks loaded", zap.String("path", s.path), zap.Int("count", len(tasks)))
	return tasks, nil
}

// Save overwrites the file with the header followed by every task.
func (s *CSVStore) Save(ctx context.Context, tasks []model.Task) error {
	if err := ctx.Err(); err != nil {
		return s.fail("save", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return s.fail("save", err)
	}

	if err := encode(f, tasks); err != nil {
		f.Close()
		return s.fail("save", err)
	}
	if err := f.Close(); err != nil {
		return s.fail("save", err)
	}

	s.logger.Debug("tasks saved", zap.String("path", s.path), zap.Int("count", len(tasks)))
	return nil
}

func (s *CSVStore) fail(op string, err error) error {
	s.logger.Error("storage failure", zap.String("op", op), zap.String("path", s.path), zap.Error(err))
	return &StorageError{Op: op, Path: s.path, Err: err}
}

func encode(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := cw.Write(t.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// decode maps columns by header name, so a reordered header still loads.
func decode(r io.Reader) ([]model.Task, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err == io.EOF {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(head))
	for i, name := range head {
		col[name] = i
	}
	for _, name := range Header {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("header is missing column %q", name)
		}
	}

	tasks := []model.Task{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		id, err := strconv.ParseInt(rec[col["id"]], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("line %d: invalid id %q", line, rec[col["id"]])
		}

		tasks = append(tasks, model.Task{
			ID:          id,
			Title:       rec[col["title"]],
			Description: rec[col["description"]],
			Priority:    model.Priority(rec[col["priority"]]),
			DueDate:     rec[col["due_date"]],
			Category:    rec[col["category"]],
		})
	}
	return tasks, nil
}
