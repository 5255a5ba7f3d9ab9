package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BuzzLyutic/task-planner/internal/model"
	"github.com/BuzzLyutic/task-planner/internal/repo"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) Get(ctx context.Context, id int64) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id int64, field, value string) (model.Task, error) {
	args := m.Called(ctx, id, field, value)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validTask() model.Task {
	return model.Task{
		Title:       "Buy milk",
		Description: "2%",
		Priority:    model.PriorityLow,
		DueDate:     "2025-03-01",
		Category:    "errand",
	}
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name      string
		task      func() model.Task
		setupMock func(*MockTaskRepository)
		wantErr   error
	}{
		{
			name: "successful creation",
			task: validTask,
			setupMock: func(m *MockTaskRepository) {
				created := validTask()
				created.ID = 1
				m.On("Create", mock.Anything, validTask()).Return(created, nil)
			},
			wantErr: nil,
		},
		{
			name: "validation error - empty title",
			task: func() model.Task {
				t := validTask()
				t.Title = ""
				return t
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name: "validation error - empty category",
			task: func() model.Task {
				t := validTask()
				t.Category = ""
				return t
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name: "validation error - invalid priority",
			task: func() model.Task {
				t := validTask()
				t.Priority = "urgent"
				return t
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name: "validation error - impossible date",
			task: func() model.Task {
				t := validTask()
				t.DueDate = "2024-02-30"
				return t
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)
			svc := NewTaskService(mockRepo, zap.NewNop())

			result, err := svc.Create(context.Background(), tt.task())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), result.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_CreateLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	mockRepo := new(MockTaskRepository)
	created := validTask()
	created.ID = 7
	mockRepo.On("Create", mock.Anything, validTask()).Return(created, nil)
	svc := NewTaskService(mockRepo, zap.New(core))

	_, err := svc.Create(context.Background(), validTask())

	require.NoError(t, err)
	entries := logs.FilterMessage("task added").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ContextMap()["task_id"])
}

func TestTaskService_Update(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		setupMock func(*MockTaskRepository)
		wantErr   error
	}{
		{
			name:  "valid priority",
			field: "priority",
			value: "high",
			setupMock: func(m *MockTaskRepository) {
				m.On("Update", mock.Anything, int64(2), "priority", "high").Return(model.Task{ID: 2, Priority: model.PriorityHigh}, nil)
			},
		},
		{
			name:      "invalid priority",
			field:     "priority",
			value:     "urgent",
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:      "invalid date",
			field:     "due_date",
			value:     "2023-02-29",
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:      "empty title",
			field:     "title",
			value:     "",
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrValidation,
		},
		{
			name:  "unknown field passes through",
			field: "status",
			value: "",
			setupMock: func(m *MockTaskRepository) {
				m.On("Update", mock.Anything, int64(2), "status", "").Return(model.Task{ID: 2}, nil)
			},
		},
		{
			name:  "not found",
			field: "title",
			value: "x",
			setupMock: func(m *MockTaskRepository) {
				m.On("Update", mock.Anything, int64(2), "title", "x").Return(model.Task{}, repo.ErrorNotFound)
			},
			wantErr: repo.ErrorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)
			svc := NewTaskService(mockRepo, zap.NewNop())

			_, err := svc.Update(context.Background(), 2, tt.field, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	mockRepo.On("Delete", mock.Anything, int64(9)).Return(repo.ErrorNotFound)
	svc := NewTaskService(mockRepo, zap.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 9), repo.ErrorNotFound)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_GetAndList(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	task := validTask()
	task.ID = 3
	mockRepo.On("Get", mock.Anything, int64(3)).Return(task, nil)
	mockRepo.On("List", mock.Anything).Return([]model.Task{task}, nil)
	svc := NewTaskService(mockRepo, zap.NewNop())

	got, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, task, got)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Task{task}, list)
}
