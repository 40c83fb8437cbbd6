package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/testutil"
)

func TestAddTask_Execute(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	repo := testutil.NewMockTaskRepository()
	logger := &testutil.MockLogger{}
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: now}, logger)

	out, err := uc.Execute(context.Background(), AddTaskInput{
		Title:    "buy milk",
		Priority: domain.PriorityHigh,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Task)
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "buy milk", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
	assert.True(t, out.Task.Created.Equal(now))
	assert.Nil(t, out.Task.Completed)
	assert.Contains(t, logger.Events, "add")
}

func TestAddTask_DefaultPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "eggs"})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
}

func TestAddTask_EmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		_, err := uc.Execute(context.Background(), AddTaskInput{Title: title})
		assert.ErrorIs(t, err, domain.ErrEmptyTitle, "title %q", title)
	}
	assert.Empty(t, repo.Tasks)
}

func TestAddTask_InvalidPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{
		Title:    "task",
		Priority: "urgent",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestAddTask_RepositoryError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.CreateErr = errors.New("disk full")
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "task"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestAddTask_IDsIncrease(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	for want := 1; want <= 3; want++ {
		out, err := uc.Execute(context.Background(), AddTaskInput{Title: "task"})
		require.NoError(t, err)
		assert.Equal(t, want, out.Task.ID)
	}
}
