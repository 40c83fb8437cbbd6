package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockTaskRepository) *app.Container {
	return app.NewWithDeps(
		app.Config{},
		repo,
		&testutil.MockClock{NowTime: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
	)
}

func seedPending(repo *testutil.MockTaskRepository, title string) *domain.Task {
	return repo.Seed(&domain.Task{
		Title:    title,
		Priority: domain.PriorityMedium,
		Status:   domain.StatusPending,
		Created:  time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
	})
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestAddCommand_CreateTask(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"buy milk"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Added task #1")

	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, "buy milk", repo.Tasks[0].Title)
	assert.Equal(t, domain.PriorityMedium, repo.Tasks[0].Priority)
	assert.Equal(t, domain.StatusPending, repo.Tasks[0].Status)
}

func TestAddCommand_WithPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"file taxes", "--priority", "high"})

	err := cmd.Execute()

	require.NoError(t, err)
	require.Len(t, repo.Tasks, 1)
	assert.Equal(t, domain.PriorityHigh, repo.Tasks[0].Priority)
}

func TestAddCommand_InvalidPriority(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"task", "--priority", "urgent"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, repo.Tasks)
}

func TestAddCommand_EmptyTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	container := newTestContainer(repo)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"   "})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand_All(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedPending(repo, "first")
	seedPending(repo, "second")
	container := newTestContainer(repo)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestListCommand_StatusFilter(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedPending(repo, "open task")
	done := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	repo.Seed(&domain.Task{
		Title:     "closed task",
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusDone,
		Created:   done.Add(-time.Hour),
		Completed: &done,
	})
	container := newTestContainer(repo)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--status", "done"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "closed task")
	assert.NotContains(t, buf.String(), "open task")
}

func TestListCommand_InvalidStatus(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--status", "archived"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestListCommand_Empty(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks found.")
}

// =============================================================================
// Done Command Tests
// =============================================================================

func TestDoneCommand_Complete(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	task := seedPending(repo, "finish me")
	container := newTestContainer(repo)

	cmd := newDoneCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Completed task #1")

	stored, err := repo.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, stored.Status)
	assert.NotNil(t, stored.Completed)
}

func TestDoneCommand_NotFound(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newDoneCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDoneCommand_AlreadyDone(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	done := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	repo.Seed(&domain.Task{
		Title:     "already finished",
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusDone,
		Created:   done.Add(-time.Hour),
		Completed: &done,
	})
	container := newTestContainer(repo)

	cmd := newDoneCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskAlreadyDone)
}

func TestDoneCommand_BadID(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newDoneCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidTaskID)
}

// =============================================================================
// Delete Command Tests
// =============================================================================

func TestDeleteCommand_Delete(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedPending(repo, "remove me")
	container := newTestContainer(repo)

	cmd := newDeleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task #1")
	assert.Empty(t, repo.Tasks)
}

func TestDeleteCommand_NotFound(t *testing.T) {
	container := newTestContainer(testutil.NewMockTaskRepository())

	cmd := newDeleteCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"7"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// Show Command Tests
// =============================================================================

func TestShowCommand_Detail(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	seedPending(repo, "inspect me")
	container := newTestContainer(repo)

	cmd := newShowCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Task #1")
	assert.Contains(t, out, "inspect me")
	assert.Contains(t, out, "Pending")
}
