package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/testutil"
)

const importFixture = `
tasks:
  - title: Buy milk
    priority: high
  - title: Call dentist
  - title: Water plants
    priority: low
`

func TestImportTasks_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importFixture})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, 1, out.Tasks[0].ID)
	assert.Equal(t, domain.PriorityHigh, out.Tasks[0].Priority)
	assert.Equal(t, "Call dentist", out.Tasks[1].Title)
	assert.Equal(t, domain.PriorityMedium, out.Tasks[1].Priority, "missing priority defaults to medium")
	assert.Equal(t, domain.PriorityLow, out.Tasks[2].Priority)
	assert.Len(t, repo.Tasks, 3)
}

func TestImportTasks_DryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importFixture, DryRun: true})

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 3)
	assert.Empty(t, repo.Tasks, "dry run must not create tasks")
}

func TestImportTasks_InvalidEntryCreatesNothing(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	content := `
tasks:
  - title: Fine task
  - title: Broken task
    priority: urgent
`
	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Empty(t, repo.Tasks, "validation failure must not create any task")
}

func TestImportTasks_MissingTitle(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	content := `
tasks:
  - priority: high
`
	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestImportTasks_EmptyFile(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	tests := []string{"", "tasks: []", "unrelated: true"}
	for _, content := range tests {
		_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})
		assert.ErrorIs(t, err, domain.ErrEmptyImport, "content %q", content)
	}
}

func TestImportTasks_InvalidYAML(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewImportTasks(repo, &testutil.MockClock{NowTime: time.Now()}, nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "tasks: [unclosed"})

	assert.Error(t, err)
}
