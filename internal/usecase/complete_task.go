package usecase

import (
	"context"
	"fmt"

	"github.com/tasker-dev/tasker/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID int // Task ID to mark done
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task *domain.Task // The updated task
}

// CompleteTask is the use case for marking a task done.
type CompleteTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute marks the task done and records the completion time.
// Completing an already-done task is an error, not a silent no-op, so the
// caller can message the user precisely.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if task.IsDone() {
		return nil, domain.ErrTaskAlreadyDone
	}

	now := uc.clock.Now()
	task.Status = domain.StatusDone
	task.Completed = &now

	if err := uc.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "done", fmt.Sprintf("completed: %q", task.Title))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
