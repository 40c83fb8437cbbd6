package usecase

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tasker-dev/tasker/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks from a file.
type ImportTasksInput struct {
	Content string // YAML file content
	DryRun  bool   // Parse and validate without creating tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created tasks (IDs unset in dry-run mode)
}

// taskEntry is one task definition in the import file.
type taskEntry struct {
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
}

// importFile mirrors the YAML file structure:
//
//	tasks:
//	  - title: Buy milk
//	    priority: high
//	  - title: Call dentist
type importFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

// ImportTasks is the use case for bulk-creating tasks from a YAML file.
type ImportTasks struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute parses the file content and creates the tasks in order.
// All entries are validated before any task is created, so a bad entry
// never leaves a partial import behind.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var file importFile
	if err := yaml.Unmarshal([]byte(in.Content), &file); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(file.Tasks) == 0 {
		return nil, domain.ErrEmptyImport
	}

	// Validate everything up front.
	drafts := make([]*domain.Task, 0, len(file.Tasks))
	for i, entry := range file.Tasks {
		if entry.Title == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrEmptyTitle)
		}
		priority, err := domain.ParsePriority(entry.Priority)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, &domain.Task{
			Title:    entry.Title,
			Priority: priority,
			Status:   domain.StatusPending,
			Created:  uc.clock.Now(),
		})
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: drafts}, nil
	}

	for _, task := range drafts {
		if err := uc.tasks.Create(task); err != nil {
			return nil, fmt.Errorf("create task %q: %w", task.Title, err)
		}
		if uc.logger != nil {
			uc.logger.Info(task.ID, "import", fmt.Sprintf("created: %q [%s]", task.Title, task.Priority))
		}
	}

	return &ImportTasksOutput{Tasks: drafts}, nil
}
