// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/infra/config"
	"github.com/tasker-dev/tasker/internal/infra/jsonstore"
	"github.com/tasker-dev/tasker/internal/infra/logging"
	"github.com/tasker-dev/tasker/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	StorePath string // Path to tasks.json
	DataDir   string // Directory containing the store (and logs)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks        domain.TaskRepository
	Clock        domain.Clock
	Logger       domain.Logger
	ConfigLoader domain.ConfigLoader

	// Configuration
	Config Config
}

// New creates a new Container from the loaded configuration.
func New() (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Dir(cfg.Store.Path)

	var logger domain.Logger
	if cfg.Log.Enabled {
		logger = logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))
	} else {
		logger = logging.New("", logging.ParseLevel(cfg.Log.Level))
	}

	return &Container{
		Tasks:        jsonstore.New(cfg.Store.Path),
		Clock:        domain.RealClock{},
		Logger:       logger,
		ConfigLoader: loader,
		Config: Config{
			StorePath: cfg.Store.Path,
			DataDir:   dataDir,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger)
}
