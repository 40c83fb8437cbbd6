// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/tasker-dev/tasker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockLogger is a no-op test double for domain.Logger that records events.
type MockLogger struct {
	Events []string
}

// Info records the event name.
func (m *MockLogger) Info(_ int, event, _ string) {
	m.Events = append(m.Events, event)
}

// Error records the event name.
func (m *MockLogger) Error(event, _ string) {
	m.Events = append(m.Events, event)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Tasks are kept in a slice to preserve insertion order like the real store.
type MockTaskRepository struct {
	Tasks     []*domain.Task
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
	NextIDN   int
}

// NewMockTaskRepository creates a new MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{NextIDN: 1}
}

// Get retrieves a task by ID. Returns nil if not found.
func (m *MockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// List returns tasks matching the filter in insertion order.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if filter.Matches(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Create assigns the next ID and appends the task.
func (m *MockTaskRepository) Create(task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	task.ID = m.NextIDN
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Update replaces the stored task with the same ID.
func (m *MockTaskRepository) Update(task *domain.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i, t := range m.Tasks {
		if t.ID == task.ID {
			m.Tasks[i] = task
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, t := range m.Tasks {
		if t.ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Seed adds a task directly, assigning it the next ID.
func (m *MockTaskRepository) Seed(task *domain.Task) *domain.Task {
	task.ID = m.NextIDN
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return task
}

// Ensure MockTaskRepository implements TaskRepository.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)
