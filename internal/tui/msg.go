package tui

import "github.com/tasker-dev/tasker/internal/domain"

// Msg is the interface for all TUI messages.
// All message types implement this sealed interface.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list has been loaded from the store.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Err   error
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a new task has been created.
type MsgTaskAdded struct {
	Err error
}

func (MsgTaskAdded) sealed() {}

// MsgTaskCompleted is sent when a task has been marked done.
type MsgTaskCompleted struct {
	Err error
	ID  int
}

func (MsgTaskCompleted) sealed() {}

// MsgTaskDeleted is sent when a task has been removed.
type MsgTaskDeleted struct {
	Err error
	ID  int
}

func (MsgTaskDeleted) sealed() {}
