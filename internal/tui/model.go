// Package tui provides the interactive task list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
)

// filterCycle is the order in which the f key cycles the status filter.
var filterCycle = []*domain.Status{nil, ptr(domain.StatusPending), ptr(domain.StatusDone)}

func ptr(s domain.Status) *domain.Status { return &s }

// Model is the task list TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	tasks []*domain.Task
	err   error

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	cursor    int
	width     int
	height    int
	filterIdx int
	mode      Mode

	// Boolean state
	loading bool
}

// New creates a new task list TUI model.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "Task title..."
	ai.CharLimit = 500

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		addInput:  ai,
		loading:   true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks loads the task list from the store.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		uc := m.container.ListTasksUseCase()
		out, err := uc.Execute(context.Background(), usecase.ListTasksInput{
			Status: filterCycle[m.filterIdx],
		})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// addTask creates a new task with the given title.
func (m *Model) addTask(title string) tea.Cmd {
	return func() tea.Msg {
		uc := m.container.AddTaskUseCase()
		_, err := uc.Execute(context.Background(), usecase.AddTaskInput{Title: title})
		return MsgTaskAdded{Err: err}
	}
}

// completeTask marks the task done.
func (m *Model) completeTask(id int) tea.Cmd {
	return func() tea.Msg {
		uc := m.container.CompleteTaskUseCase()
		_, err := uc.Execute(context.Background(), usecase.CompleteTaskInput{TaskID: id})
		return MsgTaskCompleted{ID: id, Err: err}
	}
}

// deleteTask removes the task.
func (m *Model) deleteTask(id int) tea.Cmd {
	return func() tea.Msg {
		uc := m.container.DeleteTaskUseCase()
		_, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		return MsgTaskDeleted{ID: id, Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeAddTask {
			return m.updateAddMode(msg)
		}
		return m.updateNormalMode(msg)

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		return m.afterMutation(msg.Err)

	case MsgTaskCompleted:
		return m.afterMutation(msg.Err)

	case MsgTaskDeleted:
		return m.afterMutation(msg.Err)
	}

	return m, nil
}

// afterMutation records the error, if any, and reloads the list.
func (m *Model) afterMutation(err error) (tea.Model, tea.Cmd) {
	m.err = err
	return m, m.loadTasks()
}

// updateNormalMode handles keys in normal (list) mode.
func (m *Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAddTask
		m.addInput.SetValue("")
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.Done):
		if task := m.selected(); task != nil && !task.IsDone() {
			return m, m.completeTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.selected(); task != nil {
			return m, m.deleteTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		m.loading = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadTasks()
	}

	return m, nil
}

// updateAddMode handles keys while the add-task input is focused.
func (m *Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.addInput.Blur()
		return m, nil

	case tea.KeyEnter:
		title := strings.TrimSpace(m.addInput.Value())
		m.mode = ModeNormal
		m.addInput.Blur()
		if title == "" {
			return m, nil
		}
		return m, m.addTask(title)
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// clampCursor keeps the cursor inside the task list after a reload.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Tasks" + m.filterLabel()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Normal.Render("Loading..."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Normal.Render("No tasks. Press 'a' to add one."))
		b.WriteString("\n")
	default:
		for i, task := range m.tasks {
			b.WriteString(m.renderTask(task, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.mode == ModeAddTask {
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.addInput.View()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"a add · d done · x delete · f filter · r refresh · q quit"))

	return b.String()
}

// renderTask renders a single task row.
func (m *Model) renderTask(task *domain.Task, selected bool) string {
	marker := "[ ]"
	if task.IsDone() {
		marker = "[✓]"
	}

	title := task.Title
	if task.IsDone() {
		title = m.styles.DoneTask.Render(title)
	}

	prio := string(task.Priority)
	switch task.Priority {
	case domain.PriorityHigh:
		prio = m.styles.PriorityHigh.Render(prio)
	case domain.PriorityLow:
		prio = m.styles.PriorityLow.Render(prio)
	}

	row := fmt.Sprintf("%s #%-3d %s  %s", marker, task.ID, prio, title)
	if selected {
		return m.styles.Selected.Render(row)
	}
	return m.styles.Normal.Render(row)
}

// filterLabel returns the suffix describing the active status filter.
func (m *Model) filterLabel() string {
	filter := filterCycle[m.filterIdx]
	if filter == nil {
		return ""
	}
	return ": " + filter.Display()
}
