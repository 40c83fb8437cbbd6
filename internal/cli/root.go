// Package cli provides the command-line interface for tasker.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/tui"
)

// Command group IDs.
const (
	groupTask = "task"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tasker.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasker",
		Short: "Personal task tracking CLI",
		Long: `tasker is a small CLI for tracking personal tasks.
Tasks live in a single JSON snapshot file; every command loads the
store, performs one operation and persists the result atomically.

Run without arguments to open the interactive task list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	for _, cmd := range []*cobra.Command{
		newAddCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newDoneCommand(c),
		newDeleteCommand(c),
		newImportCommand(c),
	} {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	return root
}

// launchTUI starts the interactive task list.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
