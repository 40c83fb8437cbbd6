package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/domain"
	"github.com/tasker-dev/tasker/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Create a new task with status 'pending'.

Examples:
  # Add a task with the default (medium) priority
  tasker add "buy milk"

  # Add a high-priority task
  tasker add "file taxes" --priority high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prio, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Title:    args[0],
				Priority: prio,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s [%s]\n",
				out.Task.ID, out.Task.Title, out.Task.Priority)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Task priority: low, medium or high (default medium)")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Priority string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in insertion order.

Output format is a table with columns:
  ID, STATUS, PRI, AGE, TITLE

Examples:
  # List all tasks
  tasker list

  # List only pending tasks
  tasker list --status pending

  # List high-priority tasks
  tasker list --priority high`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input usecase.ListTasksInput

			if opts.Status != "" {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				input.Status = &status
			}
			if opts.Priority != "" {
				priority, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				input.Priority = &priority
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, c.Clock)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status: pending or done")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Filter by priority: low, medium or high")

	return cmd
}

// newShowCommand creates the show command for displaying a single task.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			printTaskDetail(cmd.OutOrStdout(), out.Task)
			return nil
		},
	}

	return cmd
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Long: `Mark a pending task as done and record the completion time.

Completing a task that is already done is reported as an error so
scripts can tell the difference from a successful completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n",
				out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newDeleteCommand creates the delete command for removing tasks.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Remove a task permanently. The task's ID is never reused
for later tasks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n",
				out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, arg)
	}
	return id, nil
}

// printTaskList prints tasks in a tab-aligned table.
func printTaskList(w io.Writer, tasks []*domain.Task, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRI\tAGE\tTITLE")

	now := clock.Now()
	for _, task := range tasks {
		marker := " "
		if task.IsDone() {
			marker = "✓"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n",
			task.ID,
			marker,
			task.Status,
			task.Priority,
			formatAge(now.Sub(task.Created)),
			task.Title,
		)
	}
}

// printTaskDetail prints the full task record.
func printTaskDetail(w io.Writer, task *domain.Task) {
	_, _ = fmt.Fprintf(w, "Task #%d\n", task.ID)
	_, _ = fmt.Fprintf(w, "  Title:    %s\n", task.Title)
	_, _ = fmt.Fprintf(w, "  Status:   %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
	_, _ = fmt.Fprintf(w, "  Created:  %s\n", task.Created.Format(time.RFC3339))
	if task.Completed != nil {
		_, _ = fmt.Fprintf(w, "  Done at:  %s\n", task.Completed.Format(time.RFC3339))
	}
}

// formatAge renders a duration as a compact relative age.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
