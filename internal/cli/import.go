package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasker-dev/tasker/internal/app"
	"github.com/tasker-dev/tasker/internal/usecase"
)

// newImportCommand creates the import command for bulk-adding tasks.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a YAML file",
		Long: `Create tasks in bulk from a YAML file. All entries are validated
before any task is created; a bad entry aborts the whole import.

File format:
  tasks:
    - title: Buy milk
      priority: high
    - title: Call dentist

Examples:
  # Import tasks
  tasker import backlog.yaml

  # Validate a file without creating anything
  tasker import backlog.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: string(content),
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintf(w, "Dry run - %d task(s) would be created:\n", len(out.Tasks))
				for _, task := range out.Tasks {
					_, _ = fmt.Fprintf(w, "  %s [%s]\n", task.Title, task.Priority)
				}
				return nil
			}

			for _, task := range out.Tasks {
				_, _ = fmt.Fprintf(w, "Added task #%d: %s [%s]\n", task.ID, task.Title, task.Priority)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without creating tasks")

	return cmd
}
