package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/cli"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new todo task",
		Long: `Add a new task to the Todo column.

Examples:
  # Human-readable output
  tareas task add "Buy milk"

  # JSON output for agents
  tareas task add "Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(tareas task add "Buy milk" --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return formatter.Fail("EMPTY_TEXT", cli.ExitUsage,
			errors.New("task text cannot be empty"), `Usage: tareas task add "Buy milk"`)
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := cli.RequireProfile(ctx, c, formatter); err != nil {
			return err
		}
		before, err := c.App.TaskService.Load(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}

		tasks, err := c.App.TaskService.Add(ctx, text)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_CREATE_ERROR")
		}
		if len(tasks) <= len(before) {
			return formatter.Fail("TASK_CREATE_ERROR", cli.ExitFailure, errors.New("task was not added"), "")
		}
		task := tasks[len(tasks)-1]

		// Output based on mode (JSON/Quiet/Human)
		if formatter.Quiet {
			fmt.Println(task.ID)
			return nil
		}

		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"success": true,
				"task":    task,
			})
		}

		fmt.Printf("✓ Task '%s' added (ID: %s)\n", task.Text, task.ShortID())
		return nil
	})
}
