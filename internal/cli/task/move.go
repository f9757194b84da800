package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move --id <id> <stage>",
		Short: "Move a task to another stage",
		Long: `Move a task to todo, completed or archived.

The id may be the full id or a unique prefix of at least 4 characters.

Examples:
  tareas task move --id 1a2b3c4d completed
  tareas task move --id 1a2b archived --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	ref, _ := cmd.Flags().GetString("id")

	stage, err := cli.ParseStage(args[0])
	if err != nil {
		return cli.FailWith(formatter, err, "INVALID_STAGE")
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := cli.RequireProfile(ctx, c, formatter); err != nil {
			return err
		}
		tasks, err := c.App.TaskService.Load(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}

		// The store ignores unknown ids; scripts still need to hear about them
		id, err := cli.ResolveTaskID(tasks, ref)
		if err != nil {
			return cli.FailWith(formatter, fmt.Errorf("task %s: %w", ref, err), "TASK_NOT_FOUND")
		}

		if _, err := c.App.TaskService.ChangeStage(ctx, id, stage); err != nil {
			return cli.FailWith(formatter, err, "TASK_MOVE_ERROR")
		}

		task, err := c.App.TaskService.Get(id)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}

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

		fmt.Printf("✓ Task '%s' moved to %s\n", task.Text, stage.Title())
		return nil
	})
}
