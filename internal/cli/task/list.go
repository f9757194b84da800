package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/cli/styles"
	"github.com/thenoetrevino/tareas/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks in collection order, optionally only those in one stage.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().String("stage", "", "Only list tasks in this stage: todo, completed, archived")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	var filter models.Stage
	if value, _ := cmd.Flags().GetString("stage"); value != "" {
		stage, err := cli.ParseStage(value)
		if err != nil {
			return cli.FailWith(formatter, err, "INVALID_STAGE")
		}
		filter = stage
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := cli.RequireProfile(ctx, c, formatter); err != nil {
			return err
		}
		all, err := c.App.TaskService.Load(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}

		tasks := make([]models.Task, 0, len(all))
		for _, t := range all {
			if filter == "" || t.Stage == filter {
				tasks = append(tasks, t)
			}
		}

		if formatter.Quiet {
			for _, t := range tasks {
				fmt.Println(t.ID)
			}
			return nil
		}

		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"success": true,
				"tasks":   tasks,
			})
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("Found %d tasks:\n\n", len(tasks))
		for _, t := range tasks {
			fmt.Printf("  [%s] %-9s %s\n", t.ShortID(), styles.Stage(t.Stage), t.Text)
		}
		return nil
	})
}
