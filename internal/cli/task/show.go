package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/cli/styles"
	"github.com/thenoetrevino/tareas/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display a task with its stage, last modification time and available actions.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	ref, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		ref = args[0]
	}
	if strings.TrimSpace(ref) == "" {
		return formatter.Fail("INVALID_TASK_ID", cli.ExitUsage,
			fmt.Errorf("task ID is required"),
			"Usage: tareas task show <id> or tareas task show --id=<id>")
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := cli.RequireProfile(ctx, c, formatter); err != nil {
			return err
		}
		tasks, err := c.App.TaskService.Load(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}

		id, err := cli.ResolveTaskID(tasks, ref)
		if err != nil {
			return cli.FailWith(formatter, fmt.Errorf("task %s: %w", ref, err), "TASK_NOT_FOUND")
		}
		task, err := c.App.TaskService.Get(id)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_NOT_FOUND")
		}

		if formatter.Quiet {
			fmt.Println(task.ID)
			return nil
		}

		if formatter.JSON {
			return outputJSON(task)
		}

		fmt.Println(renderTask(task))
		return nil
	})
}

func outputJSON(task models.Task) error {
	actions := board.Actions(task.Stage)
	labels := make([]map[string]string, len(actions))
	for i, a := range actions {
		labels[i] = map[string]string{"label": a.Label, "target": string(a.Target)}
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		"task": map[string]any{
			"id":       task.ID,
			"text":     task.Text,
			"stage":    task.Stage,
			"modified": task.Modified,
			"actions":  labels,
		},
	})
}

func renderTask(task models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Text))
	content.WriteString("\n\n")

	row := func(label, value string) {
		content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render(label), value))
	}
	row("ID:", styles.SubtitleStyle.Render(task.ID))
	row("Stage:", styles.Stage(task.Stage))
	row("Modified:", styles.ValueStyle.Render(board.FormatModified(task.Modified)))

	actions := board.Actions(task.Stage)
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = fmt.Sprintf("%d %s", i+1, a.Label)
	}
	row("Actions:", styles.ValueStyle.Render(strings.Join(names, ", ")))

	return styles.CardStyle.Render(strings.TrimRight(content.String(), "\n"))
}
