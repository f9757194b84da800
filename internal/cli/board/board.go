// Package board implements the static board command
package board

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	boardview "github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/cli/styles"
)

// DefaultWidth is used when --width is not given
const DefaultWidth = 96

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board",
		Long: `Print the three columns of the board without starting the interactive UI.

Examples:
  tareas board
  tareas board --markdown
  tareas board --json
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	cmd.Flags().Bool("markdown", false, "Render a markdown summary instead of columns")
	cmd.Flags().Int("width", DefaultWidth, "Output width in columns")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	markdown, _ := cmd.Flags().GetBool("markdown")
	width, _ := cmd.Flags().GetInt("width")
	if width < 30 {
		width = 30
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := cli.RequireProfile(ctx, c, formatter); err != nil {
			return err
		}
		tasks, err := c.App.TaskService.Load(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "TASK_FETCH_ERROR")
		}
		b := boardview.Build(tasks)

		if formatter.Quiet {
			for _, col := range b.Columns {
				fmt.Println(col.Heading())
			}
			return nil
		}

		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"success": true,
				"columns": columnsJSON(b),
			})
		}

		if markdown {
			out, err := RenderMarkdown(b, width)
			if err != nil {
				return formatter.Fail("RENDER_ERROR", cli.ExitFailure, err, "")
			}
			fmt.Println(out)
			return nil
		}

		fmt.Println(RenderColumns(b, width))
		return nil
	})
}

func columnsJSON(b boardview.Board) []map[string]any {
	out := make([]map[string]any, len(b.Columns))
	for i, col := range b.Columns {
		cards := make([]map[string]any, len(col.Cards))
		for j, card := range col.Cards {
			actions := make([]string, len(card.Actions))
			for k, a := range card.Actions {
				actions[k] = a.Label
			}
			cards[j] = map[string]any{
				"id":       card.ID,
				"text":     card.Text,
				"modified": card.Modified,
				"actions":  actions,
			}
		}
		out[i] = map[string]any{
			"stage": col.Stage,
			"title": col.Title,
			"count": col.Count(),
			"cards": cards,
		}
	}
	return out
}

// Markdown is the board as a markdown document
func Markdown(b boardview.Board) string {
	var sb strings.Builder
	sb.WriteString("# Board\n")
	for _, col := range b.Columns {
		sb.WriteString("\n## " + col.Heading() + "\n\n")
		if col.Count() == 0 {
			sb.WriteString("_No tasks_\n")
			continue
		}
		for _, card := range col.Cards {
			fmt.Fprintf(&sb, "- `%s` %s", card.ShortID, card.Text)
			if card.Modified != "" {
				fmt.Fprintf(&sb, " _(%s)_", card.Modified)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderMarkdown renders Markdown(b) for the terminal through glamour
func RenderMarkdown(b boardview.Board, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(b))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// RenderColumns draws the three columns side by side
func RenderColumns(b boardview.Board, width int) string {
	n := max(len(b.Columns), 1)
	colWidth := width / n
	inner := max(colWidth-4, 8)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(inner)

	columns := make([]string, len(b.Columns))
	for i, col := range b.Columns {
		parts := []string{styles.SectionStyle.Render(col.Heading()), ""}
		if col.Count() == 0 {
			parts = append(parts, styles.SubtitleStyle.Italic(true).Render("No tasks"))
		}
		for _, card := range col.Cards {
			body := styles.SubtitleStyle.Render(card.ShortID) + "\n" +
				styles.ValueStyle.Render(card.Text) + "\n" +
				styles.SubtitleStyle.Render(card.Modified)
			parts = append(parts, cardStyle.Render(body))
		}
		columns[i] = lipgloss.NewStyle().
			Width(colWidth).
			PaddingRight(1).
			Render(strings.Join(parts, "\n"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
