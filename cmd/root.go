package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/cli/board"
	"github.com/thenoetrevino/tareas/internal/cli/task"
	"github.com/thenoetrevino/tareas/internal/cli/user"
	"github.com/thenoetrevino/tareas/internal/launcher"
)

// Version is set at build time with -ldflags
var Version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tareas",
		Short: "Tareas - a three-column task board for the terminal",
		Long: `Tareas keeps a personal board of tasks in three stages: Todo, Completed
and Archived. Run without a subcommand to open the interactive board.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	cmd.AddCommand(task.TaskCmd())
	cmd.AddCommand(board.BoardCmd())
	cmd.AddCommand(user.RegisterCmd())
	cmd.AddCommand(user.WhoamiCmd())
	cmd.AddCommand(user.SignoutCmd())

	return cmd
}

// Execute runs the root command and exits with the command's exit code
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Commands that already reported their failure return an *cli.ExitError
	var reported *cli.ExitError
	if !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
