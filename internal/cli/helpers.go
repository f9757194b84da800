package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/models"
	taskservice "github.com/thenoetrevino/tareas/internal/services/task"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
)

// MinIDPrefix is the shortest id prefix accepted in place of a full id
const MinIDPrefix = 4

// ErrAmbiguousID is returned when an id prefix matches more than one task
var ErrAmbiguousID = errors.New("id prefix matches more than one task")

// FormatterFromFlags builds an OutputFormatter from the --json and --quiet flags
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// ParseStage parses a stage name given on the command line
func ParseStage(value string) (models.Stage, error) {
	stage, err := models.ParseStage(value)
	if err != nil {
		return "", fmt.Errorf("invalid stage '%s' (must be: todo, completed, archived): %w", value, err)
	}
	return stage, nil
}

// ResolveTaskID matches ref against the full ids of tasks, then against
// unique prefixes of at least MinIDPrefix characters.
func ResolveTaskID(tasks []models.Task, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", taskservice.ErrTaskNotFound
	}

	var match string
	for _, t := range tasks {
		if t.ID == ref {
			return ref, nil
		}
		if len(ref) >= MinIDPrefix && strings.HasPrefix(t.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", taskservice.ErrTaskNotFound
	}
	return match, nil
}

// FailWith reports a service error using the error code and exit code that
// match it. fallbackCode is used for errors with no specific mapping.
func FailWith(formatter *OutputFormatter, err error, fallbackCode string) error {
	switch {
	case userservice.IsValidation(err):
		return formatter.Fail("VALIDATION_ERROR", ExitValidation, err, "")
	case errors.Is(err, models.ErrInvalidStage):
		return formatter.Fail("INVALID_STAGE", ExitValidation, err, "Valid stages are: todo, completed, archived")
	case errors.Is(err, userservice.ErrNotRegistered):
		return formatter.Fail("NOT_REGISTERED", ExitNotFound, err,
			"Register with: tareas register --name <name> --dob YYYY-MM-DD")
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return formatter.Fail("TASK_NOT_FOUND", ExitNotFound, err, "Use 'tareas task list' to see task ids")
	case errors.Is(err, ErrAmbiguousID):
		return formatter.Fail("AMBIGUOUS_ID", ExitUsage, err, "Use more characters of the id")
	case errors.Is(err, taskservice.ErrCorruptTasks):
		return formatter.Fail("CORRUPT_DATA", ExitDataErr, err, "")
	default:
		return formatter.Fail(fallbackCode, ExitFailure, err, "")
	}
}

// RequireProfile reports NOT_REGISTERED unless a user has registered.
// Task commands use it so scripts see the same gate as the board.
func RequireProfile(ctx context.Context, c *CLI, formatter *OutputFormatter) error {
	if _, err := c.App.UserService.Current(ctx); err != nil {
		return FailWith(formatter, err, "USER_FETCH_ERROR")
	}
	return nil
}

// WithCLI runs fn against the CLI carried by the command's context and
// closes it afterwards.
func WithCLI(cmd *cobra.Command, formatter *OutputFormatter, fn func(*CLI) error) error {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", ExitFailure, err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()
	return fn(cliInstance)
}
