// Package user implements the profile commands: register, whoami and signout
package user

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/models"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
)

// profileOutput is a profile plus its derived age
type profileOutput struct {
	Name string `json:"name"`
	DOB  string `json:"dob"`
	Age  int    `json:"age"`
}

func (p profileOutput) String() string {
	return fmt.Sprintf("%s (born %s, age %d)", p.Name, p.DOB, p.Age)
}

func newProfileOutput(p models.Profile) profileOutput {
	out := profileOutput{Name: p.Name, DOB: p.DOB}
	if dob, err := time.Parse(models.DOBLayout, p.DOB); err == nil {
		out.Age = userservice.Age(dob, time.Now())
	}
	return out
}

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the local user",
		Long: `Store the name and date of birth of the board's user.

Users must be at least 10 and less than 100 years old.

Examples:
  tareas register --name "Ada" --dob 1990-05-01
`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cmd.Flags().String("name", "", "Your name (required)")
	cmd.Flags().String("dob", "", "Date of birth, YYYY-MM-DD (required)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, _ := cmd.Flags().GetString("name")
	dob, _ := cmd.Flags().GetString("dob")

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		profile, err := c.App.UserService.Register(ctx, name, dob)
		if err != nil {
			return cli.FailWith(formatter, err, "REGISTER_ERROR")
		}

		out := newProfileOutput(profile)
		if formatter.Quiet {
			fmt.Println(out.Name)
			return nil
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"success": true,
				"user":    out,
			})
		}

		fmt.Printf("✓ Welcome, %s!\n", out.Name)
		return nil
	})
}

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the registered user",
		Args:  cobra.NoArgs,
		RunE:  runWhoami,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		profile, err := c.App.UserService.Current(ctx)
		if err != nil {
			return cli.FailWith(formatter, err, "USER_FETCH_ERROR")
		}

		out := newProfileOutput(profile)
		if formatter.Quiet {
			fmt.Println(out.Name)
			return nil
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"success": true,
				"user":    out,
			})
		}
		return formatter.Success(out)
	})
}

// SignoutCmd returns the signout command
func SignoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Sign out and delete all local data",
		Long:  "Remove the registered user and every task (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runSignout,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSignout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Print("Sign out and delete all tasks? (y/N): ")
		var response string
		// An empty line reads as an error and means no
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	return cli.WithCLI(cmd, formatter, func(c *cli.CLI) error {
		if err := c.App.UserService.SignOut(ctx); err != nil {
			return cli.FailWith(formatter, err, "SIGNOUT_ERROR")
		}

		if formatter.Quiet {
			return nil
		}
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{"success": true})
		}
		fmt.Println("✓ Signed out. All local data was removed.")
		return nil
	})
}
