package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tareas/internal/cli"
	"github.com/thenoetrevino/tareas/internal/models"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
	"github.com/thenoetrevino/tareas/internal/testutil"
	clitest "github.com/thenoetrevino/tareas/internal/testutil/cli"
)

func yearsAgo(n int) string {
	return time.Now().AddDate(-n, 0, -1).Format(models.DOBLayout)
}

func TestRegister_JSON(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, RegisterCmd(),
		[]string{"--name", "Ada", "--dob", yearsAgo(30), "--json"})
	require.NoError(t, err)

	result := clitest.ParseJSON(t, output)
	user := result["user"].(map[string]any)
	assert.Equal(t, "Ada", user["name"])
	assert.Equal(t, float64(30), user["age"])

	profile, err := app.UserService.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing name", []string{"--dob", yearsAgo(30)}, userservice.ErrMissingField},
		{"bad date", []string{"--name", "Ada", "--dob", "1990-13-45"}, userservice.ErrInvalidDate},
		{"too young", []string{"--name", "Ada", "--dob", yearsAgo(5)}, userservice.ErrTooYoung},
		{"too old", []string{"--name", "Ada", "--dob", yearsAgo(120)}, userservice.ErrTooOld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, app := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, app, RegisterCmd(), append(tt.args, "--json"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

			result := clitest.ParseJSON(t, output)
			assert.Equal(t, "VALIDATION_ERROR", result["error"].(map[string]any)["code"])

			_, err = app.UserService.Current(context.Background())
			assert.ErrorIs(t, err, userservice.ErrNotRegistered)
		})
	}
}

func TestWhoami(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "Grace")

	output, err := clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Grace (born ")

	output, err = clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", strings.TrimSpace(output))
}

func TestWhoami_NotRegistered(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, "NOT_REGISTERED", result["error"].(map[string]any)["code"])
}

func TestWhoami_NotRegisteredHumanSuggestsRegister(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	var err error
	stderr := testutil.CaptureStderr(t, func() {
		_, err = clitest.ExecuteCLICommand(t, app, WhoamiCmd(), []string{})
	})
	require.Error(t, err)
	assert.Contains(t, stderr, "no user registered")
	assert.Contains(t, stderr, "tareas register --name")
}

func TestSignout_Force(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "Grace")
	clitest.CreateTestTask(t, app, "leftover")

	output, err := clitest.ExecuteCLICommand(t, app, SignoutCmd(), []string{"--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "Signed out")

	_, err = app.UserService.Current(context.Background())
	assert.ErrorIs(t, err, userservice.ErrNotRegistered)

	app.TaskService.Reset()
	tasks, err := app.TaskService.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSignout_Confirmation(t *testing.T) {
	_, app := clitest.SetupCLITest(t)
	clitest.RegisterTestUser(t, app, "Grace")

	output, err := clitest.ExecuteCLICommandWithInput(t, app, SignoutCmd(), []string{}, "n\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")

	_, err = app.UserService.Current(context.Background())
	require.NoError(t, err)

	output, err = clitest.ExecuteCLICommandWithInput(t, app, SignoutCmd(), []string{}, "yes\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Signed out")

	_, err = app.UserService.Current(context.Background())
	assert.ErrorIs(t, err, userservice.ErrNotRegistered)
}
