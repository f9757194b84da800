package cli

import (
	"testing"

	"github.com/thenoetrevino/tareas/internal/testutil"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// Lines splits command output into non-empty lines
func Lines(output string) []string {
	var lines []string
	start := 0
	for i := 0; i <= len(output); i++ {
		if i == len(output) || output[i] == '\n' {
			if i > start {
				lines = append(lines, output[start:i])
			}
			start = i + 1
		}
	}
	return lines
}
