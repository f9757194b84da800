package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToDir(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(dir, "warn"); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	slog.Info("dropped below level")
	slog.Warn("seed fetch failed", "error", "boom")

	data, err := os.ReadFile(filepath.Join(dir, "tareas.log"))
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "seed fetch failed") {
		t.Errorf("expected warn record in log, got %q", out)
	}
	if strings.Contains(out, "dropped below level") {
		t.Errorf("info record should be filtered at warn level, got %q", out)
	}
}
