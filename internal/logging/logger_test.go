package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("line %q is not JSON: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewLogger(t *testing.T) {
	t.Run("creates log file in directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")

		logger, err := NewLogger(dir, LevelDebug)
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(filepath.Join(dir, LogFileName)); err != nil {
			t.Errorf("log file was not created: %v", err)
		}
	})

	t.Run("writes to stderr when dir is empty", func(t *testing.T) {
		logger, err := NewLogger("", LevelInfo)
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		if logger.out.closer != nil {
			t.Error("expected no file when dir is empty")
		}
		if err := logger.Close(); err != nil {
			t.Errorf("Close on stderr logger returned %v", err)
		}
	})
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{LevelDebug, 4},
		{LevelInfo, 3},
		{LevelWarn, 2},
		{LevelError, 1},
		{"bogus", 3},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, tt.level)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			if len(lines) != tt.want {
				t.Errorf("level %s: got %d lines, want %d", tt.level, len(lines), tt.want)
			}
		})
	}
}

func TestChildAttributes(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelDebug)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	child := logger.WithComponent("resize").WithSource("script.yaml").With("index", 2, 99, "ignored")
	child.Info("column resized", "width", 150)
	logger.Info("parent")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := readLines(t, filepath.Join(dir, LogFileName))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	first := lines[0]
	if first["component"] != "resize" || first["source"] != "script.yaml" {
		t.Errorf("missing child attributes: %v", first)
	}
	if first["index"] != float64(2) || first["width"] != float64(150) {
		t.Errorf("missing key-value attributes: %v", first)
	}
	if _, ok := lines[1]["component"]; ok {
		t.Error("parent logger picked up child attributes")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger(t.TempDir(), LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	child := logger.WithComponent("tui")

	if err := child.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.WithComponent("x").Error("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close returned %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"Warn":  LevelWarn,
		"error": LevelError,
		"":      LevelInfo,
		"trace": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 || levels[0] != LevelDebug || levels[3] != LevelError {
		t.Errorf("ValidLevels() = %v", levels)
	}
}

func TestConcurrentWrites(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			l := logger.WithComponent("worker")
			for j := range 10 {
				l.Info("tick", "worker", i, "n", j)
			}
		})
	}
	wg.Wait()
	logger.Close()

	if got := len(readLines(t, filepath.Join(dir, LogFileName))); got != 200 {
		t.Errorf("expected 200 lines, got %d", got)
	}
}
