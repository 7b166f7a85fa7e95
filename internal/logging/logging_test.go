package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todoview/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{})
	logger.Debug("hidden")
	logger.Error("shown", "id", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "id=abc") {
		t.Errorf("missing error line: %q", out)
	}
	if !strings.Contains(out, logging.Prefix) {
		t.Errorf("missing prefix: %q", out)
	}

	buf.Reset()
	logging.New(&buf, logging.Options{Debug: true}).Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug line missing with Debug: %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, cleanup, err := logging.NewFile(path, logging.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Error("error fetching tasks", "err", "boom")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "error fetching tasks") {
		t.Errorf("log file missing line: %q", data)
	}
}

func TestNewFile_EmptyPath(t *testing.T) {
	if _, _, err := logging.NewFile("", logging.Options{}); err == nil {
		t.Fatal("expected error")
	}
}
