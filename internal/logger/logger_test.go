package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesMemoryFileAndEcho(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "showcase.txt")
	var echo bytes.Buffer
	l := New(path, &echo)
	l.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

	l.Logf("Active index: %d", 2)

	want := "[2024-01-01 12:00:00] Active index: 2"
	lines := l.Lines()
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("Lines() = %q, want [%q]", lines, want)
	}
	if got := strings.TrimSpace(echo.String()); got != want {
		t.Errorf("echo = %q, want %q", got, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"), nil)
	l.Log("a")
	lines := l.Lines()
	lines[0] = "mutated"
	if l.Lines()[0] == "mutated" {
		t.Fatal("Lines must return a copy")
	}
}

func TestNewDefaultsPath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	l := New("", nil)
	if l.Path() != DefaultPath {
		t.Fatalf("Path() = %q, want %q", l.Path(), DefaultPath)
	}
	if _, err := os.Stat(filepath.Dir(DefaultPath)); err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
}
