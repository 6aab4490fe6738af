package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestOpenNamesFileByDate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 8, 30, 6, 30, 2, 0, time.UTC)

	l, err := Open(dir, "screamsheet", fixedClock(now))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	want := filepath.Join(dir, "screamsheet_log_20260830.txt")
	if l.Path() != want {
		t.Errorf("Path() = %q, want %q", l.Path(), want)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs", "nested")
	l, err := Open(dir, "screamsheet", nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestLogLineFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 8, 30, 6, 30, 2, 0, time.UTC)

	l, err := Open(dir, "screamsheet", fixedClock(now))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	l.OK("MLB", "generate", "wrote out/MLB_Scream_Sheet_20260830.pdf")
	l.Warning("NHL", "print", "skipped: out/NHL_Scream_Sheet_20260830.pdf not found")
	l.Error("NBA", "generate", "document write failed")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{
		"2026-08-30 06:30:02 [OK] MLB generate: wrote out/MLB_Scream_Sheet_20260830.pdf",
		"2026-08-30 06:30:02 [WARNING] NHL print: skipped: out/NHL_Scream_Sheet_20260830.pdf not found",
		"2026-08-30 06:30:02 [ERROR] NBA generate: document write failed",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d:\n%s", len(lines), len(want), data)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReopenAppends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)

	first, err := Open(dir, "screamsheet", fixedClock(now))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	first.OK("MLB", "generate", "wrote a.pdf")
	first.Close()

	// A second run on the same day appends to the same file.
	second, err := Open(dir, "screamsheet", fixedClock(now.Add(2*time.Hour)))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	second.OK("MLB", "print", "submitted a.pdf")
	second.Close()

	data, err := os.ReadFile(first.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("line count = %d, want 2:\n%s", got, data)
	}
}
