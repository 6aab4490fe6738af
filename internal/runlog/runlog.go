// Package runlog maintains the batch run's durable record: one
// append-only text file per calendar day, one timestamped line per
// entry per phase.
//
// Line format:
//
//	2025-08-18 06:30:02 [OK] MLB generate: wrote out/MLB_20250818.pdf
//	2025-08-18 06:30:41 [ERROR] NHL generate: document write failed: ...
//	2025-08-18 06:31:05 [WARNING] NHL print: skipped: out/NHL_20250818.pdf not found
//
// Execution is single-threaded and single-process, so appends need no
// locking.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Tags for log lines.
const (
	TagOK      = "OK"
	TagWarning = "WARNING"
	TagError   = "ERROR"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o644

	timestampLayout = "2006-01-02 15:04:05"
	dateStamp       = "20060102"
)

// Log appends run records to the day's log file. The file's identity is
// the run's calendar date: multiple runs on the same day share a file.
type Log struct {
	f   *os.File
	now func() time.Time
}

// Open opens (creating if needed) the log file for now()'s date, named
// <prefix>_log_<YYYYMMDD>.txt under dir. The directory is created when
// absent.
func Open(dir, prefix string, now func() time.Time) (*Log, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	name := fmt.Sprintf("%s_log_%s.txt", prefix, now().Format(dateStamp))
	path := filepath.Join(dir, name)
	// #nosec G304 -- path is assembled from operator config
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &Log{f: f, now: now}, nil
}

// Path returns the open log file's path.
func (l *Log) Path() string { return l.f.Name() }

// OK records a successful step.
func (l *Log) OK(label, phase, detail string) { l.write(TagOK, label, phase, detail) }

// Warning records a degraded or skipped step.
func (l *Log) Warning(label, phase, detail string) { l.write(TagWarning, label, phase, detail) }

// Error records a failed step.
func (l *Log) Error(label, phase, detail string) { l.write(TagError, label, phase, detail) }

func (l *Log) write(tag, label, phase, detail string) {
	// A lost log line must not take down the run; the line is the
	// record of a failure, not the failure itself.
	fmt.Fprintf(l.f, "%s [%s] %s %s: %s\n", l.now().Format(timestampLayout), tag, label, phase, detail)
}

// Close closes the underlying file.
func (l *Log) Close() error { return l.f.Close() }
