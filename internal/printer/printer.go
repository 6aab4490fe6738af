// Package printer submits finished PDFs to the system print spooler via
// lp(1). The spooler itself is an external collaborator; all this
// package reads back is the command's exit status.
package printer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	screamsheet "github.com/pmartinson/go-screamsheet"
)

// ErrSubmission indicates lp rejected the job or could not be run. It
// is the same sentinel batch reports surface, so callers check one
// error either way.
var ErrSubmission = screamsheet.ErrPrintSubmission

// SidesDuplexLongEdge is the CUPS option for double-sided long-edge
// binding, the house style for screamsheets.
const SidesDuplexLongEdge = "two-sided-long-edge"

// DefaultTimeout bounds one lp invocation.
const DefaultTimeout = 60 * time.Second

// runCommand executes the assembled command and returns its combined
// output. Swappable for tests.
type runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)

// LP submits files with lp(1).
type LP struct {
	// Printer selects a destination queue (-d). Empty uses the system
	// default.
	Printer string
	// Sides is the duplex mode; empty falls back to SidesDuplexLongEdge.
	Sides string
	// Timeout bounds one submission; zero falls back to DefaultTimeout.
	Timeout time.Duration

	run runCommand
}

// New creates an LP submitter for the given queue (empty = default).
func New(printerName string, timeout time.Duration) *LP {
	return &LP{Printer: printerName, Timeout: timeout}
}

// Submit hands one file to lp with duplex configuration and returns an
// error wrapping ErrSubmission when the command fails.
func (p *LP) Submit(ctx context.Context, path string) error {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := p.run
	if run == nil {
		run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		}
	}

	out, err := run(ctx, "lp", p.args(path)...)
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: %s: %s", ErrSubmission, path, detail)
	}
	return nil
}

// args assembles the lp argument list for one file.
func (p *LP) args(path string) []string {
	sides := p.Sides
	if sides == "" {
		sides = SidesDuplexLongEdge
	}
	args := []string{"-o", "sides=" + sides}
	if p.Printer != "" {
		args = append(args, "-d", p.Printer)
	}
	return append(args, path)
}
