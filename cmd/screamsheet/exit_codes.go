package main

import (
	"errors"
	"os"

	screamsheet "github.com/pmartinson/go-screamsheet"
	"github.com/pmartinson/go-screamsheet/internal/config"
	"github.com/pmartinson/go-screamsheet/internal/dateutil"
)

// Exit codes follow Unix conventions: 0=success, 1=general, 2=usage.
// Entry-level failures inside a batch do not affect the exit code; the
// run log carries those.
const (
	ExitSuccess = 0 // Run completed (degraded entries included)
	ExitGeneral = 1 // Unexpected process-level error
	ExitUsage   = 2 // Invalid flags, config, or date override
	ExitIO      = 3 // Output or log directory unusable
)

// exitCodeFor maps a process-level error to an exit code. Callers must
// wrap causes with %w so errors.Is can see them.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrUnknownTeam) ||
		errors.Is(err, config.ErrUnknownFeed) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, screamsheet.ErrNoSections) {
		return ExitUsage
	}

	return ExitGeneral
}
