package screamsheet

import (
	"context"

	"github.com/pmartinson/go-screamsheet/internal/fileutil"
)

// Builder constructs a ready-to-generate sheet. Builders run inside the
// batch so a construction failure is isolated like any other entry
// fault.
type Builder func() (*Screamsheet, error)

// Entry is one unit of a batch run: a labelled sheet builder and the
// file the run expects it to produce.
type Entry struct {
	Label      string
	Build      Builder
	OutputPath string
}

// Phase names used in run log lines and entry results.
const (
	PhaseGenerate = "generate"
	PhasePrint    = "print"
)

// RunLogger records one timestamped line per entry per phase. The daily
// run log file is the batch's only durable record.
type RunLogger interface {
	OK(label, phase, detail string)
	Warning(label, phase, detail string)
	Error(label, phase, detail string)
}

// Printer submits one file to the print spooler and reports its exit
// status.
type Printer interface {
	Submit(ctx context.Context, path string) error
}

// State tracks a Runner through its linear run. There is no retry or
// backtracking state.
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateGenerationDone
	StatePrinting
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateGenerationDone:
		return "generation-done"
	case StatePrinting:
		return "printing"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// EntryResult is the captured outcome of one entry in one phase.
type EntryResult struct {
	Label string
	Phase string
	Err   error

	// Skipped marks a print attempt that found no file to print. That is
	// the expected consequence of an earlier generation failure, not an
	// error of its own.
	Skipped bool
}

// RunReport collects every entry result from one run.
type RunReport struct {
	Generated []EntryResult
	Printed   []EntryResult
}

// GenerateFailures counts failed generations.
func (r *RunReport) GenerateFailures() int {
	n := 0
	for _, res := range r.Generated {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// PrintFailures counts failed print submissions. Skips do not count.
func (r *RunReport) PrintFailures() int {
	n := 0
	for _, res := range r.Printed {
		if res.Err != nil && !res.Skipped {
			n++
		}
	}
	return n
}

// Runner drives a fixed roster of entries through one generate-then-
// print run. Entries are processed in their declared order in both
// phases; print submission order determines physical collation.
//
// Every step is isolated: a failed build, generation, or print
// submission is logged and captured, and the run continues. The Runner
// holds no state once Run returns.
type Runner struct {
	entries []Entry
	log     RunLogger
	printer Printer
	state   State

	// fileExists is swappable for tests.
	fileExists func(string) bool
}

// NewRunner creates a Runner. log must not be nil. A nil printer skips
// the print phase entirely (generation-only runs).
func NewRunner(entries []Entry, log RunLogger, printer Printer) *Runner {
	if log == nil {
		panic("screamsheet: NewRunner requires a RunLogger")
	}
	return &Runner{
		entries:    entries,
		log:        log,
		printer:    printer,
		state:      StateIdle,
		fileExists: fileutil.FileExists,
	}
}

// State reports where the Runner is in its linear run.
func (r *Runner) State() State { return r.state }

// Run executes both phases and returns the collected results. The print
// phase begins only after every generation attempt has completed.
func (r *Runner) Run(ctx context.Context) *RunReport {
	report := &RunReport{}

	r.state = StateGenerating
	for _, entry := range r.entries {
		report.Generated = append(report.Generated, r.generate(ctx, entry))
	}
	r.state = StateGenerationDone

	if r.printer != nil {
		r.state = StatePrinting
		for _, entry := range r.entries {
			report.Printed = append(report.Printed, r.print(ctx, entry))
		}
	}
	r.state = StateFinished

	return report
}

func (r *Runner) generate(ctx context.Context, entry Entry) EntryResult {
	result := EntryResult{Label: entry.Label, Phase: PhaseGenerate}

	sheet, err := entry.Build()
	if err != nil {
		result.Err = err
		r.log.Error(entry.Label, PhaseGenerate, "build: "+err.Error())
		return result
	}

	sheet.OnSectionFault(func(section string, ferr error) {
		r.log.Warning(entry.Label, PhaseGenerate, "section degraded: "+ferr.Error())
	})

	if err := sheet.Generate(ctx); err != nil {
		result.Err = err
		r.log.Error(entry.Label, PhaseGenerate, err.Error())
		return result
	}

	r.log.OK(entry.Label, PhaseGenerate, "wrote "+sheet.OutputPath())
	return result
}

func (r *Runner) print(ctx context.Context, entry Entry) EntryResult {
	result := EntryResult{Label: entry.Label, Phase: PhasePrint}

	if !r.fileExists(entry.OutputPath) {
		result.Err = ErrMissingArtifact
		result.Skipped = true
		r.log.Warning(entry.Label, PhasePrint, "skipped: "+entry.OutputPath+" not found")
		return result
	}

	if err := r.printer.Submit(ctx, entry.OutputPath); err != nil {
		result.Err = err
		r.log.Error(entry.Label, PhasePrint, err.Error())
		return result
	}

	r.log.OK(entry.Label, PhasePrint, "submitted "+entry.OutputPath)
	return result
}
