package screamsheet

import "errors"

// Sentinel errors for the generation and delivery pipeline.
var (
	// ErrDataUnavailable wraps any provider fetch or parse failure.
	// Sections recover it into a placeholder state; it never crosses a
	// sheet boundary.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrSectionRender indicates a section failed while producing its
	// fragments. Recovered at the sheet level with a placeholder.
	ErrSectionRender = errors.New("section render failed")

	// ErrDocumentWrite indicates a document-level fault (HTML assembly,
	// PDF rendering, or writing the output file). Fails the one sheet.
	ErrDocumentWrite = errors.New("document write failed")

	// ErrPrintSubmission indicates the print spooler rejected a job.
	ErrPrintSubmission = errors.New("print submission failed")

	// ErrMissingArtifact indicates an expected PDF was absent at print
	// time. Treated as a skip, not a failure.
	ErrMissingArtifact = errors.New("expected output file missing")

	// Sheet construction and lifecycle errors.
	ErrEmptyOutputPath   = errors.New("output path cannot be empty")
	ErrNoSections        = errors.New("sheet has no sections")
	ErrAlreadyGenerated  = errors.New("sheet already generated")
	ErrInvalidHeadingLvl = errors.New("heading level must be between 1 and 6")
)
