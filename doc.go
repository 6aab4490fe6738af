// Package screamsheet generates single-page PDF reports ("screamsheets")
// from external data sources and drives their delivery to a printer.
//
// # Quick Start
//
// Wire sections to providers, compose a sheet, and generate:
//
//	sheet := screamsheet.New("MLB Screamsheet", "out/MLB_20250818.pdf", reportDate,
//	    []screamsheet.Section{
//	        screamsheet.NewScoresSection("MLB Game Scores", mlbClient, reportDate),
//	        screamsheet.NewStandingsSection("MLB Standings", mlbClient),
//	    },
//	)
//	if err := sheet.Generate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Each sheet runs the same sequence:
//
//  1. Every section fetches its data from its provider. A fetch failure
//     degrades that one section to a placeholder; it never fails the sheet.
//  2. Sections render to Fragments (headings, tables, paragraphs).
//  3. Fragments are assembled into one HTML document and rendered to PDF
//     via headless Chrome (go-rod).
//  4. The PDF is written atomically to the sheet's output path.
//
// # Batch Runs
//
// Runner executes a fixed roster of sheets end to end: all generations
// first, then all print submissions, each step isolated and recorded in
// an append-only daily run log. A failed entry never stops the batch.
//
//	runner := screamsheet.NewRunner(entries, runLog, printer)
//	report := runner.Run(ctx)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run (~/.cache/rod/browser/). Set
// ROD_NO_SANDBOX=1 in containers and ROD_BROWSER_BIN for a custom binary.
package screamsheet
