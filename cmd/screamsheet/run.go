package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	screamsheet "github.com/pmartinson/go-screamsheet"
	"github.com/pmartinson/go-screamsheet/internal/config"
	"github.com/pmartinson/go-screamsheet/internal/dateutil"
	"github.com/pmartinson/go-screamsheet/internal/printer"
	"github.com/pmartinson/go-screamsheet/internal/runlog"
)

// newLogger builds the stderr diagnostics logger. The run log file is
// the durable record; this logger only narrates the run for an
// operator watching the terminal.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// run executes one batch: load config, build the roster, generate
// every sheet, then print. Entry failures are recorded in the run log
// and the report; only process-level faults return an error.
func run(flags *cliFlags, log *zap.SugaredLogger) error {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}

	now := time.Now()
	reportDate := dateutil.ReportDate(now)
	if flags.date != "" {
		reportDate, err = dateutil.ParseOverride(flags.date, now)
		if err != nil {
			return err
		}
	}

	outDir := cfg.Output.Dir
	if flags.outDir != "" {
		outDir = flags.outDir
	}
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := buildRoster(cfg, reportDate, outDir)
	if err != nil {
		return err
	}

	runLog, err := runlog.Open(cfg.Log.Dir, cfg.Log.Prefix, time.Now)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer runLog.Close()
	log.Debugf("run log: %s", runLog.Path())

	var lp screamsheet.Printer
	if cfg.Print.Enabled && !flags.noPrint {
		lp = printer.New(cfg.Print.Printer, cfg.Timeouts.Print())
	} else {
		log.Infof("print phase disabled")
	}

	log.Infof("report date %s, %d entries", reportDate.Format("2006-01-02"), len(entries))
	report := screamsheet.NewRunner(entries, runLog, lp).Run(context.Background())

	summarize(report, log)
	return nil
}

func summarize(report *screamsheet.RunReport, log *zap.SugaredLogger) {
	generated := len(report.Generated) - report.GenerateFailures()
	log.Infof("generated %d/%d sheets", generated, len(report.Generated))

	for _, res := range report.Generated {
		if res.Err != nil {
			log.Warnf("%s %s failed: %v", res.Label, res.Phase, res.Err)
		}
	}
	for _, res := range report.Printed {
		switch {
		case res.Skipped:
			log.Warnf("%s print skipped: no file", res.Label)
		case res.Err != nil:
			log.Warnf("%s %s failed: %v", res.Label, res.Phase, res.Err)
		}
	}
	if len(report.Printed) > 0 {
		printed := 0
		for _, res := range report.Printed {
			if res.Err == nil {
				printed++
			}
		}
		log.Infof("submitted %d/%d sheets to printer", printed, len(report.Printed))
	}
}
