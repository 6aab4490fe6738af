package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	config  string
	noPrint bool
	date    string
	outDir  string
	verbose bool
	version bool
}

func newFlagSet(name string) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVarP(&flags.config, "config", "c", "", "config name or path (default: built-in defaults)")
	fs.BoolVar(&flags.noPrint, "no-print", false, "generate PDFs but skip print submission")
	fs.StringVar(&flags.date, "date", "", "report date override (YYYY-MM-DD, default: yesterday)")
	fs.StringVarP(&flags.outDir, "out-dir", "o", "", "output directory override")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: %s [flags]

Generates the daily screamsheet roster (MLB, NHL, NBA, news digest)
as single-page PDFs and submits each to the printer.

Flags:
%s`, name, fs.FlagUsages())
	}

	return fs, flags
}

func parseFlags(args []string) (*cliFlags, error) {
	fs, flags := newFlagSet(args[0])
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return flags, nil
}
