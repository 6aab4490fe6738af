package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *cliFlags)
	}{
		{
			name: "defaults",
			args: []string{"screamsheet"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "" || f.noPrint || f.date != "" || f.outDir != "" || f.verbose || f.version {
					t.Errorf("defaults = %+v", f)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"screamsheet", "--config", "office", "--no-print", "--date", "2026-07-04", "--out-dir", "/tmp/reports", "--verbose"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "office" || !f.noPrint || f.date != "2026-07-04" || f.outDir != "/tmp/reports" || !f.verbose {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"screamsheet", "-c", "office", "-o", "/tmp/reports", "-v"},
			check: func(t *testing.T, f *cliFlags) {
				if f.config != "office" || f.outDir != "/tmp/reports" || !f.verbose {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name: "version",
			args: []string{"screamsheet", "--version"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.version {
					t.Errorf("flags = %+v", f)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"screamsheet", "--bogus"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
