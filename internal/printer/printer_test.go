package printer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lp   LP
		want []string
	}{
		{
			name: "default queue, duplex long edge",
			lp:   LP{},
			want: []string{"-o", "sides=two-sided-long-edge", "report.pdf"},
		},
		{
			name: "named queue",
			lp:   LP{Printer: "office"},
			want: []string{"-o", "sides=two-sided-long-edge", "-d", "office", "report.pdf"},
		},
		{
			name: "custom sides",
			lp:   LP{Sides: "one-sided"},
			want: []string{"-o", "sides=one-sided", "report.pdf"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.lp.args("report.pdf"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("args = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var gotName string
		var gotArgs []string
		lp := &LP{
			Printer: "office",
			run: func(_ context.Context, name string, args ...string) ([]byte, error) {
				gotName = name
				gotArgs = args
				return []byte("request id is office-42"), nil
			},
		}
		if err := lp.Submit(context.Background(), "report.pdf"); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if gotName != "lp" {
			t.Errorf("command = %q, want lp", gotName)
		}
		want := []string{"-o", "sides=two-sided-long-edge", "-d", "office", "report.pdf"}
		if !reflect.DeepEqual(gotArgs, want) {
			t.Errorf("args = %v, want %v", gotArgs, want)
		}
	})

	t.Run("failure wraps ErrSubmission with output", func(t *testing.T) {
		t.Parallel()
		lp := &LP{
			run: func(context.Context, string, ...string) ([]byte, error) {
				return []byte("lp: The printer is not responding.\n"), errors.New("exit status 1")
			},
		}
		err := lp.Submit(context.Background(), "report.pdf")
		if !errors.Is(err, ErrSubmission) {
			t.Fatalf("error = %v, want ErrSubmission", err)
		}
		if !strings.Contains(err.Error(), "not responding") {
			t.Errorf("error missing lp output: %v", err)
		}
	})

	t.Run("failure without output falls back to exec error", func(t *testing.T) {
		t.Parallel()
		lp := &LP{
			run: func(context.Context, string, ...string) ([]byte, error) {
				return nil, errors.New("executable file not found")
			},
		}
		err := lp.Submit(context.Background(), "report.pdf")
		if err == nil || !strings.Contains(err.Error(), "executable file not found") {
			t.Errorf("error = %v, want exec detail", err)
		}
	})

	t.Run("command sees a deadline", func(t *testing.T) {
		t.Parallel()
		lp := &LP{
			Timeout: 5 * time.Second,
			run: func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Error("context has no deadline")
				}
				return nil, nil
			},
		}
		if err := lp.Submit(context.Background(), "report.pdf"); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	})
}
