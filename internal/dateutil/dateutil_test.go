package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	t.Parallel()

	got := Stamp(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC))
	if got != "20260830" {
		t.Errorf("Stamp = %q, want 20260830", got)
	}
}

func TestReportDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "mid-month",
			now:  time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC),
			want: "2026-08-30",
		},
		{
			name: "month boundary",
			now:  time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC),
			want: "2026-08-31",
		},
		{
			name: "year boundary",
			now:  time.Date(2026, 1, 1, 6, 30, 0, 0, time.UTC),
			want: "2025-12-31",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ReportDate(tt.now).Format(ISODate); got != tt.want {
				t.Errorf("ReportDate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseOverride(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 31, 6, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{
			name:  "empty falls back to yesterday",
			value: "",
			want:  "2026-08-30",
		},
		{
			name:  "explicit date",
			value: "2026-07-04",
			want:  "2026-07-04",
		},
		{
			name:    "wrong format",
			value:   "07/04/2026",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "nonsense",
			value:   "yesterday",
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseOverride(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(ISODate) != tt.want {
				t.Errorf("ParseOverride = %s, want %s", got.Format(ISODate), tt.want)
			}
		})
	}
}
