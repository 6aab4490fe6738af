package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		check   func(t *testing.T, got target)
	}{
		{
			name: "valid document",
			data: "name: mlb\ncount: 3\n",
			check: func(t *testing.T, got target) {
				if got.Name != "mlb" || got.Count != 3 {
					t.Errorf("got %+v", got)
				}
			},
		},
		{
			name: "unknown field tolerated",
			data: "name: mlb\nextra: true\n",
			check: func(t *testing.T, got target) {
				if got.Name != "mlb" {
					t.Errorf("got %+v", got)
				}
			},
		},
		{
			name:    "empty data",
			data:    "",
			wantErr: ErrNilData,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got target
			err := Unmarshal([]byte(tt.data), &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestUnmarshalNilDestination(t *testing.T) {
	t.Parallel()

	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalInputTooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	var got target
	if err := Unmarshal(big, &got); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		var got target
		if err := UnmarshalStrict([]byte("name: nhl\n"), &got); err != nil {
			t.Fatalf("UnmarshalStrict: %v", err)
		}
		if got.Name != "nhl" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var got target
		if err := UnmarshalStrict([]byte("name: nhl\ntypo: 1\n"), &got); err == nil {
			t.Error("expected error for unknown field")
		}
	})
}
