package axial

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		step   float64
		wantN  int
		wantDx float64
	}{
		{"exact division", 1000, 10, 101, 10},
		{"step equals length", 1000, 1000, 2, 1000},
		{"remainder spreads", 1005, 10, 101, 10.05},
		{"fine step", 50, 0.5, 101, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, err := Grid(tt.length, tt.step)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(xs) != tt.wantN {
				t.Fatalf("len = %d, want %d", len(xs), tt.wantN)
			}
			if xs[0] != 0 || xs[len(xs)-1] != tt.length {
				t.Errorf("ends = %v, %v; want 0, %v", xs[0], xs[len(xs)-1], tt.length)
			}
			for i := 1; i < len(xs); i++ {
				if math.Abs(xs[i]-xs[i-1]-tt.wantDx) > 1e-9 {
					t.Fatalf("spacing at %d = %v, want %v", i, xs[i]-xs[i-1], tt.wantDx)
				}
			}
		})
	}
}

func TestGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		step   float64
	}{
		{"zero step", 1000, 0},
		{"negative step", 1000, -1},
		{"step beyond route", 100, 150},
		{"zero length", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grid(tt.length, tt.step)
			var cfgErr *model.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("got %v, want ConfigurationError", err)
			}
		})
	}
}
