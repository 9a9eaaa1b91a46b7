package axial

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

func TestInterpolatorAt(t *testing.T) {
	in, err := NewInterpolator(model.TemperatureProfile{{Position: 0, Temperature: 80}, {Position: 400, Temperature: 40}, {Position: 1000, Temperature: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		x    float64
		want float64
	}{
		{0, 80},
		{200, 60},
		{400, 40},
		{700, 25},
		{1000, 10},
	}
	for _, tt := range tests {
		got, err := in.At(tt.x)
		if err != nil {
			t.Fatalf("At(%v): %v", tt.x, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInterpolatorDomain(t *testing.T) {
	in, err := NewInterpolator(model.TemperatureProfile{{Position: 0, Temperature: 60}, {Position: 1000, Temperature: 60}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := in.At(1000); err != nil {
		t.Errorf("At(max) should succeed, got %v", err)
	}

	for _, x := range []float64{1001, -1, math.NaN()} {
		_, err := in.At(x)
		var domErr *model.InterpolationDomainError
		if !errors.As(err, &domErr) {
			t.Errorf("At(%v): got %v, want InterpolationDomainError", x, err)
			continue
		}
		if domErr.Min != 0 || domErr.Max != 1000 {
			t.Errorf("domain = [%v, %v], want [0, 1000]", domErr.Min, domErr.Max)
		}
	}
}

func TestNewInterpolatorRejectsBadSurvey(t *testing.T) {
	_, err := NewInterpolator(model.TemperatureProfile{{Position: 0, Temperature: 60}, {Position: 0, Temperature: 50}})
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("got %v, want ConfigurationError", err)
	}
}
