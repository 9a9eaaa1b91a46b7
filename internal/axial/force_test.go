package axial

import (
	"math"
	"testing"
)

func testSection() Section {
	return Section{
		LayTension:    1e5,
		Pressure:      15902211.8,
		BoreArea:      math.Pi / 4 * 0.2806 * 0.2806,
		SteelArea:     0.02010041245249207,
		InnerDiameter: 0.2806,
		WallThickness: 0.0212,
		Poisson:       0.3,
		Alpha:         1.17e-5,
		Modulus:       2.07e11,
	}
}

func TestEffectiveForce(t *testing.T) {
	thin := testSection()
	thick := testSection()
	thick.ThickWall = true

	tests := []struct {
		name    string
		section Section
		deltaT  float64
		want    float64
	}{
		{"thin wall", thin, 56, -3019499.826526813},
		{"thick wall", thick, 56, -3022867.813376238},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.section.EffectiveForce(tt.deltaT)
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("F_eff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveForceDecreasesWithTemperature(t *testing.T) {
	s := testSection()
	prev := math.Inf(1)
	for dT := -20.0; dT <= 100; dT += 5 {
		f := s.EffectiveForce(dT)
		if f >= prev {
			t.Fatalf("F_eff not decreasing at dT=%v: %v >= %v", dT, f, prev)
		}
		prev = f
	}
}

func TestFrictionEnvelope(t *testing.T) {
	f := Friction{Coefficient: 0.5, SubmergedWeight: 2000, Length: 1000}

	// Hot end anchor governs at x=0, cold end at x=L
	if f.Limit(0) != f.Hot(0) || f.Cold(0) >= f.Hot(0) {
		t.Errorf("at x=0: hot %v cold %v limit %v", f.Hot(0), f.Cold(0), f.Limit(0))
	}
	if f.Limit(1000) != f.Cold(1000) || f.Hot(1000) >= f.Cold(1000) {
		t.Errorf("at x=L: hot %v cold %v limit %v", f.Hot(1000), f.Cold(1000), f.Limit(1000))
	}

	// Symmetric crossover at mid route
	if math.Abs(f.Hot(500)-f.Cold(500)) > 1e-9 {
		t.Errorf("crossover: hot %v != cold %v at L/2", f.Hot(500), f.Cold(500))
	}
	if want := -0.5 * 2000 * 500; math.Abs(f.Limit(500)-want) > 1e-9 {
		t.Errorf("peak friction force = %v, want %v", f.Limit(500), want)
	}
	for _, x := range []float64{100, 499} {
		if f.Limit(x) != f.Hot(x) {
			t.Errorf("x=%v should be governed by the hot end", x)
		}
	}
	for _, x := range []float64{501, 900} {
		if f.Limit(x) != f.Cold(x) {
			t.Errorf("x=%v should be governed by the cold end", x)
		}
	}
}
