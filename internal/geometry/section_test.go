package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

func testConfig() *model.Config {
	return &model.Config{
		OuterDiameter:       0.3230,
		WallThickness:       0.0212,
		SteelDensity:        7850,
		CoatingThickness:    0.003,
		CoatingDensity:      900,
		ConcreteThickness:   0.05,
		ConcreteDensity:     3050,
		MechanicalThickness: 0.002,
		MechanicalDensity:   950,
		ContentDensity:      800,
	}
}

func TestNewCrossSection(t *testing.T) {
	cs, err := NewCrossSection(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cs.InnerDiameter(); math.Abs(got-0.2806) > 1e-12 {
		t.Errorf("inner diameter = %v, want 0.2806", got)
	}
	if got := cs.Coating.Outer; math.Abs(got-0.329) > 1e-12 {
		t.Errorf("coating OD = %v, want 0.329", got)
	}
	if got := cs.Concrete.Outer; math.Abs(got-0.429) > 1e-12 {
		t.Errorf("concrete OD = %v, want 0.429", got)
	}
	if got := cs.OverallDiameter(); math.Abs(got-0.433) > 1e-12 {
		t.Errorf("overall OD = %v, want 0.433", got)
	}

	// Layers tile the outer circle exactly
	var sum float64
	for _, l := range cs.Masses() {
		sum += l.Area
	}
	if math.Abs(sum-cs.OuterArea) > 1e-12 {
		t.Errorf("sum of layer areas %v != outer area %v", sum, cs.OuterArea)
	}

	// Each ring starts where the previous one ends
	layers := cs.Masses()
	for i := 1; i < len(layers); i++ {
		if layers[i].Inner != layers[i-1].Outer {
			t.Errorf("%s inner %v != %s outer %v", layers[i].Name, layers[i].Inner, layers[i-1].Name, layers[i-1].Outer)
		}
	}
}

func TestNewCrossSectionZeroLayers(t *testing.T) {
	cfg := testConfig()
	cfg.ConcreteThickness = 0
	cfg.MechanicalThickness = 0

	cs, err := NewCrossSection(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Concrete.Area != 0 || cs.Concrete.I != 0 {
		t.Errorf("absent concrete layer has A=%v I=%v", cs.Concrete.Area, cs.Concrete.I)
	}
}

func TestNewCrossSectionRejectsNegativeThickness(t *testing.T) {
	cfg := testConfig()
	cfg.CoatingThickness = -0.001

	_, err := NewCrossSection(cfg)
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if cfgErr.Param != "t_c" {
		t.Errorf("param = %q, want t_c", cfgErr.Param)
	}
}

func TestNewCrossSectionRejectsClosedBore(t *testing.T) {
	cfg := testConfig()
	cfg.WallThickness = 0.2

	_, err := NewCrossSection(cfg)
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
}
