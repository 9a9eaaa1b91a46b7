package geometry

import (
	"fmt"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Layer is one concentric ring of the pipe cross-section
type Layer struct {
	Name    string
	Inner   float64 // inner diameter (m)
	Outer   float64 // outer diameter (m)
	Area    float64 // m²
	I       float64 // second moment of area (m⁴)
	Density float64 // kg/m³
}

// CrossSection is the full layer stack, built outward from the steel pipe
type CrossSection struct {
	Bore       Layer // pipe contents, Inner = 0
	Pipe       Layer
	Coating    Layer
	Concrete   Layer
	Mechanical Layer

	// Area enclosed by the outermost surface, used for buoyancy (m²)
	OuterArea float64
}

// NewCrossSection derives every layer from the configured diameters and
// thicknesses
func NewCrossSection(cfg *model.Config) (*CrossSection, error) {
	thicknesses := []struct {
		name  string
		value float64
	}{
		{"t_p", cfg.WallThickness},
		{"t_c", cfg.CoatingThickness},
		{"t_conc", cfg.ConcreteThickness},
		{"t_m", cfg.MechanicalThickness},
	}
	for _, t := range thicknesses {
		if t.value < 0 {
			return nil, &model.ConfigurationError{Param: t.name, Msg: fmt.Sprintf("must not be negative, got %g", t.value)}
		}
	}

	dI := LayerDiameter(cfg.OuterDiameter, cfg.WallThickness, true)
	dC := LayerDiameter(cfg.OuterDiameter, cfg.CoatingThickness, false)
	dConc := LayerDiameter(dC, cfg.ConcreteThickness, false)
	dM := LayerDiameter(dConc, cfg.MechanicalThickness, false)

	cs := &CrossSection{}
	var err error

	if cs.Bore, err = newLayer("bore", dI, 0, cfg.ContentDensity); err != nil {
		return nil, err
	}
	if cs.Pipe, err = newLayer("pipe", cfg.OuterDiameter, dI, cfg.SteelDensity); err != nil {
		return nil, err
	}
	if cs.Coating, err = newLayer("coating", dC, cfg.OuterDiameter, cfg.CoatingDensity); err != nil {
		return nil, err
	}
	if cs.Concrete, err = newLayer("concrete", dConc, dC, cfg.ConcreteDensity); err != nil {
		return nil, err
	}
	if cs.Mechanical, err = newLayer("mechanical", dM, dConc, cfg.MechanicalDensity); err != nil {
		return nil, err
	}
	if cs.OuterArea, err = Area(dM, 0); err != nil {
		return nil, err
	}

	return cs, nil
}

func newLayer(name string, outer, inner, density float64) (Layer, error) {
	a, err := Area(outer, inner)
	if err != nil {
		return Layer{}, fmt.Errorf("%s layer: %w", name, err)
	}
	i, err := SecondMomentOfArea(outer, inner)
	if err != nil {
		return Layer{}, fmt.Errorf("%s layer: %w", name, err)
	}
	return Layer{Name: name, Inner: inner, Outer: outer, Area: a, I: i, Density: density}, nil
}

// Masses returns the layers that contribute to the unit weight, contents
// included
func (cs *CrossSection) Masses() []Layer {
	return []Layer{cs.Bore, cs.Pipe, cs.Coating, cs.Concrete, cs.Mechanical}
}

// InnerDiameter of the steel pipe (m)
func (cs *CrossSection) InnerDiameter() float64 {
	return cs.Pipe.Inner
}

// BoreArea is the internal flow area (m²)
func (cs *CrossSection) BoreArea() float64 {
	return cs.Bore.Area
}

// OverallDiameter is the outside diameter of the mechanical layer (m)
func (cs *CrossSection) OverallDiameter() float64 {
	return cs.Mechanical.Outer
}
