package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Config holds every scalar input of a pipeline buckling analysis.
// Units are SI throughout: m, Pa, N, kg/m³, °C.
type Config struct {
	// Pressure pipe
	OuterDiameter float64 // D_p - outer diameter of the steel pipe (m)
	WallThickness float64 // t_p - steel wall thickness (m)
	SteelModulus  float64 // E_p - Young's modulus of steel (Pa)
	SteelDensity  float64 // rho_p (kg/m³)
	Alpha         float64 // alpha - thermal expansion coefficient (1/°C)
	Poisson       float64 // v - Poisson's ratio

	// Corrosion coating
	CoatingThickness float64 // t_c (m)
	CoatingDensity   float64 // rho_c (kg/m³)

	// Concrete weight coating
	ConcreteThickness float64 // t_conc (m)
	ConcreteDensity   float64 // rho_conc (kg/m³)
	ConcreteModulus   float64 // E_conc (Pa)
	CompositeCoeff    float64 // Coff - share of concrete stiffness acting with the steel

	// Outer mechanical layer
	MechanicalThickness float64 // t_m (m)
	MechanicalDensity   float64 // rho_m (kg/m³)

	// Environment and contents
	ContentDensity  float64 // rho_con (kg/m³)
	SeawaterDensity float64 // rho_w (kg/m³)
	AmbientTemp     float64 // T_a (°C)
	WaterDepth      float64 // h (m)
	DepthReference  float64 // h_ref (m)
	DesignPressure  float64 // P_d (Pa)

	// Installation and soil
	LayTension      float64 // N_lay - residual lay tension (N)
	AxialFriction   float64 // mu_a
	LateralFriction float64 // mu_l

	// Numerics
	Step      float64 // step - grid spacing along the route (m)
	ThickWall bool    // thick - use the thick-wall axial force formulation
}

// param binds an input file key to a Config field
type param struct {
	name     string
	required bool
	field    func(c *Config) *float64
}

var params = []param{
	{"D_p", true, func(c *Config) *float64 { return &c.OuterDiameter }},
	{"t_p", true, func(c *Config) *float64 { return &c.WallThickness }},
	{"E_p", true, func(c *Config) *float64 { return &c.SteelModulus }},
	{"rho_p", true, func(c *Config) *float64 { return &c.SteelDensity }},
	{"alpha", true, func(c *Config) *float64 { return &c.Alpha }},
	{"v", true, func(c *Config) *float64 { return &c.Poisson }},
	{"t_c", true, func(c *Config) *float64 { return &c.CoatingThickness }},
	{"rho_c", true, func(c *Config) *float64 { return &c.CoatingDensity }},
	{"t_conc", true, func(c *Config) *float64 { return &c.ConcreteThickness }},
	{"rho_conc", true, func(c *Config) *float64 { return &c.ConcreteDensity }},
	{"E_conc", true, func(c *Config) *float64 { return &c.ConcreteModulus }},
	{"Coff", true, func(c *Config) *float64 { return &c.CompositeCoeff }},
	{"t_m", true, func(c *Config) *float64 { return &c.MechanicalThickness }},
	{"rho_m", true, func(c *Config) *float64 { return &c.MechanicalDensity }},
	{"rho_con", true, func(c *Config) *float64 { return &c.ContentDensity }},
	{"rho_w", true, func(c *Config) *float64 { return &c.SeawaterDensity }},
	{"T_a", true, func(c *Config) *float64 { return &c.AmbientTemp }},
	{"h", true, func(c *Config) *float64 { return &c.WaterDepth }},
	{"h_ref", false, func(c *Config) *float64 { return &c.DepthReference }},
	{"P_d", true, func(c *Config) *float64 { return &c.DesignPressure }},
	{"N_lay", true, func(c *Config) *float64 { return &c.LayTension }},
	{"mu_a", true, func(c *Config) *float64 { return &c.AxialFriction }},
	{"mu_l", true, func(c *Config) *float64 { return &c.LateralFriction }},
	{"step", true, func(c *Config) *float64 { return &c.Step }},
}

// ThickWallKey is the input key of the formulation flag
const ThickWallKey = "thick"

// ParamNames returns the input keys understood by FromValues, in file order
func ParamNames() []string {
	names := make([]string, 0, len(params)+1)
	for _, p := range params {
		names = append(names, p.name)
	}
	return append(names, ThickWallKey)
}

// FromValues builds a validated Config from a flat name → value mapping as
// read from an input file. All missing required names are reported together.
func FromValues(values map[string]string) (*Config, error) {
	cfg := &Config{}

	var missing []string
	for _, p := range params {
		raw, ok := values[p.name]
		if !ok || strings.TrimSpace(raw) == "" {
			if p.required {
				missing = append(missing, p.name)
			}
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &ConfigurationError{Param: p.name, Msg: fmt.Sprintf("not a number: %q", raw)}
		}
		*p.field(cfg) = v
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &ConfigurationError{Msg: "input file is missing parameters: " + strings.Join(missing, ", ")}
	}

	if raw, ok := values[ThickWallKey]; ok && strings.TrimSpace(raw) != "" {
		thick, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ConfigurationError{Param: ThickWallKey, Msg: fmt.Sprintf("not a boolean: %q", raw)}
		}
		cfg.ThickWall = thick
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Values is the inverse of FromValues
func (c *Config) Values() map[string]string {
	values := make(map[string]string, len(params)+1)
	for _, p := range params {
		values[p.name] = strconv.FormatFloat(*p.field(c), 'g', -1, 64)
	}
	values[ThickWallKey] = strconv.FormatBool(c.ThickWall)
	return values
}

// Validate checks the ranges of every parameter
func (c *Config) Validate() error {
	for _, p := range params {
		v := *p.field(c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ConfigurationError{Param: p.name, Msg: "must be finite"}
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"D_p", c.OuterDiameter},
		{"t_p", c.WallThickness},
		{"E_p", c.SteelModulus},
		{"rho_p", c.SteelDensity},
		{"step", c.Step},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ConfigurationError{Param: p.name, Msg: fmt.Sprintf("must be positive, got %g", p.value)}
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"t_c", c.CoatingThickness},
		{"t_conc", c.ConcreteThickness},
		{"t_m", c.MechanicalThickness},
		{"rho_c", c.CoatingDensity},
		{"rho_conc", c.ConcreteDensity},
		{"rho_m", c.MechanicalDensity},
		{"rho_con", c.ContentDensity},
		{"rho_w", c.SeawaterDensity},
		{"E_conc", c.ConcreteModulus},
		{"alpha", c.Alpha},
		{"mu_a", c.AxialFriction},
		{"mu_l", c.LateralFriction},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return &ConfigurationError{Param: p.name, Msg: fmt.Sprintf("must not be negative, got %g", p.value)}
		}
	}

	// Steel annulus must not close up
	if 2*c.WallThickness >= c.OuterDiameter {
		return &ConfigurationError{
			Param: "t_p",
			Msg:   fmt.Sprintf("wall thickness %g m leaves no bore in a %g m pipe", c.WallThickness, c.OuterDiameter),
		}
	}
	if c.Poisson < 0 || c.Poisson >= 0.5 {
		return &ConfigurationError{Param: "v", Msg: fmt.Sprintf("must be in [0, 0.5), got %g", c.Poisson)}
	}
	if c.CompositeCoeff < 0 || c.CompositeCoeff > 1 {
		return &ConfigurationError{Param: "Coff", Msg: fmt.Sprintf("must be in [0, 1], got %g", c.CompositeCoeff)}
	}
	return nil
}
