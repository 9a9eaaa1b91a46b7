// Package analysis runs the complete lateral buckling assessment of a
// pipeline route: section properties, axial force profile and buckle
// initiation force.
package analysis

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/pipebuckle/internal/axial"
	"github.com/alexiusacademia/pipebuckle/internal/buckle"
	"github.com/alexiusacademia/pipebuckle/internal/geometry"
	"github.com/alexiusacademia/pipebuckle/internal/log"
	"github.com/alexiusacademia/pipebuckle/internal/mechanics"
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Options tune a run. The zero value is ready to use.
type Options struct {
	Minimizer buckle.Minimizer   // defaults to buckle.NelderMead{}
	Logger    *zap.SugaredLogger // defaults to the application logger
}

// Result holds everything a run produces
type Result struct {
	CrossSection     *geometry.CrossSection
	SubmergedWeight  float64 // N/m
	BendingStiffness float64 // N·m²
	InternalPressure float64 // Pa

	Buckle    buckle.Params
	Modes     []model.ModeResult
	Governing model.ModeResult

	Profile model.ResultProfile
	Summary model.Summary
}

// Run analyses a pipeline. Every call is independent; identical inputs give
// identical results.
func Run(cfg *model.Config, temps model.TemperatureProfile, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := temps.Validate(); err != nil {
		return nil, err
	}

	minimizer := opts.Minimizer
	if minimizer == nil {
		minimizer = buckle.NelderMead{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Sugared()
	}

	res, err := Prepare(cfg)
	if err != nil {
		return nil, err
	}
	cs := res.CrossSection

	logger.Debugw("section properties",
		"submerged_weight_N_per_m", res.SubmergedWeight,
		"bending_stiffness_Nm2", res.BendingStiffness,
		"internal_pressure_Pa", res.InternalPressure,
	)

	// Force calculations
	profile, err := axial.Profile(temps, axial.Inputs{
		Section: axial.Section{
			LayTension:    cfg.LayTension,
			Pressure:      res.InternalPressure,
			BoreArea:      cs.BoreArea(),
			SteelArea:     cs.Pipe.Area,
			InnerDiameter: cs.InnerDiameter(),
			WallThickness: cfg.WallThickness,
			Poisson:       cfg.Poisson,
			Alpha:         cfg.Alpha,
			Modulus:       cfg.SteelModulus,
			ThickWall:     cfg.ThickWall,
		},
		AmbientTemp:     cfg.AmbientTemp,
		AxialFriction:   cfg.AxialFriction,
		SubmergedWeight: res.SubmergedWeight,
		Step:            cfg.Step,
	})
	if err != nil {
		return nil, err
	}

	// Lateral buckling
	modes, governing, err := buckle.Solve(res.Buckle, minimizer)
	for _, m := range modes {
		if m.Valid() {
			logger.Debugw("buckle mode", "mode", m.Mode, "length_m", m.Length, "force_N", m.Force)
		} else {
			logger.Debugw("buckle mode excluded", "mode", m.Mode, "error", m.Err)
		}
	}
	if err != nil {
		return nil, err
	}
	res.Modes = modes
	res.Governing = governing

	for i := range profile {
		profile[i].FB = governing.Force
		profile[i].FActual = max(profile[i].FRes, governing.Force)
	}
	res.Profile = profile

	res.Summary = Summarize(profile, governing)
	return res, nil
}

// Prepare computes the section properties and the buckle parameters of cfg,
// everything that does not depend on the temperature survey
func Prepare(cfg *model.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs, err := geometry.NewCrossSection(cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{CrossSection: cs}
	res.SubmergedWeight = mechanics.SubmergedWeight(cs.Masses(), cs.OuterArea, cfg.SeawaterDensity)
	res.BendingStiffness = mechanics.BendingStiffness(cfg.SteelModulus, cs.Pipe.I, cfg.CompositeCoeff, cfg.ConcreteModulus, cs.Concrete.I)
	res.InternalPressure = mechanics.LocalInternalPressure(cfg.DesignPressure, cfg.ContentDensity, cfg.WaterDepth, cfg.DepthReference)

	res.Buckle = buckle.Params{
		EI:              res.BendingStiffness,
		SubmergedWeight: res.SubmergedWeight,
		SteelArea:       cs.Pipe.Area,
		Modulus:         cfg.SteelModulus,
		LateralFriction: cfg.LateralFriction,
		AxialFriction:   cfg.AxialFriction,
	}
	return res, nil
}

// Summarize reduces a completed profile to the reported scalars
func Summarize(profile model.ResultProfile, governing model.ModeResult) model.Summary {
	s := model.Summary{
		BuckleForce:   governing.Force,
		GoverningMode: governing.Mode,
	}
	if len(profile) == 0 {
		return s
	}
	s.MinEffective = floats.Min(profile.Column("F_eff"))
	s.MinResultant = floats.Min(profile.Column("F_res"))
	s.Susceptible = Susceptible(s.MinResultant, s.BuckleForce)
	return s
}

// Susceptible reports whether the resultant force is more compressive than
// the buckle initiation force.
func Susceptible(minResultant, buckleForce float64) bool {
	return minResultant < buckleForce
}
