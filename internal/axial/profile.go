// Package axial builds the effective axial force profile along a pipeline
// route: restrained force, friction envelope and their resultant.
package axial

import (
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Inputs gathers everything needed to evaluate the profile
type Inputs struct {
	Section         Section
	AmbientTemp     float64 // T_a (°C)
	AxialFriction   float64 // mu_a
	SubmergedWeight float64 // W_s (N/m)
	Step            float64 // grid spacing (m)
}

// Profile evaluates the axial force at every grid position of the route. The
// route length is the last surveyed position. Buckle columns are left zero.
func Profile(temps model.TemperatureProfile, in Inputs) (model.ResultProfile, error) {
	interpolator, err := NewInterpolator(temps)
	if err != nil {
		return nil, err
	}

	length := temps.RouteLength()
	xs, err := Grid(length, in.Step)
	if err != nil {
		return nil, err
	}

	friction := Friction{
		Coefficient:     in.AxialFriction,
		SubmergedWeight: in.SubmergedWeight,
		Length:          length,
	}

	result := make(model.ResultProfile, len(xs))
	for i, x := range xs {
		t, err := interpolator.At(x)
		if err != nil {
			return nil, err
		}

		p := model.Point{
			X:      x,
			T:      t,
			DeltaT: t - in.AmbientTemp,
			FfH:    friction.Hot(x),
			FfC:    friction.Cold(x),
		}
		p.FEff = in.Section.EffectiveForce(p.DeltaT)
		p.Ff = max(p.FfH, p.FfC)
		p.FRes = max(p.FEff, p.Ff)

		result[i] = p
	}

	return result, nil
}
