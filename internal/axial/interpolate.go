package axial

import (
	"gonum.org/v1/gonum/interp"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Interpolator evaluates the surveyed temperature at any position inside the
// survey. Positions outside it are rejected, never extrapolated.
type Interpolator struct {
	pl       interp.PiecewiseLinear
	min, max float64
}

// NewInterpolator fits a piecewise linear curve through the survey
func NewInterpolator(profile model.TemperatureProfile) (*Interpolator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	xs, ts := profile.Split()
	in := &Interpolator{min: xs[0], max: xs[len(xs)-1]}
	if err := in.pl.Fit(xs, ts); err != nil {
		return nil, &model.ConfigurationError{Param: "temperature profile", Msg: err.Error()}
	}
	return in, nil
}

// At returns the temperature at x. Both survey ends are inclusive.
func (in *Interpolator) At(x float64) (float64, error) {
	if !(x >= in.min && x <= in.max) {
		return 0, &model.InterpolationDomainError{Position: x, Min: in.min, Max: in.max}
	}
	return in.pl.Predict(x), nil
}

// Domain returns the first and last surveyed positions
func (in *Interpolator) Domain() (min, max float64) {
	return in.min, in.max
}
