package geometry

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// LayerDiameter steps across a layer of thickness t from diameter d.
// With inner set it returns the diameter inside the layer, otherwise the
// diameter outside it.
func LayerDiameter(d, t float64, inner bool) float64 {
	if inner {
		return d - 2*t
	}
	return d + 2*t
}

// Area returns the cross-sectional area of an annulus (m²)
func Area(dOuter, dInner float64) (float64, error) {
	if err := checkAnnulus(dOuter, dInner); err != nil {
		return 0, err
	}
	return math.Pi / 4 * (dOuter*dOuter - dInner*dInner), nil
}

// SecondMomentOfArea returns the second moment of area of an annulus (m⁴)
func SecondMomentOfArea(dOuter, dInner float64) (float64, error) {
	if err := checkAnnulus(dOuter, dInner); err != nil {
		return 0, err
	}
	return math.Pi / 64 * (math.Pow(dOuter, 4) - math.Pow(dInner, 4)), nil
}

func checkAnnulus(dOuter, dInner float64) error {
	if dInner < 0 {
		return &model.ConfigurationError{Param: "diameter", Msg: fmt.Sprintf("inner diameter %g m is negative", dInner)}
	}
	if dOuter < dInner {
		return &model.ConfigurationError{
			Param: "diameter",
			Msg:   fmt.Sprintf("outer diameter %g m is smaller than inner diameter %g m", dOuter, dInner),
		}
	}
	return nil
}
