package axial

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Grid returns floor(length/step)+1 evenly spaced positions from 0 to length
// inclusive.
func Grid(length, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, &model.ConfigurationError{Param: "step", Msg: fmt.Sprintf("must be positive, got %g", step)}
	}
	if length <= 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return nil, &model.ConfigurationError{Param: "temperature profile", Msg: fmt.Sprintf("route length must be positive, got %g", length)}
	}
	if step > length {
		return nil, &model.ConfigurationError{Param: "step", Msg: fmt.Sprintf("step %g m exceeds route length %g m", step, length)}
	}

	n := int(math.Floor(length/step)) + 1
	dx := length / float64(n-1)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * dx
	}
	xs[n-1] = length

	return xs, nil
}
