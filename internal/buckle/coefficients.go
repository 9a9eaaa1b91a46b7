package buckle

import (
	"fmt"
	"math"
)

// Coefficients are the mode shape constants of the lateral buckling
// solution (Hobbs). K4 and K5 describe the buckle amplitude and moment and are
// carried for completeness.
type Coefficients struct {
	K1 float64
	K2 float64
	K3 float64
	K4 float64
	K5 float64
}

// ModeCount is the number of lateral buckling modes evaluated
const ModeCount = 4

// Modes holds the coefficients of modes 1 to 4, indexed by mode-1
var Modes = [ModeCount]Coefficients{
	{K1: 80.76, K2: 6.391e-5, K3: 0.5, K4: 2.407e-3, K5: 0.06938},
	{K1: 4 * math.Pi * math.Pi, K2: 1.743e-4, K3: 1, K4: 5.532e-3, K5: 0.1088},
	{K1: 34.06, K2: 1.668e-4, K3: 1.294, K4: 1.032e-2, K5: 0.1434},
	{K1: 28.20, K2: 2.144e-4, K3: 1.608, K4: 1.047e-2, K5: 0.1483},
}

// ModeCoefficients looks up the coefficients of a mode (1-based)
func ModeCoefficients(mode int) (Coefficients, error) {
	if mode < 1 || mode > ModeCount {
		return Coefficients{}, fmt.Errorf("buckle mode %d out of range 1..%d", mode, ModeCount)
	}
	return Modes[mode-1], nil
}
