package buckle

import "math"

// Params are the pipe properties shared by every mode
type Params struct {
	EI              float64 // bending stiffness (N·m²)
	SubmergedWeight float64 // W_s (N/m)
	SteelArea       float64 // A_p (m²)
	Modulus         float64 // E_p (Pa)
	LateralFriction float64 // mu_l
	AxialFriction   float64 // mu_a
}

// radicand is the expression under the square root of the force function
func (p Params) radicand(k Coefficients, length float64) float64 {
	return 1 + k.K2*p.SteelArea*p.Modulus*p.LateralFriction*p.LateralFriction*
		p.SubmergedWeight*math.Pow(length, 5)/(p.AxialFriction*p.EI*p.EI)
}

// Force returns the magnitude of the axial force needed to hold a buckle of
// the given length in the mode described by k. The result is NaN where the
// radicand is negative.
func (p Params) Force(k Coefficients, length float64) float64 {
	term1 := k.K1 * p.EI / (length * length)
	term2 := k.K3 * p.AxialFriction * p.SubmergedWeight * length
	term3 := math.Sqrt(p.radicand(k, length)) - 1

	return term1 + term2*term3
}

// Curve evaluates Force for mode at each length, for plotting
func (p Params) Curve(mode int, lengths []float64) ([]float64, error) {
	k, err := ModeCoefficients(mode)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(lengths))
	for i, l := range lengths {
		out[i] = p.Force(k, l)
	}
	return out, nil
}

// objective is Force restricted to the valid domain; everything else maps to
// +Inf so that the search stays inside it.
func (p Params) objective(k Coefficients) func(float64) float64 {
	return func(length float64) float64 {
		if !(length > 0) {
			return math.Inf(1)
		}
		if r := p.radicand(k, length); !(r >= 0) {
			return math.Inf(1)
		}
		f := p.Force(k, length)
		if math.IsNaN(f) {
			return math.Inf(1)
		}
		return f
	}
}
