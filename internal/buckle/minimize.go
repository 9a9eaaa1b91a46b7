package buckle

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Minimizer finds a local minimum of a scalar function from an initial guess.
// Implementations must be safe for concurrent use.
type Minimizer interface {
	Minimize(f func(float64) float64, x0 float64) (x float64, converged bool)
}

// MinimizerFunc adapts a plain function to Minimizer
type MinimizerFunc func(f func(float64) float64, x0 float64) (float64, bool)

// Minimize calls fn
func (fn MinimizerFunc) Minimize(f func(float64) float64, x0 float64) (float64, bool) {
	return fn(f, x0)
}

// NelderMead minimizes with gonum's Nelder-Mead simplex method
type NelderMead struct {
	MaxIterations int     // major iteration cap, 0 for the default
	Tolerance     float64 // relative function tolerance, 0 for the default
}

const (
	defaultMaxIterations = 1000
	defaultTolerance     = 1e-12
	stallIterations      = 50
)

// Minimize implements Minimizer
func (nm NelderMead) Minimize(f func(float64) float64, x0 float64) (float64, bool) {
	maxIter := nm.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	tol := nm.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return f(x[0]) },
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-9,
			Relative:   tol,
			Iterations: stallIterations,
		},
	}

	// Initial simplex spans a tenth of the starting guess
	size := 0.1 * math.Abs(x0)
	if size == 0 {
		size = 0.1
	}
	method := &optimize.NelderMead{SimplexSize: size}

	result, err := optimize.Minimize(problem, []float64{x0}, settings, method)
	if result == nil || len(result.X) == 0 {
		return x0, false
	}
	x := result.X[0]
	if err != nil {
		return x, false
	}

	switch result.Status {
	case optimize.Success, optimize.FunctionConvergence, optimize.MethodConverge,
		optimize.StepConvergence, optimize.GradientThreshold, optimize.FunctionThreshold:
		return x, true
	default:
		return x, false
	}
}
