// Package buckle solves the lateral buckle initiation force of a pipeline for
// each classical mode shape and reduces them to the governing force.
package buckle

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// InitialLength is the starting buckle length of every search (m)
const InitialLength = 100.0

// SolveMode searches the buckle length minimising the force function of one
// mode. The returned force is negative (compressive). A mode that cannot be
// solved carries an *model.OptimizationFailure in Err.
func SolveMode(p Params, mode int, m Minimizer) model.ModeResult {
	res := model.ModeResult{Mode: mode}

	k, err := ModeCoefficients(mode)
	if err != nil {
		res.Err = err
		return res
	}

	length, ok := m.Minimize(p.objective(k), InitialLength)
	res.Length = length

	fail := func(reason string) model.ModeResult {
		res.Err = &model.OptimizationFailure{Mode: mode, Length: length, Reason: reason}
		return res
	}

	if !ok {
		return fail("buckle length search did not converge")
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return fail("buckle length is not positive")
	}
	if r := p.radicand(k, length); !(r >= 0) {
		return fail("negative radicand in force function")
	}

	f := p.Force(k, length)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fail("buckle force is not finite")
	}

	res.Force = -f
	return res
}

// SolveAll solves every mode concurrently. Results are ordered by mode.
func SolveAll(p Params, m Minimizer) []model.ModeResult {
	results := make([]model.ModeResult, ModeCount)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = SolveMode(p, i+1, m)
		}(i)
	}
	wg.Wait()

	return results
}

// Governing picks the valid mode with the largest (least compressive) force,
// the mode that initiates first. Invalid modes are skipped; if none is valid
// the error wraps model.ErrNoValidBuckleMode and every mode's failure.
func Governing(results []model.ModeResult) (model.ModeResult, error) {
	var (
		best  model.ModeResult
		found bool
		errs  []error
	)
	for _, r := range results {
		if !r.Valid() {
			errs = append(errs, r.Err)
			continue
		}
		if !found || r.Force > best.Force {
			best = r
			found = true
		}
	}
	if !found {
		if len(errs) == 0 {
			return model.ModeResult{}, model.ErrNoValidBuckleMode
		}
		return model.ModeResult{}, fmt.Errorf("%w: %w", model.ErrNoValidBuckleMode, errors.Join(errs...))
	}
	return best, nil
}

// Solve runs every mode and returns the per-mode results with the governing
// one.
func Solve(p Params, m Minimizer) ([]model.ModeResult, model.ModeResult, error) {
	results := SolveAll(p, m)
	governing, err := Governing(results)
	return results, governing, err
}
