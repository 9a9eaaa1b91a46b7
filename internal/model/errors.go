package model

import (
	"errors"
	"fmt"
)

// ErrNoValidBuckleMode is returned when every lateral buckling mode failed to
// produce a usable buckle initiation force.
var ErrNoValidBuckleMode = errors.New("no valid lateral buckling mode")

// ConfigurationError reports a missing or out-of-range input parameter
type ConfigurationError struct {
	Param string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e.Param == "" {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration: %s: %s", e.Param, e.Msg)
}

// InterpolationDomainError reports an evaluation position outside the
// temperature survey. Temperatures are never extrapolated.
type InterpolationDomainError struct {
	Position float64 // m
	Min      float64 // m
	Max      float64 // m
}

func (e *InterpolationDomainError) Error() string {
	return fmt.Sprintf("position %g m is outside the temperature survey [%g, %g] m", e.Position, e.Min, e.Max)
}

// OptimizationFailure reports a buckle length search that did not converge or
// ended on an invalid point of the force function.
type OptimizationFailure struct {
	Mode   int
	Length float64 // m, last point reached by the search
	Reason string
}

func (e *OptimizationFailure) Error() string {
	return fmt.Sprintf("buckle mode %d: %s (L=%g m)", e.Mode, e.Reason, e.Length)
}
