package model

import (
	"fmt"
	"math"
)

// Sample is one point of the temperature survey
type Sample struct {
	Position    float64 // KP (m)
	Temperature float64 // °C
}

// TemperatureProfile is the surveyed temperature along the route, ordered by
// strictly increasing position.
type TemperatureProfile []Sample

// Validate checks that the survey can be interpolated
func (p TemperatureProfile) Validate() error {
	if len(p) < 2 {
		return &ConfigurationError{Param: "temperature profile", Msg: fmt.Sprintf("need at least 2 samples, got %d", len(p))}
	}
	for i, s := range p {
		if math.IsNaN(s.Position) || math.IsInf(s.Position, 0) || math.IsNaN(s.Temperature) || math.IsInf(s.Temperature, 0) {
			return &ConfigurationError{Param: "temperature profile", Msg: fmt.Sprintf("sample %d is not finite", i+1)}
		}
		if i > 0 && s.Position <= p[i-1].Position {
			return &ConfigurationError{
				Param: "temperature profile",
				Msg:   fmt.Sprintf("positions must strictly increase (sample %d at %g m follows %g m)", i+1, s.Position, p[i-1].Position),
			}
		}
	}
	return nil
}

// RouteLength is the largest surveyed position
func (p TemperatureProfile) RouteLength() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Position
}

// Split returns the positions and temperatures as separate slices
func (p TemperatureProfile) Split() (xs, ts []float64) {
	xs = make([]float64, len(p))
	ts = make([]float64, len(p))
	for i, s := range p {
		xs[i] = s.Position
		ts[i] = s.Temperature
	}
	return xs, ts
}
