// Package mechanics combines cross-section properties into the unit weight,
// bending stiffness and internal pressure used by the axial force model.
package mechanics

import "github.com/alexiusacademia/pipebuckle/internal/geometry"

// G is standard gravity (m/s²)
const G = 9.80665

// SubmergedWeight returns the net weight per unit length (N/m) of the layers
// less the buoyancy of the displaced water. A negative result means the pipe
// floats and is returned as is.
func SubmergedWeight(layers []geometry.Layer, outerArea, waterDensity float64) float64 {
	var m float64
	for _, l := range layers {
		m += l.Area * l.Density
	}
	return G * (m - outerArea*waterDensity)
}

// BendingStiffness returns the effective EI (N·m²) of the steel pipe with a
// share compositeCoeff of the concrete coating acting compositely.
func BendingStiffness(ePipe, iPipe, compositeCoeff, eConcrete, iConcrete float64) float64 {
	return ePipe*iPipe + compositeCoeff*eConcrete*iConcrete
}

// LocalInternalPressure returns the internal pressure (Pa) at a point given the
// design pressure and the content head over depth + depthReference.
func LocalInternalPressure(designPressure, contentDensity, depth, depthReference float64) float64 {
	return designPressure + contentDensity*G*(depth+depthReference)
}
