package axial

// Section carries the pipe properties entering the restrained axial force.
// Forces are negative in compression.
type Section struct {
	LayTension    float64 // N_lay (N)
	Pressure      float64 // local internal pressure P_i (Pa)
	BoreArea      float64 // A_i (m²)
	SteelArea     float64 // A_p (m²)
	InnerDiameter float64 // D_i (m)
	WallThickness float64 // t_p (m)
	Poisson       float64 // v
	Alpha         float64 // thermal expansion (1/°C)
	Modulus       float64 // E_p (Pa)
	ThickWall     bool
}

// EffectiveForce returns the fully restrained effective axial force for a
// temperature rise deltaT, using the thin or thick wall formulation.
func (s Section) EffectiveForce(deltaT float64) float64 {
	if s.ThickWall {
		return s.thickWall(deltaT)
	}
	return s.thinWall(deltaT)
}

func (s Section) thinWall(deltaT float64) float64 {
	return s.LayTension -
		s.Pressure*s.BoreArea*(1-2*s.Poisson) -
		s.SteelArea*s.Modulus*s.Alpha*deltaT
}

func (s Section) thickWall(deltaT float64) float64 {
	return s.LayTension -
		s.Pressure*s.BoreArea +
		2*s.Pressure*s.Poisson*(s.SteelArea/4)*(s.InnerDiameter/s.WallThickness-1) -
		s.Alpha*deltaT*s.Modulus*s.SteelArea
}

// Friction is the axial friction envelope of a route of given length
type Friction struct {
	Coefficient     float64 // mu_a
	SubmergedWeight float64 // W_s (N/m)
	Length          float64 // route length (m)
}

// Hot returns the friction force mobilised from the hot end anchor at x
func (f Friction) Hot(x float64) float64 {
	return f.Coefficient * f.SubmergedWeight * -x
}

// Cold returns the friction force mobilised from the cold end anchor at x
func (f Friction) Cold(x float64) float64 {
	return f.Coefficient * f.SubmergedWeight * (x - f.Length)
}

// Limit is the friction limited force at x, the larger of Hot and Cold
func (f Friction) Limit(x float64) float64 {
	return max(f.Hot(x), f.Cold(x))
}
