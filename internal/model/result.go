package model

// Point is one row of the result profile. Forces are in N, negative in
// compression.
type Point struct {
	X       float64 // position along the route (m)
	T       float64 // interpolated temperature (°C)
	DeltaT  float64 // temperature above ambient (°C)
	FEff    float64 // fully restrained effective axial force
	FfH     float64 // friction force from the hot end
	FfC     float64 // friction force from the cold end
	Ff      float64 // friction limited force, max(FfH, FfC)
	FRes    float64 // resultant force, max(FEff, Ff)
	FB      float64 // governing buckle initiation force
	FActual float64 // max(FRes, FB)
}

// Columns are the result table headings, in the order of Point.Values
var Columns = []string{"x", "T", "delta_T", "F_eff", "F_fH", "F_fC", "F_f", "F_res", "F_b", "F_actual"}

// Values returns the row in Columns order
func (p Point) Values() []float64 {
	return []float64{p.X, p.T, p.DeltaT, p.FEff, p.FfH, p.FfC, p.Ff, p.FRes, p.FB, p.FActual}
}

// ResultProfile holds one Point per grid position from 0 to the route length
type ResultProfile []Point

// Column extracts one column by name; nil if the name is unknown
func (r ResultProfile) Column(name string) []float64 {
	idx := -1
	for i, c := range Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.Values()[idx]
	}
	return out
}

// ModeResult is the solved buckle length and force of one mode
type ModeResult struct {
	Mode   int
	Length float64 // m
	Force  float64 // N, negative in compression
	Err    error   // non-nil when the mode is excluded
}

// Valid reports whether the mode takes part in the governing force
func (m ModeResult) Valid() bool {
	return m.Err == nil
}

// Summary holds the scalars reported for a run
type Summary struct {
	MinEffective  float64 // most compressive fully restrained force (N)
	MinResultant  float64 // most compressive resultant force (N)
	BuckleForce   float64 // governing buckle initiation force (N)
	GoverningMode int
	Susceptible   bool // resultant force more compressive than the buckle force
}
