package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/alexiusacademia/pipebuckle/internal/buckle"
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

var (
	blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	grey   = color.Gray{Y: 128}
	purple = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	pink   = color.RGBA{R: 255, G: 105, B: 180, A: 255}
	dashed = []vg.Length{vg.Points(5), vg.Points(3)}
)

// series is one line of a panel
type series struct {
	column string
	legend string
	color  color.Color
	dashes []vg.Length
}

// ExportForceProfile exports the result profile as stacked panels: temperature,
// restrained force, friction force, resultant force and the combined view
// against the buckle initiation force
func ExportForceProfile(profile model.ResultProfile, filename string) error {
	if len(profile) < 2 {
		return fmt.Errorf("profile needs at least 2 points, got %d", len(profile))
	}

	panels := []struct {
		title  string
		ylabel string
		lines  []series
	}{
		{"Temperature Profile", "Temperature (°C)", []series{
			{"T", "Internal temperature", blue, nil},
			{"delta_T", "Temperature difference", red, nil},
		}},
		{"Fully Restrained Effective Axial Force", "Axial force (N)", []series{{"F_eff", "", blue, nil}}},
		{"Friction Force", "Friction force (N)", []series{{"F_f", "", blue, nil}}},
		{"Resultant Effective Axial Force", "Axial force (N)", []series{{"F_res", "", blue, nil}}},
		{"Pipeline Axial Force", "Axial force (N)", []series{
			{"F_actual", "Resultant", blue, nil},
			{"F_res", "EAF", grey, dashed},
			{"F_b", "BIF", red, dashed},
		}},
	}

	xs := profile.Column("x")
	plots := make([][]*plot.Plot, len(panels))
	for i, panel := range panels {
		p := plot.New()
		p.Title.Text = panel.title
		p.X.Label.Text = "KP (m)"
		p.Y.Label.Text = panel.ylabel
		p.X.Min, p.X.Max = xs[0], xs[len(xs)-1]
		p.Add(plotter.NewGrid())

		for _, s := range panel.lines {
			line, err := plotter.NewLine(xyPoints(xs, profile.Column(s.column)))
			if err != nil {
				return err
			}
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = s.color
			line.LineStyle.Dashes = s.dashes
			p.Add(line)
			if s.legend != "" {
				p.Legend.Add(s.legend, line)
			}
		}
		p.Legend.Top = true
		plots[i] = []*plot.Plot{p}
	}

	return saveTiled(plots, 8*vg.Inch, vg.Length(len(plots))*3*vg.Inch, filename)
}

// CurveRange is the default span of buckle lengths drawn by
// ExportBuckleCurves (m)
var CurveRange = [2]float64{60, 140}

// CurveLengths returns n evenly spaced lengths covering CurveRange, widened
// to include the solved length of every valid mode
func CurveLengths(modes []model.ModeResult, n int) []float64 {
	lo, hi := CurveRange[0], CurveRange[1]
	for _, m := range modes {
		if m.Valid() {
			lo = math.Min(lo, math.Floor(m.Length*0.8))
			hi = math.Max(hi, math.Ceil(m.Length*1.2))
		}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// ExportBuckleCurves exports the force-length curve of every mode on a log
// scale, marking each solved minimum
func ExportBuckleCurves(params buckle.Params, modes []model.ModeResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Buckling Force"
	p.X.Label.Text = "Minimum buckle length (m)"
	p.Y.Label.Text = "Buckling force (N)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	colors := []color.Color{red, blue, purple, pink}
	lengths := CurveLengths(modes, 100)
	drawn := 0

	for mode := 1; mode <= buckle.ModeCount; mode++ {
		forces, err := params.Curve(mode, lengths)
		if err != nil {
			return err
		}

		// Log axes cannot show non-positive values
		var pts plotter.XYs
		for i, f := range forces {
			if f > 0 && !math.IsInf(f, 0) {
				pts = append(pts, plotter.XY{X: lengths[i], Y: f})
			}
		}
		if len(pts) < 2 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = colors[mode-1]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Mode %d", mode), line)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("no mode has a positive buckling force between %g and %g m", lengths[0], lengths[len(lengths)-1])
	}

	var minima plotter.XYs
	for _, m := range modes {
		if m.Valid() && m.Force < 0 {
			minima = append(minima, plotter.XY{X: m.Length, Y: -m.Force})
		}
	}
	if len(minima) > 0 {
		marks, err := plotter.NewScatter(minima)
		if err != nil {
			return err
		}
		marks.GlyphStyle.Color = color.Black
		marks.GlyphStyle.Radius = vg.Points(3)
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(marks)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return saveTiled([][]*plot.Plot{{p}}, 8*vg.Inch, 5*vg.Inch, filename)
}

func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// saveTiled draws plots on one canvas, one per tile, in the format given by
// the extension of filename
func saveTiled(plots [][]*plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var c vg.CanvasWriterTo
	switch filepath.Ext(filename) {
	case ".svg":
		c = vgsvg.New(width, height)
	case ".pdf":
		c = vgpdf.New(width, height)
	case ".png":
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	default:
		filename += ".png"
		c = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
