package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/input"
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

func run(t *testing.T, length float64) *analysis.Result {
	t.Helper()
	cfg := input.DefaultConfig()
	cfg.Step = 100
	temps := model.TemperatureProfile{{Position: 0, Temperature: 60}, {Position: length, Temperature: 60}}

	res, err := analysis.Run(cfg, temps, analysis.Options{})
	if err != nil {
		t.Fatalf("analysis.Run: %v", err)
	}
	return res
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestExportForceProfile(t *testing.T) {
	res := run(t, 10000)
	dir := t.TempDir()

	for _, name := range []string{"plots.png", "plots.svg", "nested/plots.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportForceProfile(res.Profile, path); err != nil {
				t.Fatalf("ExportForceProfile: %v", err)
			}
			assertFile(t, path)
		})
	}

	// Unknown extensions fall back to PNG
	path := filepath.Join(dir, "plots")
	if err := ExportForceProfile(res.Profile, path); err != nil {
		t.Fatalf("ExportForceProfile: %v", err)
	}
	assertFile(t, path+".png")

	if err := ExportForceProfile(res.Profile[:1], filepath.Join(dir, "short.png")); err == nil {
		t.Error("expected an error for a single point profile")
	}
}

func TestExportBuckleCurves(t *testing.T) {
	res := run(t, 1000)
	path := filepath.Join(t.TempDir(), "buckle_modes.png")

	if err := ExportBuckleCurves(res.Buckle, res.Modes, path); err != nil {
		t.Fatalf("ExportBuckleCurves: %v", err)
	}
	assertFile(t, path)
}

func TestCurveLengths(t *testing.T) {
	lengths := CurveLengths(nil, 81)
	if lengths[0] != 60 || lengths[80] != 140 || lengths[1] != 61 {
		t.Errorf("unexpected span %g, %g ... %g", lengths[0], lengths[1], lengths[80])
	}

	modes := []model.ModeResult{
		{Mode: 1, Length: 40},
		{Mode: 2, Length: 200},
		{Mode: 3, Length: 10, Err: model.ErrNoValidBuckleMode},
	}
	lengths = CurveLengths(modes, 10)
	if lengths[0] != 32 || lengths[9] != 240 {
		t.Errorf("range = [%g, %g], want [32, 240]", lengths[0], lengths[9])
	}
}

func TestDrawForceProfile(t *testing.T) {
	long := DrawForceProfile(run(t, 10000).Profile, 20)
	if !strings.Contains(long, "◄ buckle") {
		t.Error("susceptible route should flag rows beyond the buckle force")
	}
	if !strings.Contains(long, "10000.0 m") {
		t.Error("chart should end on the last grid point")
	}

	short := DrawForceProfile(run(t, 1000).Profile, 20)
	if strings.Contains(short, "◄ buckle") {
		t.Error("friction limited route should not be flagged")
	}

	if DrawForceProfile(nil, 20) != "" {
		t.Error("empty profile should draw nothing")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"F_b = -1620.3 kN", "EI = 5.49e+07 N·m²"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	for _, line := range lines[1:] {
		if width(line) != width(lines[0]) {
			t.Errorf("misaligned line %q", line)
		}
	}
}
