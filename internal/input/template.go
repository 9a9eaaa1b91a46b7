package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// DefaultConfig returns the parameters written by the setup command: a
// 12.75" export line with concrete weight coating in 120 m of water.
func DefaultConfig() *model.Config {
	return &model.Config{
		OuterDiameter:       0.323,
		WallThickness:       0.0212,
		SteelModulus:        2.07e11,
		SteelDensity:        7850,
		Alpha:               1.17e-5,
		Poisson:             0.3,
		CoatingThickness:    0.003,
		CoatingDensity:      900,
		ConcreteThickness:   0.05,
		ConcreteDensity:     3050,
		ConcreteModulus:     2.7e10,
		CompositeCoeff:      0.25,
		MechanicalThickness: 0.002,
		MechanicalDensity:   950,
		ContentDensity:      800,
		SeawaterDensity:     1025,
		AmbientTemp:         4,
		WaterDepth:          120,
		DepthReference:      -5,
		DesignPressure:      1.5e7,
		LayTension:          1e5,
		AxialFriction:       0.5,
		LateralFriction:     0.8,
		Step:                10,
	}
}

// DefaultTemperatureProfile is an exponential cool-down from a 90 °C inlet to
// ambient over 5 km, sampled every 250 m.
func DefaultTemperatureProfile() model.TemperatureProfile {
	const (
		inlet   = 90.0
		ambient = 4.0
		decay   = 1500.0
		length  = 5000.0
		spacing = 250.0
	)

	var profile model.TemperatureProfile
	for x := 0.0; x <= length; x += spacing {
		t := ambient + (inlet-ambient)*math.Exp(-x/decay)
		profile = append(profile, model.Sample{Position: x, Temperature: math.Round(t*100) / 100})
	}
	return profile
}

// WriteConfig writes cfg in the format given by the extension of path
func WriteConfig(path string, cfg *model.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	values := cfg.Values()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		doc := yaml.MapSlice{}
		for _, name := range model.ParamNames() {
			doc = append(doc, yaml.MapItem{Key: name, Value: typed(values[name])})
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)

	case ".json":
		doc := make(map[string]interface{}, len(values))
		for name, v := range values {
			doc[name] = typed(v)
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, append(data, '\n'), 0644)

	case ".ini", ".toml":
		file := ini.Empty()
		section := ini.DefaultSection
		if ext == ".ini" {
			section = iniSection
		}
		sec := file.Section(section)
		for _, name := range model.ParamNames() {
			if _, err := sec.NewKey(name, values[name]); err != nil {
				return err
			}
		}
		return file.SaveTo(path)

	default:
		return fmt.Errorf("%s: unsupported parameter file format %q", path, ext)
	}
}

// typed turns a formatted value back into a number or a boolean so encoders
// do not quote it
func typed(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// WriteTemperatureProfile writes a survey as CSV with an "x,T" header
func WriteTemperatureProfile(path string, profile model.TemperatureProfile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "T"}); err != nil {
		return err
	}
	for _, s := range profile {
		rec := []string{
			strconv.FormatFloat(s.Position, 'g', -1, 64),
			strconv.FormatFloat(s.Temperature, 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
