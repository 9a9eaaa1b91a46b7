package model

import (
	"errors"
	"strings"
	"testing"
)

func validValues() map[string]string {
	return map[string]string{
		"D_p":      "0.3230",
		"t_p":      "0.0212",
		"E_p":      "2.07e11",
		"rho_p":    "7850",
		"alpha":    "1.17e-5",
		"v":        "0.3",
		"t_c":      "0.003",
		"rho_c":    "900",
		"t_conc":   "0.05",
		"rho_conc": "3050",
		"E_conc":   "2.7e10",
		"Coff":     "0.25",
		"t_m":      "0",
		"rho_m":    "0",
		"rho_con":  "800",
		"rho_w":    "1025",
		"T_a":      "4",
		"h":        "120",
		"P_d":      "1.5e7",
		"N_lay":    "1e5",
		"mu_a":     "0.5",
		"mu_l":     "0.8",
		"step":     "10",
	}
}

func TestFromValues(t *testing.T) {
	values := validValues()
	values["thick"] = "true"
	values["h_ref"] = "-5"

	cfg, err := FromValues(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OuterDiameter != 0.323 || cfg.SteelModulus != 2.07e11 || cfg.Step != 10 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.ThickWall {
		t.Error("thick flag not parsed")
	}
	if cfg.DepthReference != -5 {
		t.Errorf("h_ref = %v, want -5", cfg.DepthReference)
	}
}

func TestFromValuesOptionalDefaults(t *testing.T) {
	cfg, err := FromValues(validValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ThickWall || cfg.DepthReference != 0 {
		t.Errorf("optional parameters not defaulted: thick=%v h_ref=%v", cfg.ThickWall, cfg.DepthReference)
	}
}

func TestFromValuesReportsAllMissing(t *testing.T) {
	values := validValues()
	delete(values, "mu_a")
	delete(values, "E_p")

	_, err := FromValues(values)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if !strings.Contains(cfgErr.Msg, "E_p") || !strings.Contains(cfgErr.Msg, "mu_a") {
		t.Errorf("message %q should name both missing parameters", cfgErr.Msg)
	}
}

func TestFromValuesBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric", "D_p", "abc"},
		{"bad bool", "thick", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.key] = tt.value
			_, err := FromValues(values)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %v, want ConfigurationError", err)
			}
			if cfgErr.Param != tt.key {
				t.Errorf("param = %q, want %q", cfgErr.Param, tt.key)
			}
		})
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero step", "step", "0"},
		{"negative step", "step", "-10"},
		{"negative coating", "t_c", "-0.001"},
		{"zero wall", "t_p", "0"},
		{"wall closes bore", "t_p", "0.2"},
		{"poisson too large", "v", "0.5"},
		{"composite above one", "Coff", "1.2"},
		{"negative friction", "mu_l", "-0.1"},
		{"infinite modulus", "E_p", "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values[tt.key] = tt.value
			_, err := FromValues(values)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %v, want ConfigurationError", err)
			}
			if cfgErr.Param != tt.key {
				t.Errorf("param = %q, want %q", cfgErr.Param, tt.key)
			}
		})
	}
}

func TestValuesRoundTrip(t *testing.T) {
	cfg, err := FromValues(validValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := FromValues(cfg.Values())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *again != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again, cfg)
	}
}
