// Package input reads analysis inputs from disk: the pipe parameters and the
// temperature survey.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// ConfigNames are the file names searched for in an input folder, in order
var ConfigNames = []string{"inputs.yaml", "inputs.yml", "inputs.toml", "inputs.ini", "inputs.json"}

// iniSection holds the parameters in INI files; the default section is used
// when it is absent.
const iniSection = "pipe"

// LoadConfig reads and validates a parameter file. The format follows the
// extension: .yaml/.yml, .json, or .ini/.toml (flat key = value).
func LoadConfig(path string) (*model.Config, error) {
	values, err := readValues(path)
	if err != nil {
		return nil, err
	}
	cfg, err := model.FromValues(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func readValues(path string) (map[string]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return readYAML(path)
	case ".json":
		return readJSON(path)
	case ".ini", ".toml":
		return readINI(path)
	default:
		return nil, fmt.Errorf("%s: unsupported parameter file format %q", path, ext)
	}
}

func readYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stringify(raw), nil
}

func readJSON(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stringify(raw), nil
}

func readINI(path string) (map[string]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	sec, err := file.GetSection(iniSection)
	if err != nil {
		sec = file.Section(ini.DefaultSection)
	}
	return sec.KeysHash(), nil
}

func stringify(raw map[string]interface{}) map[string]string {
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		values[k] = fmt.Sprint(v)
	}
	return values
}

// FindConfig returns the first parameter file present in dir
func FindConfig(dir string) (string, error) {
	return find(dir, ConfigNames)
}

func find(dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("none of %s found in %s", strings.Join(names, ", "), dir)
}
