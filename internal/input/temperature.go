package input

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// ProfileNames are the temperature survey file names searched for in an
// input folder, in order
var ProfileNames = []string{"temp_profile.csv", "temp_profile.xlsx"}

// LoadTemperatureProfile reads a temperature survey from CSV or from the first
// sheet of an XLSX workbook. The first two columns are position (m) and
// temperature (°C); a non-numeric first row is taken as the header.
func LoadTemperatureProfile(path string) (model.TemperatureProfile, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	default:
		return nil, fmt.Errorf("%s: unsupported temperature profile format %q", path, ext)
	}
	if err != nil {
		return nil, err
	}

	profile, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profile, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func parseRows(rows [][]string) (model.TemperatureProfile, error) {
	var profile model.TemperatureProfile

	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) < 2 {
			return nil, &model.ConfigurationError{Param: "temperature profile", Msg: fmt.Sprintf("row %d: need position and temperature", i+1)}
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		t, errT := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errT != nil {
			// Header row
			if len(profile) == 0 && i == firstNonBlank(rows) {
				continue
			}
			return nil, &model.ConfigurationError{Param: "temperature profile", Msg: fmt.Sprintf("row %d: not a number: %q", i+1, row[:2])}
		}

		profile = append(profile, model.Sample{Position: x, Temperature: t})
	}

	return profile, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !isBlank(row) {
			return i
		}
	}
	return -1
}

// FindTemperatureProfile returns the first temperature survey present in dir
func FindTemperatureProfile(dir string) (string, error) {
	return find(dir, ProfileNames)
}
