// Package report writes analysis results to files: the result table as CSV
// or XLSX, and a PDF summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
)

// NewRunID returns an identifier stamped on every file of one run
func NewRunID() string {
	return uuid.New().String()
}

// WriteTable writes the result table in the format given by the extension of
// path (.csv or .xlsx)
func WriteTable(path string, res *analysis.Result, runID string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCSV(path, res.Profile)
	case ".xlsx":
		return WriteXLSX(path, res, runID)
	default:
		return fmt.Errorf("unsupported table format %q (use .csv or .xlsx)", ext)
	}
}
