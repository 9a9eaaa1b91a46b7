package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// WriteCSV writes one row per grid position under the model.Columns header
func WriteCSV(path string, profile model.ResultProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns); err != nil {
		return err
	}

	rec := make([]string, len(model.Columns))
	for _, p := range profile {
		for i, v := range p.Values() {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
