package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

// Sheet names of the workbook written by WriteXLSX
const (
	ResultsSheet = "Results"
	ModesSheet   = "Modes"
	SummarySheet = "Summary"
)

// WriteXLSX writes a workbook with the result table, the per-mode buckle
// solutions and the run summary
func WriteXLSX(path string, res *analysis.Result, runID string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}
	if err := writeResults(f, res.Profile); err != nil {
		return err
	}

	if _, err := f.NewSheet(ModesSheet); err != nil {
		return err
	}
	if err := writeModes(f, res.Modes, res.Governing.Mode); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, res, runID); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeResults(f *excelize.File, profile model.ResultProfile) error {
	header := make([]interface{}, len(model.Columns))
	for i, c := range model.Columns {
		header[i] = c
	}
	if err := setRow(f, ResultsSheet, 1, header); err != nil {
		return err
	}

	for i, p := range profile {
		vals := p.Values()
		row := make([]interface{}, len(vals))
		for j, v := range vals {
			row[j] = v
		}
		if err := setRow(f, ResultsSheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(ResultsSheet, "A", "J", 14)
}

func writeModes(f *excelize.File, modes []model.ModeResult, governing int) error {
	if err := setRow(f, ModesSheet, 1, []interface{}{"mode", "L (m)", "F_b (N)", "status"}); err != nil {
		return err
	}

	for i, m := range modes {
		row := []interface{}{m.Mode, m.Length, m.Force, "ok"}
		switch {
		case !m.Valid():
			row = []interface{}{m.Mode, "", "", m.Err.Error()}
		case m.Mode == governing:
			row[3] = "governing"
		}
		if err := setRow(f, ModesSheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(ModesSheet, "A", "D", 16)
}

func writeSummary(f *excelize.File, res *analysis.Result, runID string) error {
	s := res.Summary
	rows := [][]interface{}{
		{"Run", runID},
		{"Submerged weight (N/m)", res.SubmergedWeight},
		{"Bending stiffness (N·m²)", res.BendingStiffness},
		{"Internal pressure (Pa)", res.InternalPressure},
		{"Min effective force (N)", s.MinEffective},
		{"Min resultant force (N)", s.MinResultant},
		{"Buckle initiation force (N)", s.BuckleForce},
		{"Governing mode", s.GoverningMode},
		{"Susceptible to lateral buckling", fmt.Sprintf("%t", s.Susceptible)},
	}
	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 32)
}
