package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/input"
	"github.com/alexiusacademia/pipebuckle/internal/model"
)

func testResult(t *testing.T) (*model.Config, *analysis.Result) {
	t.Helper()
	cfg := input.DefaultConfig()
	cfg.Step = 50
	temps := model.TemperatureProfile{{Position: 0, Temperature: 90}, {Position: 1000, Temperature: 30}}

	res, err := analysis.Run(cfg, temps, analysis.Options{})
	if err != nil {
		t.Fatalf("analysis.Run: %v", err)
	}
	return cfg, res
}

func TestWriteCSV(t *testing.T) {
	_, res := testResult(t)
	path := filepath.Join(t.TempDir(), "out", "results.csv")

	if err := WriteTable(path, res, NewRunID()); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != len(res.Profile)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(res.Profile)+1)
	}
	for i, c := range model.Columns {
		if rows[0][i] != c {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], c)
		}
	}

	last := res.Profile[len(res.Profile)-1].Values()
	for i, cell := range rows[len(rows)-1] {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			t.Fatalf("column %s: %v", model.Columns[i], err)
		}
		if v != last[i] {
			t.Errorf("column %s = %g, want %g", model.Columns[i], v, last[i])
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	_, res := testResult(t)
	path := filepath.Join(t.TempDir(), "results.xlsx")
	runID := NewRunID()

	if err := WriteTable(path, res, runID); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{ResultsSheet, ModesSheet, SummarySheet}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Errorf("sheet %d = %s, want %s", i, sheets[i], want[i])
		}
	}

	rows, err := f.GetRows(ResultsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(res.Profile)+1 {
		t.Errorf("results sheet has %d rows, want %d", len(rows), len(res.Profile)+1)
	}
	if rows[0][0] != "x" || rows[0][len(model.Columns)-1] != "F_actual" {
		t.Errorf("unexpected header %v", rows[0])
	}

	modes, err := f.GetRows(ModesSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(modes) != len(res.Modes)+1 {
		t.Errorf("modes sheet has %d rows, want %d", len(modes), len(res.Modes)+1)
	}

	got, err := f.GetCellValue(SummarySheet, "B1")
	if err != nil {
		t.Fatal(err)
	}
	if got != runID {
		t.Errorf("run id = %q, want %q", got, runID)
	}
}

func TestWriteTableUnsupported(t *testing.T) {
	_, res := testResult(t)
	if err := WriteTable(filepath.Join(t.TempDir(), "results.ods"), res, ""); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestWritePDF(t *testing.T) {
	cfg, res := testResult(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	doc := Document{
		RunID:  NewRunID(),
		Config: cfg,
		Result: res,
		Images: []string{filepath.Join(t.TempDir(), "missing.png")},
	}
	if err := WritePDF(path, doc); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("run ids should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("run id %q is not a UUID: %v", a, err)
	}
}
