package report

import (
	"fmt"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/model"
	"github.com/alexiusacademia/pipebuckle/internal/version"
)

// Document is the content of a PDF report
type Document struct {
	Title  string
	RunID  string
	Config *model.Config
	Result *analysis.Result
	Images []string // PNG files appended one per page; missing files are skipped
}

// WritePDF renders doc to path
func WritePDF(path string, doc Document) error {
	if doc.Title == "" {
		doc.Title = "Lateral Buckling Assessment"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreator(version.Name+" "+version.Version, true)
	pdf.AddPage()
	// Core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", doc.RunID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if doc.Config != nil {
		heading(pdf, tr, "Input parameters")
		values := doc.Config.Values()
		for _, name := range model.ParamNames() {
			row(pdf, tr, name, values[name])
		}
		pdf.Ln(4)
	}

	if res := doc.Result; res != nil {
		heading(pdf, tr, "Section properties")
		row(pdf, tr, "Submerged weight", fmt.Sprintf("%.2f N/m", res.SubmergedWeight))
		row(pdf, tr, "Bending stiffness", fmt.Sprintf("%.4e N·m²", res.BendingStiffness))
		row(pdf, tr, "Internal pressure", fmt.Sprintf("%.4e Pa", res.InternalPressure))
		pdf.Ln(4)

		heading(pdf, tr, "Buckle modes")
		for _, m := range res.Modes {
			label := fmt.Sprintf("Mode %d", m.Mode)
			if !m.Valid() {
				row(pdf, tr, label, "excluded: "+m.Err.Error())
				continue
			}
			value := fmt.Sprintf("L = %.2f m, F = %.1f kN", m.Length, m.Force/1000)
			if m.Mode == res.Governing.Mode {
				value += " (governing)"
			}
			row(pdf, tr, label, value)
		}
		pdf.Ln(4)

		s := res.Summary
		heading(pdf, tr, "Results")
		row(pdf, tr, "Min effective force", fmt.Sprintf("%.1f kN", s.MinEffective/1000))
		row(pdf, tr, "Min resultant force", fmt.Sprintf("%.1f kN", s.MinResultant/1000))
		row(pdf, tr, "Buckle initiation force", fmt.Sprintf("%.1f kN", s.BuckleForce/1000))
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, verdict(s.Susceptible))
		pdf.Ln(8)
	}

	for _, img := range doc.Images {
		if _, err := os.Stat(img); err != nil {
			continue
		}
		pdf.AddPage()
		pdf.ImageOptions(img, 10, 15, 190, 0, false, gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func heading(pdf *gofpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(text))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(60, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func verdict(susceptible bool) string {
	if susceptible {
		return "The pipeline IS susceptible to lateral buckling."
	}
	return "The pipeline is NOT susceptible to lateral buckling."
}
