package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/diagram"
	"github.com/alexiusacademia/pipebuckle/internal/input"
	"github.com/alexiusacademia/pipebuckle/internal/log"
	"github.com/alexiusacademia/pipebuckle/internal/model"
	"github.com/alexiusacademia/pipebuckle/internal/report"
)

var (
	bucklePlot   bool
	buckleFormat string
	bucklePDF    bool
	buckleASCII  bool
)

var buckleCmd = &cobra.Command{
	Use:   "buckle",
	Short: "Run the lateral buckling assessment",
	Long: `Calculate the axial force profile along the pipeline route and
check it against the lateral buckle initiation force.

Reads the parameter file and temperature profile from the input folder
(--config) and writes the result table to the reports folder (--reports).

Result columns:
  x         position along the route (m)
  T         interpolated temperature (°C)
  delta_T   temperature above ambient (°C)
  F_eff     fully restrained effective axial force (N)
  F_fH      friction force from the hot end (N)
  F_fC      friction force from the cold end (N)
  F_f       friction limited force (N)
  F_res     resultant effective axial force (N)
  F_b       governing buckle initiation force (N)
  F_actual  max(F_res, F_b) (N)

Forces are negative in compression.

Examples:
  pipebuckle buckle
  pipebuckle buckle --plot --pdf
  pipebuckle buckle --config project/input --reports project/out --format xlsx`,
	Run: runBuckle,
}

func init() {
	rootCmd.AddCommand(buckleCmd)

	buckleCmd.Flags().BoolVarP(&bucklePlot, "plot", "p", false, "Export plots.png and buckle_modes.png")
	buckleCmd.Flags().StringVar(&buckleFormat, "format", "csv", "Result table format: csv or xlsx")
	buckleCmd.Flags().BoolVar(&bucklePDF, "pdf", false, "Write a PDF report (includes the plots with --plot)")
	buckleCmd.Flags().BoolVar(&buckleASCII, "diagram", false, "Show ASCII force profile")
}

// loadConfig finds and reads the parameter file of the input folder
func loadConfig() (*model.Config, string, error) {
	path, err := input.FindConfig(inputDir)
	if err != nil {
		return nil, "", err
	}
	cfg, err := input.LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func runBuckle(cmd *cobra.Command, args []string) {
	if buckleFormat != "csv" && buckleFormat != "xlsx" {
		fmt.Printf("Error: unknown format %q (use csv or xlsx)\n", buckleFormat)
		return
	}

	runID := report.NewRunID()
	logger := log.With("run", runID)

	cfg, configPath, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading parameters: %v\n", err)
		return
	}

	profilePath, err := input.FindTemperatureProfile(inputDir)
	if err != nil {
		fmt.Printf("Error loading temperature profile: %v\n", err)
		return
	}
	temps, err := input.LoadTemperatureProfile(profilePath)
	if err != nil {
		fmt.Printf("Error loading temperature profile: %v\n", err)
		return
	}

	logger.Infow("running analysis", "config", configPath, "profile", profilePath, "route_m", temps.RouteLength())

	res, err := analysis.Run(cfg, temps, analysis.Options{Logger: logger})
	if err != nil {
		fmt.Printf("Error running analysis: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PIPELINE LATERAL BUCKLING ASSESSMENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Parameters:\t%s\n", configPath)
	fmt.Fprintf(w, "  Temperature profile:\t%s (%d samples)\n", profilePath, len(temps))
	fmt.Fprintf(w, "  Route length:\t%.1f m\n", temps.RouteLength())
	fmt.Fprintf(w, "  Grid:\t%d points at %g m\n", len(res.Profile), cfg.Step)
	formulation := "thin wall"
	if cfg.ThickWall {
		formulation = "thick wall"
	}
	fmt.Fprintf(w, "  Formulation:\t%s\n", formulation)
	fmt.Fprintf(w, "  Run:\t%s\n", runID)
	w.Flush()
	fmt.Println()

	printSection(res)
	printModes(res.Modes, res.Governing.Mode)

	s := res.Summary
	fmt.Println("AXIAL FORCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max fully restrained force (F_eff):\t%.1f kN\n", s.MinEffective/1000)
	fmt.Fprintf(w, "  Max resultant force (F_res):\t%.1f kN\n", s.MinResultant/1000)
	fmt.Fprintf(w, "  Buckle initiation force (F_b):\t%.1f kN (mode %d)\n", s.BuckleForce/1000, s.GoverningMode)
	w.Flush()
	fmt.Println()

	verdict := "NOT susceptible to lateral buckling"
	if s.Susceptible {
		verdict = "SUSCEPTIBLE to lateral buckling"
	}
	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("F_res = %.1f kN  vs  F_b = %.1f kN", s.MinResultant/1000, s.BuckleForce/1000),
		"The pipeline is " + verdict,
	}))
	fmt.Println()

	if buckleASCII {
		fmt.Println(diagram.DrawForceProfile(res.Profile, 20))
	}

	// Output files
	tablePath := filepath.Join(reportsDir, "results."+buckleFormat)
	if err := report.WriteTable(tablePath, res, runID); err != nil {
		fmt.Printf("Error writing results: %v\n", err)
		return
	}
	fmt.Printf("Results written to: %s\n", tablePath)

	var images []string
	if bucklePlot {
		plotPath := filepath.Join(reportsDir, "plots.png")
		if err := diagram.ExportForceProfile(res.Profile, plotPath); err != nil {
			fmt.Printf("Error exporting plots: %v\n", err)
		} else {
			fmt.Printf("Plots exported to: %s\n", plotPath)
			images = append(images, plotPath)
		}

		modesPath := filepath.Join(reportsDir, "buckle_modes.png")
		if err := diagram.ExportBuckleCurves(res.Buckle, res.Modes, modesPath); err != nil {
			fmt.Printf("Error exporting buckle curves: %v\n", err)
		} else {
			fmt.Printf("Buckle curves exported to: %s\n", modesPath)
			images = append(images, modesPath)
		}
	}

	if bucklePDF {
		pdfPath := filepath.Join(reportsDir, "report.pdf")
		doc := report.Document{RunID: runID, Config: cfg, Result: res, Images: images}
		if err := report.WritePDF(pdfPath, doc); err != nil {
			fmt.Printf("Error writing PDF report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", pdfPath)
		}
	}

	logger.Infow("analysis complete", "susceptible", s.Susceptible, "governing_mode", s.GoverningMode)
}

func printSection(res *analysis.Result) {
	cs := res.CrossSection

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tInner (mm)\tOuter (mm)\tArea (mm²)\n")
	fmt.Fprintf(w, "  ─────\t──────────\t──────────\t──────────\n")
	for _, l := range []struct {
		name         string
		inner, outer float64
		area         float64
	}{
		{cs.Pipe.Name, cs.Pipe.Inner, cs.Pipe.Outer, cs.Pipe.Area},
		{cs.Coating.Name, cs.Coating.Inner, cs.Coating.Outer, cs.Coating.Area},
		{cs.Concrete.Name, cs.Concrete.Inner, cs.Concrete.Outer, cs.Concrete.Area},
		{cs.Mechanical.Name, cs.Mechanical.Inner, cs.Mechanical.Outer, cs.Mechanical.Area},
	} {
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f\t%.0f\n", l.name, l.inner*1000, l.outer*1000, l.area*1e6)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Submerged weight (W_s):\t%.2f N/m\n", res.SubmergedWeight)
	fmt.Fprintf(w, "  Bending stiffness (EI):\t%.4e N·m²\n", res.BendingStiffness)
	fmt.Fprintf(w, "  Local internal pressure (P_i):\t%.4f MPa\n", res.InternalPressure/1e6)
	w.Flush()
	fmt.Println()
}

func printModes(modes []model.ModeResult, governing int) {
	fmt.Println("BUCKLE MODES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mode\tL (m)\tF_b (kN)\tStatus\n")
	fmt.Fprintf(w, "  ────\t─────\t────────\t──────\n")
	for _, m := range modes {
		if !m.Valid() {
			fmt.Fprintf(w, "  %d\t-\t-\texcluded: %v\n", m.Mode, m.Err)
			continue
		}
		status := "✓"
		if m.Mode == governing {
			status = "governing"
		}
		fmt.Fprintf(w, "  %d\t%.2f\t%.1f\t%s\n", m.Mode, m.Length, m.Force/1000, status)
	}
	w.Flush()
	fmt.Println()
}
