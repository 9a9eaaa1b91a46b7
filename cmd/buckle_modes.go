package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/pipebuckle/internal/analysis"
	"github.com/alexiusacademia/pipebuckle/internal/buckle"
	"github.com/alexiusacademia/pipebuckle/internal/diagram"
	"github.com/alexiusacademia/pipebuckle/internal/log"
)

var (
	modesCurve  bool
	modesExport string
)

var buckleModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Solve the buckle initiation force of every lateral mode",
	Long: `Solve the buckle length and buckle initiation force of each of the
four lateral buckling modes. Only the parameter file is needed; the
temperature profile is not read.

Examples:
  pipebuckle buckle modes
  pipebuckle buckle modes --curve
  pipebuckle buckle modes -o reports/buckle_modes.svg`,
	Run: runBuckleModes,
}

func init() {
	buckleCmd.AddCommand(buckleModesCmd)

	buckleModesCmd.Flags().BoolVar(&modesCurve, "curve", false, "Print the buckling force against buckle length")
	buckleModesCmd.Flags().StringVarP(&modesExport, "output", "o", "", "Export the curves to file (png, svg, pdf)")
}

func runBuckleModes(cmd *cobra.Command, args []string) {
	cfg, configPath, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading parameters: %v\n", err)
		return
	}

	res, err := analysis.Prepare(cfg)
	if err != nil {
		fmt.Printf("Error calculating section: %v\n", err)
		return
	}
	log.Debugw("buckle parameters", "config", configPath, "params", res.Buckle)

	modes := buckle.SolveAll(res.Buckle, buckle.NelderMead{})
	governing, govErr := buckle.Governing(modes)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LATERAL BUCKLE MODES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Parameters:\t%s\n", configPath)
	fmt.Fprintf(w, "  Bending stiffness (EI):\t%.4e N·m²\n", res.BendingStiffness)
	fmt.Fprintf(w, "  Submerged weight (W_s):\t%.2f N/m\n", res.SubmergedWeight)
	fmt.Fprintf(w, "  Axial / lateral friction:\t%g / %g\n", cfg.AxialFriction, cfg.LateralFriction)
	w.Flush()
	fmt.Println()

	printModes(modes, governing.Mode)

	if govErr != nil {
		fmt.Printf("Error: %v\n", govErr)
	} else {
		fmt.Print(diagram.DrawSummaryBox("GOVERNING MODE", []string{
			fmt.Sprintf("Mode %d: L = %.2f m, F_b = %.1f kN", governing.Mode, governing.Length, governing.Force/1000),
		}))
		fmt.Println()
	}

	if modesCurve {
		lengths := diagram.CurveLengths(modes, 9)

		fmt.Println("BUCKLING FORCE (kN):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  L (m)\tMode 1\tMode 2\tMode 3\tMode 4\t\n")
		curves := make([][]float64, buckle.ModeCount)
		for mode := 1; mode <= buckle.ModeCount; mode++ {
			curves[mode-1], _ = res.Buckle.Curve(mode, lengths)
		}
		for i, l := range lengths {
			fmt.Fprintf(w, "  %.1f\t", l)
			for _, c := range curves {
				fmt.Fprintf(w, "%.1f\t", c[i]/1000)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	}

	if modesExport != "" {
		if err := diagram.ExportBuckleCurves(res.Buckle, modes, modesExport); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", filepath.Clean(modesExport))
		}
	}
}
