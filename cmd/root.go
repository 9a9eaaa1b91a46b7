package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/pipebuckle/internal/log"
	"github.com/alexiusacademia/pipebuckle/internal/version"
)

var (
	debug      bool
	inputDir   string
	reportsDir string
)

var rootCmd = &cobra.Command{
	Use:   "pipebuckle",
	Short: "Pipeline axial force and lateral buckling assessment",
	Long: `pipebuckle - Subsea Pipeline Lateral Buckling Assessment

A CLI tool that computes the axial force profile of a subsea pipeline
under thermal and pressure loading and checks whether the pipeline is
susceptible to lateral buckling.

The analysis covers:
  - Fully restrained effective axial force (thin or thick wall)
  - Friction limited force from the hot and cold ends
  - Resultant axial force along the route
  - Buckle initiation force for the four Hobbs lateral modes

Inputs are read from the input folder (--config):
  inputs.yaml | inputs.yml | inputs.toml | inputs.ini | inputs.json
  temp_profile.csv | temp_profile.xlsx`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(debug)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   %-56s║\n", version.String())
		fmt.Println("  ║   Subsea Pipeline Lateral Buckling Assessment             ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Computes the axial force profile of a pipeline route and")
		fmt.Println("  checks it against the lateral buckle initiation force.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Thin and thick wall effective axial force")
		fmt.Println("    • Hot end and cold end friction envelope")
		fmt.Println("    • Buckle initiation force for four lateral modes")
		fmt.Println("    • CSV / XLSX results, PNG plots and a PDF report")
		fmt.Println()
		fmt.Println("  Use 'pipebuckle setup' to create a template input folder.")
		fmt.Println("  Use 'pipebuckle --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer log.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Sync()
		os.Exit(1)
	}
}

func init() {
	// A .env file may set the folder defaults
	_ = godotenv.Load()

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&inputDir, "config", "c", envOr("PIPE_INPUT_DIR", "input_data"), "Input folder with the parameter file and temperature profile")
	rootCmd.PersistentFlags().StringVarP(&reportsDir, "reports", "r", envOr("PIPE_REPORTS_DIR", "reports"), "Output folder for results, plots and reports")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
