package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/pipebuckle/internal/input"
	"github.com/alexiusacademia/pipebuckle/internal/log"
)

var (
	setupFormat string
	setupForce  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a template input folder",
	Long: `Write a template parameter file and temperature profile to the input
folder (--config). Edit both files, then run 'pipebuckle buckle'.

Examples:
  pipebuckle setup
  pipebuckle setup --config project/input --format ini
  pipebuckle setup --force`,
	Run: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringVar(&setupFormat, "format", "yaml", "Parameter file format: yaml, toml, ini or json")
	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Overwrite existing files")
}

func runSetup(cmd *cobra.Command, args []string) {
	switch setupFormat {
	case "yaml", "toml", "ini", "json":
	default:
		fmt.Printf("Error: unknown format %q (use yaml, toml, ini or json)\n", setupFormat)
		return
	}

	configPath := filepath.Join(inputDir, "inputs."+setupFormat)
	profilePath := filepath.Join(inputDir, input.ProfileNames[0])

	if !setupForce {
		for _, path := range []string{configPath, profilePath} {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Error: %s already exists (use --force to overwrite)\n", path)
				return
			}
		}
	}

	if err := input.WriteConfig(configPath, input.DefaultConfig()); err != nil {
		fmt.Printf("Error writing parameter file: %v\n", err)
		return
	}
	log.Infow("wrote parameter template", "path", configPath)

	if err := input.WriteTemperatureProfile(profilePath, input.DefaultTemperatureProfile()); err != nil {
		fmt.Printf("Error writing temperature profile: %v\n", err)
		return
	}
	log.Infow("wrote temperature profile template", "path", profilePath)

	fmt.Println()
	fmt.Println("INPUT FOLDER CREATED:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Parameters:           %s\n", configPath)
	fmt.Printf("  Temperature profile:  %s\n", profilePath)
	fmt.Println()
	fmt.Println("  Edit both files, then run 'pipebuckle buckle'.")
	fmt.Println()
}
