// Package validate contains the schema validation command.
package validate

import (
	"encoding/csv"
	"os"

	"github.com/spf13/cobra"

	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/schema"
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a CSV header against a dataset profile",
	Long: `Check that an input CSV carries every column the selected dataset profile
requires, without loading the full file.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}

	profileDir := ""
	if root.Cfg != nil {
		profileDir = root.Cfg.Schema.ProfileDir
	}

	sch, err := schema.Resolve(root.SharedFlags.Profile, profileDir)
	if err != nil {
		root.Log.Fatalf("Error resolving schema profile: %v", err)
	}

	file, err := os.Open(root.SharedFlags.Input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		root.Log.Fatalf("Error opening input file: %v", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.Warnf("Failed to close file: %v", err)
		}
	}()

	header, err := csv.NewReader(file).Read()
	if err != nil {
		root.Log.Fatalf("Error reading CSV header: %v", err)
	}

	if err := sch.Validate(header, root.SharedFlags.Input); err != nil {
		root.Log.Fatalf("Validation failed: %v", err)
	}

	root.Log.Infof("%s is valid for the %s profile", root.SharedFlags.Input, sch.Name)
}
