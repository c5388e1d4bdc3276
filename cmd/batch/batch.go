// Package batch contains the directory consolidation command.
package batch

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/batch"
	"zahra/dld-analytics/internal/common"
	"zahra/dld-analytics/internal/fileutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/prepare"
)

// Cmd is the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Consolidate a directory of CSV exports into one file",
	Long: `Prepare every CSV file in a directory under the selected profile, merge the
results chronologically, apply the selected filters, and write one
consolidated CSV. The directory defaults to data.directory from the
configuration when --input is not given.`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	dir := root.SharedFlags.Input
	if dir == "" && root.Cfg != nil {
		dir = root.Cfg.Data.Directory
	}
	if dir == "" {
		root.Log.Fatal("Input directory is required (use --input or set data.directory)")
	}
	if !fileutils.DirectoryExists(dir) {
		root.Log.Fatalf("Input directory does not exist: %s", dir)
	}

	params := prepare.MetricParamsFromConfig(root.Cfg)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	profileDir := ""
	if root.Cfg != nil {
		profileDir = root.Cfg.Schema.ProfileDir
	}

	p := batch.NewProcessor(root.SharedFlags.Profile, profileDir, params, logger)
	merged, err := p.ProcessDirectory(dir)
	if err != nil {
		root.Log.Fatalf("Error consolidating directory: %v", err)
	}

	fs, err := root.BuildFilterSet()
	if err != nil {
		root.Log.Fatalf("Error parsing filters: %v", err)
	}
	filtered := prepare.Filter(merged, fs)

	if root.SharedFlags.Output != "" {
		if err := fileutils.EnsureDirectoryExists(root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error creating output directory: %v", err)
		}
	}

	name := batch.OutputFilename(root.SharedFlags.Profile, batch.Range(filtered))
	outFile := filepath.Join(root.SharedFlags.Output, name)
	if err := common.WriteTransactionsToCSV(filtered, outFile); err != nil {
		root.Log.Fatalf("Error writing consolidated CSV: %v", err)
	}

	root.Log.Infof("Consolidated %d records to %s", len(filtered), outFile)
}
