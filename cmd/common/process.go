// Package common provides the shared load-prepare-filter step used by the
// analysis commands.
package common

import (
	"fmt"

	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/internal/fileutils"
	"zahra/dld-analytics/internal/logging"
	"zahra/dld-analytics/internal/models"
	"zahra/dld-analytics/internal/prepare"
)

// LoadFiltered runs the preparation pipeline on the input file named by the
// shared flags and applies the flag-selected filters. It returns both the
// full prepared table and the filtered subset.
func LoadFiltered() (all, filtered []models.Transaction, err error) {
	if root.SharedFlags.Input == "" {
		return nil, nil, fmt.Errorf("input file is required (use --input)")
	}
	if !fileutils.FileExists(root.SharedFlags.Input) {
		return nil, nil, fmt.Errorf("input file does not exist: %s", root.SharedFlags.Input)
	}

	params := prepare.MetricParamsFromConfig(root.Cfg)
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	profileDir := ""
	if root.Cfg != nil {
		profileDir = root.Cfg.Schema.ProfileDir
	}

	all, err = prepare.PrepareFile(root.SharedFlags.Input, root.SharedFlags.Profile, profileDir, params, logger)
	if err != nil {
		return nil, nil, err
	}

	fs, err := root.BuildFilterSet()
	if err != nil {
		return nil, nil, err
	}

	filtered = prepare.Filter(all, fs)
	return all, filtered, nil
}
