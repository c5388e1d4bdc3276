// Package main provides the entry point for the dld-analytics CLI application.
package main

import (
	"zahra/dld-analytics/cmd/analyze"
	"zahra/dld-analytics/cmd/batch"
	"zahra/dld-analytics/cmd/dice"
	"zahra/dld-analytics/cmd/export"
	"zahra/dld-analytics/cmd/guess"
	"zahra/dld-analytics/cmd/report"
	"zahra/dld-analytics/cmd/root"
	"zahra/dld-analytics/cmd/validate"
)

func init() {
	// Initialize root command flags
	root.Init()

	// Add all subcommands
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(dice.Cmd)
	root.Cmd.AddCommand(guess.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
