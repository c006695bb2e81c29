package main

import (
	"github.com/spf13/cobra"

	"github.com/Mehrdad93/baybe/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "baybe",
	Short: "Target lookup and imputation engine",
	Long: `baybe resolves target values for batches of proposed experimental
parameter settings: by exact matching against a table of previous
measurements, by calling a result-computing function, or by statistical
fallback when no match exists.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("baybe version {{.Version}}\n")
}
