// Package main is the entry point of the catalog cleaner.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build the cleaned product catalog",
	Long: `Reads the scraped product CSV, reuses curated reference entries matched by ASIN,
generates descriptions and skin-concern labels for everything else, and writes the cleaned catalog CSV.

Configuration comes from the environment and the first existing .env file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), os.Stderr)
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
