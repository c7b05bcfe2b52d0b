package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchctl",
	Short: "Run the profile matching engine against JSON files",
	Long: `matchctl runs the scoring, rating and trend functions used by the job
workers on local JSON files. It is meant for checking a pool of profiles
without a running broker or database.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
