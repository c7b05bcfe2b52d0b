package main

import (
	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

var (
	trendsPopulation string
	trendsBranch     string
	trendsOut        string
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Aggregate skill statistics over a population",
	Long: `Counts skills across the population. With --branch the output is the
viewer's skills view for that branch instead of the full report.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().StringVarP(&trendsPopulation, "population", "p", "", "Path to a JSON array of profiles")
	trendsCmd.Flags().StringVarP(&trendsBranch, "branch", "b", "", "Slice the report for this branch")
	trendsCmd.Flags().StringVarP(&trendsOut, "out", "o", "", "Output file (default stdout)")

	if err := trendsCmd.MarkFlagRequired("population"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	var population []models.Profile
	if err := readJSON(trendsPopulation, &population); err != nil {
		return err
	}

	report := matching.AnalyzeTrends(population)
	if trendsBranch != "" {
		return writeOutput(cmd.OutOrStdout(), trendsOut, matching.NewSkillsView(report, trendsBranch))
	}
	return writeOutput(cmd.OutOrStdout(), trendsOut, report)
}
