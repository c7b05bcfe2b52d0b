package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/matching"
	"alumni-connect-workers/internal/models"
)

var (
	rateProfile  string
	rateCounters string
	rateOut      string
)

type rateOutput struct {
	matching.ProfileRating
	Insights []string `json:"insights"`
}

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate a profile on completeness, engagement, expertise and network",
	Long: `Rates a single profile. Activity counters are optional; without them
every counter is treated as zero.`,
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVarP(&rateProfile, "profile", "p", "", "Path to the profile JSON")
	rateCmd.Flags().StringVar(&rateCounters, "counters", "", "Path to the activity counters JSON")
	rateCmd.Flags().StringVarP(&rateOut, "out", "o", "", "Output file (default stdout)")

	if err := rateCmd.MarkFlagRequired("profile"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(rateProfile)
	if err != nil {
		return err
	}

	var counters models.ActivityCounters
	if rateCounters != "" {
		if err := readJSON(rateCounters, &counters); err != nil {
			return err
		}
		if err := counters.Validate(); err != nil {
			return fmt.Errorf("%s: %w", rateCounters, err)
		}
	}

	rating := matching.Rate(profile, counters)
	return writeOutput(cmd.OutOrStdout(), rateOut, rateOutput{
		ProfileRating: rating,
		Insights:      matching.RatingInsights(rating),
	})
}
