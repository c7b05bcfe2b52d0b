package main

import (
	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/matching"
)

var (
	matchRequester  string
	matchCandidates string
	matchLimit      int
	matchOut        string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a requester against a list of candidates",
	Long:  "Scores every candidate against the requester and prints them best first.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchRequester, "requester", "r", "", "Path to the requester profile JSON")
	matchCmd.Flags().StringVarP(&matchCandidates, "candidates", "c", "", "Path to a JSON array of candidate profiles")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 0, "Keep only the top N matches (0 keeps all)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Output file (default stdout)")

	if err := matchCmd.MarkFlagRequired("requester"); err != nil {
		panic(err)
	}
	if err := matchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	requester, err := readProfile(matchRequester)
	if err != nil {
		return err
	}
	candidates, err := readPool(matchCandidates)
	if err != nil {
		return err
	}

	scores := matching.Match(requester, candidates)
	if matchLimit > 0 && len(scores) > matchLimit {
		scores = scores[:matchLimit]
	}
	return writeOutput(cmd.OutOrStdout(), matchOut, scores)
}
