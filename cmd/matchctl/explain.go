package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/matching"
)

var (
	explainRequester string
	explainCandidate string
	explainOut       string
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain the score between two profiles",
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().StringVarP(&explainRequester, "requester", "r", "", "Path to the requester profile JSON")
	explainCmd.Flags().StringVarP(&explainCandidate, "candidate", "c", "", "Path to the candidate profile JSON")
	explainCmd.Flags().StringVarP(&explainOut, "out", "o", "", "Output file (default stdout)")

	if err := explainCmd.MarkFlagRequired("requester"); err != nil {
		panic(err)
	}
	if err := explainCmd.MarkFlagRequired("candidate"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	requester, err := readProfile(explainRequester)
	if err != nil {
		return err
	}
	candidate, err := readProfile(explainCandidate)
	if err != nil {
		return err
	}
	if requester.ID == candidate.ID {
		return fmt.Errorf("requester and candidate are the same profile %q", requester.ID)
	}
	return writeOutput(cmd.OutOrStdout(), explainOut, matching.Explain(requester, candidate))
}
