package main

import (
	"github.com/spf13/cobra"

	"alumni-connect-workers/internal/matching"
)

var (
	recommendRequester string
	recommendPool      string
	recommendExclude   []string
	recommendView      bool
	recommendOut       string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Build connection, peer and mentor recommendations",
	Long: `Ranks the pool against the requester and splits the ranking into
connect-with, similar-profile and mentor buckets. --view prints the trimmed
dashboard form instead.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendRequester, "requester", "r", "", "Path to the requester profile JSON")
	recommendCmd.Flags().StringVarP(&recommendPool, "pool", "p", "", "Path to a JSON array of pool profiles")
	recommendCmd.Flags().StringSliceVarP(&recommendExclude, "exclude", "x", nil, "Profile ids to leave out (comma separated)")
	recommendCmd.Flags().BoolVar(&recommendView, "view", false, "Print the dashboard view")
	recommendCmd.Flags().StringVarP(&recommendOut, "out", "o", "", "Output file (default stdout)")

	if err := recommendCmd.MarkFlagRequired("requester"); err != nil {
		panic(err)
	}
	if err := recommendCmd.MarkFlagRequired("pool"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	requester, err := readProfile(recommendRequester)
	if err != nil {
		return err
	}
	pool, err := readPool(recommendPool)
	if err != nil {
		return err
	}

	recs := matching.Recommend(requester, pool, recommendExclude)
	if recommendView {
		return writeOutput(cmd.OutOrStdout(), recommendOut, matching.NewConnectionsView(recs))
	}
	return writeOutput(cmd.OutOrStdout(), recommendOut, recs)
}
