package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <group> <tournament> <team>",
		Short: "Summarize one team's record in one tournament",
		Long: `Collects every game the team played across the tournament's history,
grouped by the opponent's seed advantage, and fits the team's reseed. The
per-game lines are TikZ plot fragments for the interval figures.`,
		Args: cobra.ExactArgs(3),
		RunE: runTeam,
	}
}

func runTeam(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	perf, err := analyzer.Performance(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, diff := range sortedDiffs(perf.Wins) {
		fmt.Fprintf(out, `\addplot[dots](%d,1)node[%s]{\tiny%d};`+"\n",
			diff, anchor(diff, "below", "above"), perf.Wins[diff])
	}
	for _, diff := range sortedDiffs(perf.Losses) {
		fmt.Fprintf(out, `\addplot[dots](%d,0)node[%s]{\tiny%d};`+"\n",
			diff, anchor(diff, "above", "below"), perf.Losses[diff])
	}
	fmt.Fprintf(out, "%d wins, %d losses\n", total(perf.Wins), total(perf.Losses))
	fmt.Fprintf(out, "games=%d rate=%g reseed=%g\n", perf.Fit.Games, perf.Fit.Rate, perf.Fit.Reseed)
	return nil
}

// anchor alternates label placement so neighboring counts don't overlap.
func anchor(diff int, odd, even string) string {
	if diff%2 != 0 {
		return odd
	}
	return even
}

func sortedDiffs(counts map[int]int) []int {
	diffs := make([]int, 0, len(counts))
	for diff := range counts {
		diffs = append(diffs, diff)
	}
	sort.Ints(diffs)
	return diffs
}

func total(counts map[int]int) int {
	var n int
	for _, count := range counts {
		n += count
	}
	return n
}
