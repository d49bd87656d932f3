package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tmadsen/bracketstats/internal/report"
	"github.com/tmadsen/bracketstats/internal/teamname"
)

var flagNamesFile string

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [group [tournament]]",
		Short: "Extract brackets and write the seeding reports",
		Long: `Walks the tournament catalog, extracts every bracket, and writes the
win/loss matrices, reseed tables, and state listings as CSV files under the
output directory. With a group argument only that group is analyzed; with a
group and a tournament, only that tournament.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runAnalyze,
	}
	cmd.Flags().StringVar(&flagNamesFile, "names", "", "Also write the observed raw-to-canonical name map to this CSV file")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	switch len(args) {
	case 0:
		err = analyzer.AnalyzeAll(ctx)
	case 1:
		_, err = analyzer.AnalyzeGroup(ctx, args[0])
	case 2:
		_, err = analyzer.AnalyzeTourney(ctx, args[0], args[1])
	}
	if err != nil {
		return err
	}
	if flagNamesFile != "" {
		return writeNames(analyzer.Observations)
	}
	return nil
}

// writeNames dumps the observed raw spellings behind each canonical name.
// The worst offenders are a good place to look for normalization gaps.
func writeNames(obs *teamname.Observations) error {
	var rows []report.NameRow
	for _, canonical := range obs.Canonicals() {
		for _, raw := range obs.Spellings(canonical) {
			rows = append(rows, report.NameRow{
				Team:  canonical,
				Raw:   raw,
				Count: obs.Count(canonical, raw),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Count > rows[j].Count
	})
	if err := report.WriteCSV(flagNamesFile, rows); err != nil {
		return fmt.Errorf("writing name map: %w", err)
	}
	return nil
}
