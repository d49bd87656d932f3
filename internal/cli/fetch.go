package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmadsen/bracketstats/internal/wiki"
)

var flagFetchWorkers int

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [group]",
		Short: "Warm the page cache",
		Long: `Downloads every tournament page the catalog names into the cache
directory without analyzing anything. Pages already cached and fresh are
left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFetch,
	}
	cmd.Flags().IntVar(&flagFetchWorkers, "workers", 4, "Concurrent page downloads")
	return cmd
}

func runFetch(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	groups := make([]string, 0, len(analyzer.Catalog))
	if len(args) == 1 {
		groups = append(groups, args[0])
	} else {
		for group := range analyzer.Catalog {
			groups = append(groups, group)
		}
		sort.Strings(groups)
	}

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(flagFetchWorkers)
	for _, group := range groups {
		tourneyGroup, ok := analyzer.Catalog[group]
		if !ok {
			continue
		}
		keys := make([]string, 0, len(tourneyGroup.Tourneys))
		for key := range tourneyGroup.Tourneys {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			desc, err := analyzer.Catalog.Resolve(group, key)
			if err != nil {
				return err
			}
			years := desc.Years.Expand()
			if len(years) == 0 {
				years = []int{0}
			}
			for _, year := range years {
				year := year
				eg.Go(func() error {
					_, err := analyzer.Provider.PageContent(ctx, desc, year)
					if errors.Is(err, wiki.ErrPageMissing) {
						return nil
					}
					return err
				})
			}
		}
	}
	return eg.Wait()
}
