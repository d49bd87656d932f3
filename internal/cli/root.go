package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmadsen/bracketstats/internal/analysis"
	"github.com/tmadsen/bracketstats/internal/logging"
	"github.com/tmadsen/bracketstats/internal/tourney"
	"github.com/tmadsen/bracketstats/internal/wiki"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagCatalog  string
	flagCacheDir string
	flagOutDir   string
	flagLogLevel string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracketstats",
		Short: "Analyze tournament bracket seedings from Wikipedia",
		Long: `A CLI tool to extract tournament brackets from Wikipedia pages and
analyze how teams perform relative to their seeding.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Tournament catalog JSON file (default: embedded catalog)")
	cmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "pages", "Directory for cached page source")
	cmd.PersistentFlags().StringVar(&flagOutDir, "out-dir", ".", "Directory for report output")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newTeamCmd())

	return cmd
}

// newAnalyzer wires the catalog, cache, and client into an analyzer.
func newAnalyzer() (*analysis.Analyzer, error) {
	logger := logging.New(os.Stderr, flagLogLevel, false)
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	provider := wiki.NewProvider(wiki.NewCache(flagCacheDir), wiki.NewClient(logger), logger)
	return analysis.New(catalog, provider, flagOutDir, logger), nil
}

func loadCatalog() (tourney.Catalog, error) {
	if flagCatalog == "" {
		return tourney.DefaultCatalog()
	}
	catalog, err := tourney.LoadCatalog(flagCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", flagCatalog, err)
	}
	return catalog, nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return ExitError
	}
	return ExitSuccess
}
