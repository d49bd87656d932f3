// Package cli implements the command-line interface for bracketstats.
//
// The cli package provides the Cobra-based CLI with commands to analyze the
// tournament catalog, warm the Wikipedia page cache, and summarize a single
// team's record. It coordinates the wiki, analysis, and report packages.
package cli
