// Package analysis walks the tournament catalog, pulls each year's page,
// extracts the games, and writes the statistical reports: win/loss matrices
// by seed, per-team reseed tables, and state listings.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tmadsen/bracketstats/internal/bracket"
	"github.com/tmadsen/bracketstats/internal/report"
	"github.com/tmadsen/bracketstats/internal/stats"
	"github.com/tmadsen/bracketstats/internal/teamname"
	"github.com/tmadsen/bracketstats/internal/tourney"
	"github.com/tmadsen/bracketstats/internal/wiki"
)

// Grouper collapses team names into the key their outcomes accumulate
// under: the team itself, its state, or its timezone.
type Grouper func(team string) string

// Identity groups each team by itself.
func Identity(team string) string { return team }

// Analyzer ties the catalog, the page source, and the output directory
// together.
type Analyzer struct {
	Catalog      tourney.Catalog
	Provider     *wiki.Provider
	OutDir       string
	Logger       zerolog.Logger
	Observations *teamname.Observations
}

// New creates an analyzer writing under outDir.
func New(catalog tourney.Catalog, provider *wiki.Provider, outDir string, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		Catalog:      catalog,
		Provider:     provider,
		OutDir:       outDir,
		Logger:       logger,
		Observations: &teamname.Observations{},
	}
}

// years lists the years to process for a tournament. No year specification
// means the page has no year in its title; that is one fetch, not zero.
func (a *Analyzer) years(desc tourney.Description) []int {
	if desc.Years.IsZero() {
		return []int{0}
	}
	return desc.Years.Expand()
}

// Games returns one tournament year's games, winner first. A missing page
// is an empty year, not an error.
func (a *Analyzer) Games(ctx context.Context, desc tourney.Description, year int) ([]bracket.Game, error) {
	content, err := a.Provider.PageContent(ctx, desc, year)
	if errors.Is(err, wiki.ErrPageMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	games, tally, err := bracket.GamesFromPage(content, desc.ParseFlags(), a.Observations)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", desc.Directory(), year, err)
	}
	for reason, count := range tally {
		a.Logger.Debug().Str("tourney", desc.Directory()).Int("year", year).
			Str("reason", string(reason)).Int("count", count).Msg("skipped matches")
	}
	return games, nil
}

// updateReseeding records each game's signed seed difference for both teams.
// Games with an empty side or with two unseeded teams say nothing about
// seeding and are skipped.
func (a *Analyzer) updateReseeding(ctx context.Context, outcomes stats.Outcomes, desc tourney.Description, group Grouper) error {
	for _, year := range a.years(desc) {
		games, err := a.Games(ctx, desc, year)
		if err != nil {
			return err
		}
		for _, game := range games {
			if game[0].IsEmpty() || game[1].IsEmpty() || (game[0].Seed == 0 && game[1].Seed == 0) {
				continue
			}
			seedDiff := game[0].Seed - game[1].Seed // positive value is an upset
			outcomes.Get(group(game[0].Team)).Wins = append(outcomes.Get(group(game[0].Team)).Wins, -seedDiff)
			outcomes.Get(group(game[1].Team)).Losses = append(outcomes.Get(group(game[1].Team)).Losses, seedDiff)
		}
	}
	return nil
}

// reseedRows fits every accumulated outcome and returns the table sorted by
// team. An empty table gets a placeholder row so downstream plots have
// something to read.
func reseedRows(outcomes stats.Outcomes) []report.ReseedRow {
	rows := make([]report.ReseedRow, 0, len(outcomes))
	for team, outcome := range outcomes {
		fit := stats.CalcLogReg(outcome)
		rows = append(rows, report.ReseedRow{Team: team, Games: fit.Games, Rate: fit.Rate, Reseed: fit.Reseed})
	}
	if len(rows) == 0 {
		rows = append(rows, report.ReseedRow{Team: "NA"})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Games < rows[j].Games
	})
	return rows
}

// filteredReseedRows drops teams with few games or a saturated reseed; the
// leftovers are the teams whose fit means something.
func filteredReseedRows(rows []report.ReseedRow) []report.ReseedRow {
	var filtered []report.ReseedRow
	for _, row := range rows {
		if row.Games > 9 && row.Reseed > -10 && row.Reseed < 10 {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// subgroup resolves the catalog entries that belong to one tournament:
// the entry itself plus its renamed eras (trailing underscores).
func (a *Analyzer) subgroup(group, name string) ([]tourney.Description, error) {
	tourneyGroup, ok := a.Catalog[group]
	if !ok {
		return nil, fmt.Errorf("unknown group %q", group)
	}
	keys := make([]string, 0, len(tourneyGroup.Tourneys))
	for key := range tourneyGroup.Tourneys {
		if strings.TrimRight(key, "_") == name {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("unknown tournament %q in group %q", name, group)
	}
	sort.Strings(keys)
	descs := make([]tourney.Description, 0, len(keys))
	for _, key := range keys {
		desc, err := a.Catalog.Resolve(group, key)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

// baseNames lists a group's tournaments without their renamed-era variants,
// sorted.
func baseNames(tourneyGroup tourney.Group) []string {
	var names []string
	for key := range tourneyGroup.Tourneys {
		if !strings.HasSuffix(key, "_") {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

func (a *Analyzer) outPath(parts ...string) string {
	return filepath.Join(append([]string{a.OutDir}, parts...)...)
}

// tourneyResult carries one tournament's computed tables up to the group
// level.
type tourneyResult struct {
	winLoss *stats.WinLoss
	reseed  []report.ReseedRow
	states  []report.StateRow
}

// AnalyzeTourney computes and writes one tournament's reports: the win/loss
// matrix with its interval plot, reseed tables grouped by team, state, and
// timezone, and the team/state listing.
func (a *Analyzer) AnalyzeTourney(ctx context.Context, group, name string) (*tourneyResult, error) {
	descs, err := a.subgroup(group, name)
	if err != nil {
		return nil, err
	}
	dir := a.outPath(group, name)

	var winLoss stats.WinLoss
	for _, desc := range descs {
		for _, year := range a.years(desc) {
			games, err := a.Games(ctx, desc, year)
			if err != nil {
				return nil, err
			}
			for _, game := range games {
				winLoss.Add(game)
			}
		}
	}
	if err := report.WriteWinLoss(filepath.Join(dir, "winloss.csv"), &winLoss); err != nil {
		return nil, err
	}
	if err := report.WritePlot(filepath.Join(dir, "winlossplot.tex"), &winLoss); err != nil {
		return nil, err
	}

	groupers := []struct {
		label string
		group Grouper
	}{
		{"", Identity},
		{"state_", func(team string) string { return teamname.StateOf(team, group) }},
		{"tz_", func(team string) string { return teamname.TimezoneOf(team, group) }},
	}
	result := &tourneyResult{winLoss: &winLoss}
	for _, g := range groupers {
		outcomes := make(stats.Outcomes)
		for _, desc := range descs {
			if err := a.updateReseeding(ctx, outcomes, desc, g.group); err != nil {
				return nil, err
			}
		}
		rows := reseedRows(outcomes)
		if err := report.WriteCSV(filepath.Join(dir, g.label+"reseed.csv"), rows); err != nil {
			return nil, err
		}
		if g.label == "" {
			result.reseed = rows
		}
	}

	states, err := a.stateRows(ctx, group, descs)
	if err != nil {
		return nil, err
	}
	if err := report.WriteCSV(filepath.Join(dir, "state.csv"), states); err != nil {
		return nil, err
	}
	result.states = states
	return result, nil
}

// stateRows lists every team that appeared, its state, and how often each
// side of its games was seeded.
func (a *Analyzer) stateRows(ctx context.Context, group string, descs []tourney.Description) ([]report.StateRow, error) {
	byTeam := make(map[string]*report.StateRow)
	row := func(team string) *report.StateRow {
		r, ok := byTeam[team]
		if !ok {
			r = &report.StateRow{Team: team, State: teamname.StateOf(team, group)}
			byTeam[team] = r
		}
		return r
	}
	for _, desc := range descs {
		for _, year := range a.years(desc) {
			games, err := a.Games(ctx, desc, year)
			if err != nil {
				return nil, err
			}
			for _, game := range games {
				first, second := row(game[0].Team), row(game[1].Team)
				first.Total++
				second.Total++
				switch {
				case game[0].Seed != 0 && game[1].Seed != 0:
					first.BothSeeded++
					second.BothSeeded++
				case game[0].Seed != 0:
					first.Seeded++
					second.OppSeeded++
				case game[1].Seed != 0:
					first.OppSeeded++
					second.Seeded++
				default:
					first.NotSeeded++
					second.NotSeeded++
				}
			}
		}
	}
	rows := make([]report.StateRow, 0, len(byTeam))
	for _, r := range byTeam {
		rows = append(rows, *r)
	}
	sortStateRows(rows)
	return rows, nil
}

func sortStateRows(rows []report.StateRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].State != rows[j].State {
			return rows[i].State < rows[j].State
		}
		if rows[i].Total != rows[j].Total {
			return rows[i].Total < rows[j].Total
		}
		return rows[i].Team < rows[j].Team
	})
}
