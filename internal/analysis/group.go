package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tmadsen/bracketstats/internal/report"
	"github.com/tmadsen/bracketstats/internal/stats"
	"github.com/tmadsen/bracketstats/internal/teamname"
	"github.com/tmadsen/bracketstats/internal/tourney"
)

// groupResult carries a group's aggregates up to the overall level.
type groupResult struct {
	winLoss      *stats.WinLoss
	reseedApprox []report.ReseedRow
	states       []report.StateRow
}

// AnalyzeGroup runs every tournament of one group and writes the group-level
// aggregates beside the per-tournament directories.
func (a *Analyzer) AnalyzeGroup(ctx context.Context, group string) (*groupResult, error) {
	tourneyGroup, ok := a.Catalog[group]
	if !ok {
		return nil, fmt.Errorf("unknown group %q", group)
	}
	names := baseNames(tourneyGroup)

	var groupWinLoss stats.WinLoss
	var tourneyReseeds [][]report.ReseedRow
	var allStates []report.StateRow
	var betas []report.GroupBetaRow
	for _, name := range names {
		result, err := a.AnalyzeTourney(ctx, group, name)
		if err != nil {
			return nil, err
		}
		groupWinLoss.Merge(result.winLoss)
		tourneyReseeds = append(tourneyReseeds, result.reseed)
		allStates = append(allStates, result.states...)
		fit := stats.AnalyzeWinLoss(result.winLoss)
		if beta := -fit.Rate; beta > 0 {
			betas = append(betas, report.GroupBetaRow{
				Conference: name,
				Games:      fit.Games,
				Rate:       beta,
				IsNational: boolToInt(inList(tourneyGroup.Nonconference, name)),
			})
		}
	}

	if err := report.WriteWinLoss(a.outPath(group, "winloss.csv"), &groupWinLoss); err != nil {
		return nil, err
	}
	if err := report.WritePlot(a.outPath(group, "winlossplot.tex"), &groupWinLoss); err != nil {
		return nil, err
	}
	fit := stats.AnalyzeWinLoss(&groupWinLoss)
	a.Logger.Info().Str("group", group).Int("games", fit.Games).
		Float64("rate", fit.Rate).Float64("lossPerGame", fit.LossPerGame).Msg("group win/loss fit")

	approx := aggregateReseed(tourneyReseeds)
	if err := report.WriteCSV(a.outPath(group, "reseed_approx.csv"), approx); err != nil {
		return nil, err
	}
	states := aggregateStates(allStates)
	if err := report.WriteCSV(a.outPath(group, "state.csv"), states); err != nil {
		return nil, err
	}
	sort.Slice(betas, func(i, j int) bool { return betas[i].Rate > betas[j].Rate })
	if err := report.WriteCSV(a.outPath(group, "group_betas.csv"), betas); err != nil {
		return nil, err
	}

	if err := a.writeGroupReseeding(ctx, group, tourneyGroup); err != nil {
		return nil, err
	}
	if group != "other" && group != "professional" {
		if err := a.analyzeConferences(ctx, group, tourneyGroup); err != nil {
			return nil, err
		}
	}
	return &groupResult{winLoss: &groupWinLoss, reseedApprox: approx, states: states}, nil
}

// writeGroupReseeding accumulates outcomes across every tournament of the
// group, grouped by team, state, and timezone.
func (a *Analyzer) writeGroupReseeding(ctx context.Context, group string, tourneyGroup tourney.Group) error {
	groupers := []struct {
		label string
		group Grouper
	}{
		{"", Identity},
		{"state_", func(team string) string { return teamname.StateOf(team, group) }},
		{"tz_", func(team string) string { return teamname.TimezoneOf(team, group) }},
	}
	keys := sortedTourneyKeys(tourneyGroup)
	for _, g := range groupers {
		outcomes := make(stats.Outcomes)
		for _, key := range keys {
			desc, err := a.Catalog.Resolve(group, key)
			if err != nil {
				return err
			}
			if err := a.updateReseeding(ctx, outcomes, desc, g.group); err != nil {
				return err
			}
		}
		rows := reseedRows(outcomes)
		if err := report.WriteCSV(a.outPath(group, g.label+"reseed.csv"), rows); err != nil {
			return err
		}
		if g.label == "" {
			if err := report.WriteCSV(a.outPath(group, "reseed_filtered.csv"), filteredReseedRows(rows)); err != nil {
				return err
			}
		}
	}
	return nil
}

// AnalyzeAll runs every group and writes the overall aggregates at the
// output root. Professional leagues keep their own reports but stay out of
// the overall reseed and state tables; franchises aren't universities.
func (a *Analyzer) AnalyzeAll(ctx context.Context) error {
	groups := make([]string, 0, len(a.Catalog))
	for group := range a.Catalog {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	var overall stats.WinLoss
	var reseedApprox [][]report.ReseedRow
	var allStates []report.StateRow
	for _, group := range groups {
		result, err := a.AnalyzeGroup(ctx, group)
		if err != nil {
			return err
		}
		overall.Merge(result.winLoss)
		if group != "professional" {
			reseedApprox = append(reseedApprox, result.reseedApprox)
			allStates = append(allStates, result.states...)
		}
	}
	if err := report.WriteWinLoss(a.outPath("winloss.csv"), &overall); err != nil {
		return err
	}
	if err := report.WritePlot(a.outPath("winlossplot.tex"), &overall); err != nil {
		return err
	}
	if err := report.WriteCSV(a.outPath("reseed_approx.csv"), aggregateReseed(reseedApprox)); err != nil {
		return err
	}
	if err := report.WriteCSV(a.outPath("state.csv"), aggregateStates(allStates)); err != nil {
		return err
	}
	if err := a.writeOverallReseeding(ctx, groups); err != nil {
		return err
	}
	fit := stats.AnalyzeWinLoss(&overall)
	a.Logger.Info().Int("games", overall.Total()).Int("ranked", overall.RankedTotal()).
		Float64("rate", fit.Rate).Float64("lossPerGame", fit.LossPerGame).Msg("overall win/loss fit")
	return nil
}

func (a *Analyzer) writeOverallReseeding(ctx context.Context, groups []string) error {
	type labeled struct {
		label string
		group func(team, group string) string
	}
	groupers := []labeled{
		{"", func(team, _ string) string { return team }},
		{"state_", teamname.StateOf},
		{"tz_", teamname.TimezoneOf},
	}
	for _, g := range groupers {
		outcomes := make(stats.Outcomes)
		for _, group := range groups {
			if group == "professional" {
				continue
			}
			for _, key := range sortedTourneyKeys(a.Catalog[group]) {
				desc, err := a.Catalog.Resolve(group, key)
				if err != nil {
					return err
				}
				grouper := func(team string) string { return g.group(team, group) }
				if err := a.updateReseeding(ctx, outcomes, desc, grouper); err != nil {
					return err
				}
			}
		}
		rows := reseedRows(outcomes)
		if err := report.WriteCSV(a.outPath(g.label+"reseed.csv"), rows); err != nil {
			return err
		}
		if g.label == "" {
			if err := report.WriteCSV(a.outPath("reseed_filtered.csv"), filteredReseedRows(rows)); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyzeConferences measures how conferences fare against each other in the
// national tournaments. Conference membership changes over the years; each
// year's conference tournament fields determine that year's membership.
func (a *Analyzer) analyzeConferences(ctx context.Context, group string, tourneyGroup tourney.Group) error {
	years := make(map[int][]string)
	for _, key := range sortedTourneyKeys(tourneyGroup) {
		desc := tourneyGroup.Tourneys[key]
		if desc.Years.IsZero() {
			continue
		}
		for _, year := range desc.Years.Expand() {
			years[year] = append(years[year], key)
		}
	}
	yearList := make([]int, 0, len(years))
	for year := range years {
		yearList = append(yearList, year)
	}
	sort.Ints(yearList)

	outcomes := make(stats.Outcomes)
	for _, year := range yearList {
		conferences := make(map[string][]string)
		seen := make(map[string]map[string]bool)
		for _, key := range years[year] {
			trimmed := strings.TrimRight(key, "_")
			if tourneyGroup.IsNational(key) {
				continue
			}
			desc, err := a.Catalog.Resolve(group, key)
			if err != nil {
				return err
			}
			desc.IsNational = false
			games, err := a.Games(ctx, desc, year)
			if err != nil {
				return err
			}
			if seen[trimmed] == nil {
				seen[trimmed] = make(map[string]bool)
			}
			for _, game := range games {
				for _, side := range game {
					if !seen[trimmed][side.Team] {
						seen[trimmed][side.Team] = true
						conferences[trimmed] = append(conferences[trimmed], side.Team)
					}
				}
			}
		}
		for _, key := range years[year] {
			if !tourneyGroup.IsNational(key) || len(tourneyGroup.Nonconference) == 0 {
				continue
			}
			desc, err := a.Catalog.Resolve(group, key)
			if err != nil {
				return err
			}
			desc.IsNational = true
			games, err := a.Games(ctx, desc, year)
			if err != nil {
				return err
			}
			for _, game := range games {
				if game[0].Seed == 0 || game[1].Seed == 0 {
					continue
				}
				confWinner := game[0].Conference(conferences)
				confLoser := game[1].Conference(conferences)
				if confWinner == confLoser {
					continue
				}
				seedDiff := game[0].Seed - game[1].Seed // positive value is an upset
				outcomes.Get(confWinner).Wins = append(outcomes.Get(confWinner).Wins, -seedDiff)
				outcomes.Get(confLoser).Losses = append(outcomes.Get(confLoser).Losses, seedDiff)
			}
		}
	}
	rows := make([]report.ConferenceRow, 0, len(outcomes))
	for conference, outcome := range outcomes {
		fit := stats.CalcLogReg(outcome)
		rows = append(rows, report.ConferenceRow{
			Conference: conference,
			Games:      fit.Games,
			Rate:       fit.Rate,
			Reseed:     fit.Reseed,
			IsKnown:    boolToInt(conference != "Unknown"),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, report.ConferenceRow{Conference: "Unknown"})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Conference != rows[j].Conference {
			return rows[i].Conference < rows[j].Conference
		}
		return rows[i].Games < rows[j].Games
	})
	return report.WriteCSV(a.outPath(group, "conf_reseed.csv"), rows)
}

// TeamPerformance summarizes one team's record in one tournament: win and
// loss counts by the opponent's seed advantage, plus the fitted reseed.
type TeamPerformance struct {
	Wins   map[int]int
	Losses map[int]int
	Fit    stats.Regression
}

// Performance collects a team's games across a tournament's whole history.
func (a *Analyzer) Performance(ctx context.Context, group, name, team string) (*TeamPerformance, error) {
	desc, err := a.Catalog.Resolve(group, name)
	if err != nil {
		return nil, err
	}
	perf := &TeamPerformance{Wins: make(map[int]int), Losses: make(map[int]int)}
	outcome := &stats.Outcome{}
	for _, year := range a.years(desc) {
		games, err := a.Games(ctx, desc, year)
		if err != nil {
			return nil, err
		}
		for _, game := range games {
			if game[0].Team == team {
				diff := game[1].Seed - game[0].Seed
				perf.Wins[diff]++
				outcome.Wins = append(outcome.Wins, diff)
			}
			if game[1].Team == team {
				diff := game[0].Seed - game[1].Seed
				perf.Losses[diff]++
				outcome.Losses = append(outcome.Losses, diff)
			}
		}
	}
	perf.Fit = stats.CalcLogReg(outcome)
	return perf, nil
}

// aggregateReseed combines several reseed tables into one games-weighted
// table per team.
func aggregateReseed(tables [][]report.ReseedRow) []report.ReseedRow {
	type sums struct {
		games        int
		rate, reseed float64
	}
	byTeam := make(map[string]*sums)
	for _, table := range tables {
		for _, row := range table {
			s, ok := byTeam[row.Team]
			if !ok {
				s = &sums{}
				byTeam[row.Team] = s
			}
			s.games += row.Games
			s.rate += float64(row.Games) * row.Rate
			s.reseed += float64(row.Games) * row.Reseed
		}
	}
	rows := make([]report.ReseedRow, 0, len(byTeam))
	for team, s := range byTeam {
		games := s.games
		if games < 1 {
			games = 1
		}
		rows = append(rows, report.ReseedRow{
			Team:   team,
			Games:  games,
			Rate:   s.rate / float64(games),
			Reseed: s.reseed / float64(games),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}

// aggregateStates sums state listings grouped by team and state.
func aggregateStates(rows []report.StateRow) []report.StateRow {
	type key struct{ team, state string }
	byKey := make(map[key]*report.StateRow)
	for _, row := range rows {
		k := key{row.Team, row.State}
		r, ok := byKey[k]
		if !ok {
			copied := report.StateRow{Team: row.Team, State: row.State}
			byKey[k] = &copied
			r = byKey[k]
		}
		r.Total += row.Total
		r.BothSeeded += row.BothSeeded
		r.Seeded += row.Seeded
		r.OppSeeded += row.OppSeeded
		r.NotSeeded += row.NotSeeded
	}
	combined := make([]report.StateRow, 0, len(byKey))
	for _, r := range byKey {
		combined = append(combined, *r)
	}
	sortStateRows(combined)
	return combined
}

func sortedTourneyKeys(g tourney.Group) []string {
	keys := make([]string, 0, len(g.Tourneys))
	for key := range g.Tourneys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func inList(list []string, name string) bool {
	for _, entry := range list {
		if entry == name {
			return true
		}
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
