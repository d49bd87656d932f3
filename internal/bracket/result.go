// Package bracket extracts game results from the bracket templates used on
// tournament pages. A page yields zero or more {{..Bracket..}} invocations;
// each one is grouped into matches, and each match becomes one or more games
// of two seeded, scored teams.
package bracket

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tmadsen/bracketstats/internal/teamname"
)

// TeamResult is one team's result of a single game: seed, name, score.
type TeamResult struct {
	Seed  int
	Team  string
	Score int
}

var (
	embeddedSeedPattern = regexp.MustCompile(`^\d+\s+\D`)
	seedSplitPattern    = regexp.MustCompile(`^(\d+)\s+(.*)$`)
	nonDigitPattern     = regexp.MustCompile(`\D`)
)

// NewTeamResult builds a result. Some bracket authors fold the seed into the
// team field ("5 Duke"); when no seed was given separately, a leading number
// is split off as the seed.
func NewTeamResult(seed int, team string, score int) TeamResult {
	team = strings.TrimSpace(team)
	if seed == 0 && embeddedSeedPattern.MatchString(team) {
		groups := seedSplitPattern.FindStringSubmatch(team)
		seed, _ = strconv.Atoi(groups[1])
		team = groups[2]
	}
	return TeamResult{Seed: seed, Team: team, Score: score}
}

func (t TeamResult) String() string {
	return fmt.Sprintf("(%d) %s: %d", t.Seed, t.Team, t.Score)
}

// IsEmpty reports a placeholder slot: no team and no score.
func (t TeamResult) IsEmpty() bool {
	return t.Score == 0 && t.Team == ""
}

// Conference finds which conference the team belongs to, or "Unknown".
func (t TeamResult) Conference(conferences map[string][]string) string {
	names := make([]string, 0, len(conferences))
	for name := range conferences {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, team := range conferences[name] {
			if t.Team == team {
				return name
			}
		}
	}
	return "Unknown"
}

// teamFromNFLPieces parses the three pipe fields that describe one team of an
// NFL bracket line.
func teamFromNFLPieces(seed, name, score string, d *teamname.Disambiguator, obs *teamname.Observations) (TeamResult, error) {
	seedDigits := nonDigitPattern.ReplaceAllString(seed, "")
	seedOut := 0
	if seedDigits != "" {
		seedOut, _ = strconv.Atoi(seedDigits)
	}
	nameOut := teamname.Normalize(strings.TrimSpace(name), d, obs)
	nameOut = teamname.NormalizeProfessional(nameOut, "NFL")
	scoreOut, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return TeamResult{}, fmt.Errorf("parsing score %q: %w", score, err)
	}
	return NewTeamResult(seedOut, nameOut, scoreOut), nil
}

// Game is a single game, two team results. After assembly the winner is
// first unless the game was tied.
type Game [2]TeamResult
