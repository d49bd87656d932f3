package bracket

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmadsen/bracketstats/internal/teamname"
	"github.com/tmadsen/bracketstats/internal/tourney"
)

var (
	numTeamsPattern = regexp.MustCompile(`^(\d+)TeamBracket\W`)
	noSeedsParam    = regexp.MustCompile(`\|\s*seeds\s*=\s*n`)
)

// Tally counts the matches skipped per reason while a page was processed.
type Tally map[SkipReason]int

// GamesFromPage extracts every game from a page's brackets. Each returned
// game has the winner first; tied games keep their bracket order. Skipped
// matches are tallied, structural defects abort with an error.
func GamesFromPage(content string, flags tourney.Flags, obs *teamname.Observations) ([]Game, Tally, error) {
	brackets, d := ExtractBrackets(content, flags)
	var games []Game
	tally := make(Tally)
	for _, bracket := range brackets {
		flags.NumTeams = -1
		if m := numTeamsPattern.FindStringSubmatch(bracket); m != nil &&
			!strings.Contains(bracket, "TeamBracket-NoSeeds") &&
			!noSeedsParam.MatchString(bracket) {
			flags.NumTeams, _ = strconv.Atoi(m[1])
		}
		if strings.Contains(bracket, "TeamBracket-NFL") {
			nflGames, err := ParseNFL(bracket, d, obs)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing NFL bracket: %w", err)
			}
			games = append(games, nflGames...)
			continue
		}
		for _, round := range GroupFields(bracket) {
			for _, lines := range round {
				if len(lines) == 0 {
					// unused index-0 placeholder from GroupFields
					continue
				}
				matchGames, skip, err := AssembleMatch(lines, flags, d, obs)
				if err != nil {
					return nil, nil, fmt.Errorf("assembling match: %w", err)
				}
				if skip != SkipNone {
					tally[skip]++
					continue
				}
				games = append(games, matchGames...)
			}
		}
	}
	for i, game := range games {
		if game[0].Score < game[1].Score {
			games[i] = Game{game[1], game[0]}
		}
	}
	return games, tally, nil
}
