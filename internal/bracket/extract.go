package bracket

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tmadsen/bracketstats/internal/teamname"
	"github.com/tmadsen/bracketstats/internal/tourney"
	"github.com/tmadsen/bracketstats/internal/wikitext"
)

var (
	bracketPattern = regexp.MustCompile(`(?s)\{\{\w+Bracket.*?}}`)
	fieldSplit     = regexp.MustCompile(`\s*[|\n]\s*`)
	lineSplit      = regexp.MustCompile(`\s*\n\s*`)
	groupedField   = regexp.MustCompile(`^RD(\d+)-(seed|team|score)(\d+)`)
	aggregateField = regexp.MustCompile(`score.*-agg`)
)

// ExtractBrackets finds the bracket templates on a page. The page is first
// cleaned of markup noise and the disambiguator's replacements, so the
// returned bracket sources are already simplified. The disambiguator is
// returned for the later team-name passes over the same page.
func ExtractBrackets(content string, flags tourney.Flags) ([]string, *teamname.Disambiguator) {
	d := teamname.BuildDisambiguator(content, flags)
	content = wikitext.Clean(content, d.Replacement)
	var brackets []string
	for _, bracket := range bracketPattern.FindAllString(content, -1) {
		brackets = append(brackets, strings.TrimSuffix(strings.TrimPrefix(bracket, "{{"), "}}"))
	}
	return brackets, d
}

// GroupFields parcels a bracket's fields into matches. The result is indexed
// by round, then by match within the round; within a round, field number 2n-1
// plays field number 2n. Two-leg aggregate fields are skipped.
func GroupFields(bracket string) [][][]string {
	var grouped [][][]string
	for _, line := range fieldSplit.Split(bracket, -1) {
		matched := groupedField.FindStringSubmatch(line)
		if matched == nil || aggregateField.MatchString(line) {
			continue
		}
		round, _ := strconv.Atoi(matched[1])
		slot, _ := strconv.Atoi(matched[3])
		match := (slot + 1) / 2
		for len(grouped) <= round {
			grouped = append(grouped, nil)
		}
		for len(grouped[round]) <= match {
			grouped[round] = append(grouped[round], nil)
		}
		grouped[round][match] = append(grouped[round][match], line)
	}
	return grouped
}

// ParseNFL handles NFL brackets, which put an entire game on one line: the
// last six pipe fields are seed, team, score for each side.
func ParseNFL(bracket string, d *teamname.Disambiguator, obs *teamname.Observations) ([]Game, error) {
	var games []Game
	for _, line := range lineSplit.Split(bracket, -1) {
		pieces := strings.Split(strings.TrimRight(line, "|"), "|")
		if len(pieces) < 6 {
			continue
		}
		pieces = pieces[len(pieces)-6:]
		home, err := teamFromNFLPieces(pieces[0], pieces[1], pieces[2], d, obs)
		if err != nil {
			return nil, err
		}
		away, err := teamFromNFLPieces(pieces[3], pieces[4], pieces[5], d, obs)
		if err != nil {
			return nil, err
		}
		games = append(games, Game{home, away})
	}
	return games, nil
}
