package bracket

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmadsen/bracketstats/internal/teamname"
	"github.com/tmadsen/bracketstats/internal/tourney"
)

// SkipReason marks a match that carries no usable game data. These are
// normal on real pages (empty slots, byes, future rounds) and are tallied
// rather than treated as failures.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipNoScores     SkipReason = "no scores"
	SkipMissingScore SkipReason = "missing score"
	SkipMissingData  SkipReason = "missing data"
)

// ErrScoreCountMismatch means the two sides of a series reported a different
// number of games. That is a defect in the page, not a skippable gap.
var ErrScoreCountMismatch = errors.New("differing number of scores")

// ErrNotTwoSides means a match's fields didn't resolve to exactly two teams.
var ErrNotTwoSides = errors.New("match does not have two sides")

var (
	matchField       = regexp.MustCompile(`RD(\d+)-(team|seed|scores?)(\d+).*=(.*)$`)
	seedDigit        = regexp.MustCompile(`\d`)
	parenSeed        = regexp.MustCompile(`\((\d+)\)`)
	seedRange        = regexp.MustCompile(`^(\d+)-(\d+)$`)
	errUnmatchedLine = errors.New("field line does not parse")
)

// matchSide accumulates one team's fields of a match while the bracket's
// lines are parceled out. Sides keep the order their first field appeared in.
type matchSide struct {
	round, slot string
	team        string
	seedRaw     string
	hasSeed     bool
	seed        int
	scores      []int
}

func (s *matchSide) hasMatchData() bool {
	return s.team != "" || s.seed != 0 || len(s.scores) > 0
}

// result copies the side's identity onto its k-th score, turning one series
// entry into a single game's result.
func (s *matchSide) result(k int) TeamResult {
	return NewTeamResult(s.seed, s.team, s.scores[k])
}

// collectMatch parses a match's field lines into per-team sides.
func collectMatch(lines []string, flags tourney.Flags, d *teamname.Disambiguator, obs *teamname.Observations) ([]*matchSide, error) {
	var sides []*matchSide
	lookup := func(round, slot string) *matchSide {
		for _, side := range sides {
			if side.round == round && side.slot == slot {
				return side
			}
		}
		side := &matchSide{round: round, slot: slot}
		sides = append(sides, side)
		return side
	}
	for _, line := range lines {
		matched := matchField.FindStringSubmatch(line)
		if matched == nil {
			return nil, errUnmatchedLine
		}
		side := lookup(strings.TrimLeft(matched[1], "0"), strings.TrimLeft(matched[3], "0"))
		value := strings.TrimSpace(matched[4])
		switch kind := matched[2]; {
		case kind == "team":
			if flags.IsTennis {
				side.team = "tennis"
			} else {
				side.team = teamname.Normalize(value, d, obs)
				if flags.IsProfessional {
					side.team = teamname.NormalizeProfessional(side.team, flags.League)
				}
			}
		case kind == "seed":
			side.seedRaw = value
			side.hasSeed = true
		case strings.HasPrefix(kind, "score"):
			score, err := strconv.Atoi(strings.Trim(value, "*† (OT)"))
			if err != nil {
				score = 0
			}
			side.scores = append(side.scores, score)
		}
	}
	return sides, nil
}

// defaultSeeding is the conventional round-1 seed allocation, indexed by
// field number. See Module:Team_bracket/doc on Wikipedia: "For round 1, this
// value defaults to the conventional seed allocation for tournaments."
var defaultSeeding = map[int][]int{
	2:  {1, 2},
	3:  {2, 3},
	4:  {1, 4, 3, 2},
	6:  {4, 5, 3, 6, 1, 2},
	8:  {1, 8, 4, 5, 2, 7, 3, 6},
	11: {8, 9, 7, 10, 6, 11},
	16: {1, 16, 8, 9, 5, 12, 4, 13, 6, 11, 3, 14, 7, 10, 2, 15},
}

// fixSeeding turns the raw seed field into a number. Parenthesized seeds and
// seed ranges (tennis) take their first number; anything else keeps its
// digits. Seeds are clamped to MaxSeed. A round-1 side with no seed field at
// all gets the template's default allocation.
func fixSeeding(side *matchSide, flags tourney.Flags) {
	switch {
	case side.hasSeed && seedDigit.MatchString(side.seedRaw):
		if all := parenSeed.FindAllStringSubmatch(side.seedRaw, -1); all != nil {
			side.seed, _ = strconv.Atoi(all[len(all)-1][1])
		} else if m := seedRange.FindStringSubmatch(side.seedRaw); m != nil {
			side.seed, _ = strconv.Atoi(m[1])
		} else {
			side.seed, _ = strconv.Atoi(nonDigitPattern.ReplaceAllString(side.seedRaw, ""))
		}
		if side.seed > tourney.MaxSeed {
			side.seed = tourney.MaxSeed
		}
	case flags.NumTeams != -1 && !side.hasSeed && side.round == "1":
		allocation := defaultSeeding[flags.NumTeams]
		slot, _ := strconv.Atoi(side.slot)
		if slot >= 1 && slot <= len(allocation) {
			side.seed = allocation[slot-1]
		}
	default:
		side.seed = 0
	}
}

// AssembleMatch converts one match's field lines into games. A best-of
// series becomes one game per score column. Gaps in the data return a
// SkipReason; structural defects return an error.
func AssembleMatch(lines []string, flags tourney.Flags, d *teamname.Disambiguator, obs *teamname.Observations) ([]Game, SkipReason, error) {
	sides, err := collectMatch(lines, flags, d, obs)
	if err != nil {
		return nil, SkipNone, err
	}
	for _, side := range sides {
		fixSeeding(side, flags)
	}
	withScores := 0
	for _, side := range sides {
		if len(side.scores) > 0 {
			withScores++
		}
	}
	if withScores == 0 {
		return nil, SkipNoScores, nil
	}
	if withScores < len(sides) {
		return nil, SkipMissingScore, nil
	}
	for _, side := range sides {
		if !side.hasMatchData() {
			return nil, SkipMissingData, nil
		}
	}
	for _, side := range sides[1:] {
		if len(side.scores) != len(sides[0].scores) {
			return nil, SkipNone, ErrScoreCountMismatch
		}
	}
	if len(sides) != 2 {
		return nil, SkipNone, ErrNotTwoSides
	}
	a, b := sides[0], sides[1]
	if flags.MultiElim && len(a.scores) == 1 && max(a.scores[0], b.scores[0]) < 5 {
		// multiple elimination with only one game present; the "scores"
		// are really game counts
		wonA, wonB := a.scores[0], b.scores[0]
		a.scores, b.scores = nil, nil
		for i := 0; i < wonA; i++ {
			a.scores = append(a.scores, 1)
			b.scores = append(b.scores, 0)
		}
		for i := 0; i < wonB; i++ {
			a.scores = append(a.scores, 0)
			b.scores = append(b.scores, 1)
		}
	}
	games := make([]Game, len(a.scores))
	for k := range a.scores {
		games[k] = Game{a.result(k), b.result(k)}
	}
	return games, SkipNone, nil
}
