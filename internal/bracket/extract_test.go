package bracket

import (
	"strings"
	"testing"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

func TestExtractBrackets(t *testing.T) {
	page := `Intro prose.
{{4TeamBracket
| RD1-seed1=1 | RD1-team1=Duke | RD1-score1=70
}}
More prose.
{{16TeamBracket-Compact
| RD1-seed1=1
}}`
	brackets, d := ExtractBrackets(page, tourney.Flags{NumTeams: -1})
	if d == nil {
		t.Fatal("ExtractBrackets() returned nil disambiguator")
	}
	if len(brackets) != 2 {
		t.Fatalf("found %d brackets, want 2", len(brackets))
	}
	if !strings.HasPrefix(brackets[0], "4TeamBracket") {
		t.Errorf("first bracket = %q", brackets[0])
	}
	if !strings.HasPrefix(brackets[1], "16TeamBracket-Compact") {
		t.Errorf("second bracket = %q", brackets[1])
	}
}

func TestGroupFields(t *testing.T) {
	bracket := `4TeamBracket
| RD1-seed1=1 | RD1-team1=Duke | RD1-score1=70
| RD1-seed2=4 | RD1-team2=Lehigh | RD1-score2=60
| RD1-seed3=2 | RD1-team3=Kansas | RD1-score3=55
| RD1-seed4=3 | RD1-team4=Purdue | RD1-score4=50
| RD2-team1=Duke | RD2-score1=61
| RD2-team2=Kansas | RD2-score2=66
| RD2-score1-agg=131
`
	grouped := GroupFields(bracket)
	if len(grouped) != 3 {
		t.Fatalf("got %d rounds, want 3 (index 0 unused)", len(grouped))
	}
	if len(grouped[1]) != 3 {
		t.Fatalf("round 1 has %d matches, want 3 (index 0 unused)", len(grouped[1]))
	}
	// fields 1 and 2 belong to the first match, 3 and 4 to the second
	if len(grouped[1][1]) != 6 || len(grouped[1][2]) != 6 {
		t.Errorf("round 1 match sizes = %d, %d, want 6, 6", len(grouped[1][1]), len(grouped[1][2]))
	}
	for _, line := range grouped[2][1] {
		if strings.Contains(line, "agg") {
			t.Errorf("aggregate field %q should have been skipped", line)
		}
	}
	if len(grouped[2][1]) != 4 {
		t.Errorf("round 2 match has %d fields, want 4", len(grouped[2][1]))
	}
}

func TestParseNFL(t *testing.T) {
	bracket := `TeamBracket-NFL
| RD1-game1= | 3 | Buffalo Bills | 24 | 6 | Philadelphia Eagles | 17 |
| RD1-game2= | 2 | Green Bay Packers | 10 | 7 | Pittsburgh Steelers | 31 |`
	games, err := ParseNFL(bracket, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	want := Game{
		TeamResult{Seed: 3, Team: "Buffalo", Score: 24},
		TeamResult{Seed: 6, Team: "Philadelphia", Score: 17},
	}
	if games[0] != want {
		t.Errorf("first game = %v, want %v", games[0], want)
	}
	if games[1][1].Team != "Pittsburgh" || games[1][1].Score != 31 {
		t.Errorf("second game away side = %v", games[1][1])
	}
}

func TestParseNFLBadScore(t *testing.T) {
	bracket := `| 1 | Buffalo Bills | x | 2 | Philadelphia Eagles | 17 |`
	if _, err := ParseNFL(bracket, nil, nil); err == nil {
		t.Fatal("expected an error for a non-numeric score")
	}
}
