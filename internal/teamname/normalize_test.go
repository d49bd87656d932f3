package teamname

import (
	"testing"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

func TestNormalize(t *testing.T) {
	d := BuildDisambiguator("", tourney.Flags{})

	tests := []struct {
		raw  string
		want string
	}{
		{"Gonzaga", "Gonzaga"},
		{"#5 Gonzaga", "Gonzaga"},
		{"at Duke", "Duke"},
		{"Duke 70", "Duke"},
		{"Lehigh (OT)", "Lehigh"},
		{"Butler (Horizon League)", "Butler"},
		{"UConn", "Connecticut"},
		{"Fla. St.", "Florida State"},
		{"N. C. State", "North Carolina State"},
		{"UNLV", "Nevada Las Vegas"},
		{"Memphis State", "Memphis"},
		{"UW–Green Bay", "Wisconsin Green Bay"},
		{"East Central Oklahoma State", "East Central Oklahoma"},
		{"California University of Pennsylvania", "PennWest California"},
		{"St. John's", "Saint John's"},
		{"Mt. Saint Mary's", "Mount Saint Mary's"},
		{"San José State", "San Jose State"},
		{"Miami", "Miami Florida"},
		{"Xavier", "Xavier Ohio"},
		{"The Ohio State", "Ohio State"},
		{"IPFW", "Purdue Fort Wayne"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw, d, nil); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeFixedPoint(t *testing.T) {
	d := BuildDisambiguator("", tourney.Flags{})

	canonical := []string{
		"Gonzaga", "Duke", "Connecticut", "Florida State",
		"North Carolina State", "Nevada Las Vegas", "Memphis",
		"Wisconsin Green Bay", "East Central Oklahoma",
		"PennWest California", "Saint John's", "Mount Saint Mary's",
		"San Jose State", "Miami Florida", "Xavier Ohio",
		"Ohio State", "Purdue Fort Wayne",
	}
	for _, name := range canonical {
		if got := Normalize(name, d, nil); got != name {
			t.Errorf("Normalize(%q) = %q, want unchanged", name, got)
		}
	}
}

func TestNormalizeRecordsSpellings(t *testing.T) {
	obs := &Observations{}
	Normalize("Fla. St.", nil, obs)
	Normalize("Florida State", nil, obs)
	Normalize("Florida State", nil, obs)

	canonicals := obs.Canonicals()
	if len(canonicals) != 1 || canonicals[0] != "Florida State" {
		t.Fatalf("Canonicals() = %v, want [Florida State]", canonicals)
	}
	spellings := obs.Spellings("Florida State")
	if len(spellings) != 2 || spellings[0] != "Fla. St." || spellings[1] != "Florida State" {
		t.Errorf("Spellings() = %v, want [Fla. St., Florida State]", spellings)
	}
	if got := obs.Count("Florida State", "Fla. St."); got != 1 {
		t.Errorf("Count(Fla. St.) = %d, want 1", got)
	}
	if got := obs.Count("Florida State", "Florida State"); got != 2 {
		t.Errorf("Count(Florida State) = %d, want 2", got)
	}
}

func TestObservationsNil(t *testing.T) {
	var obs *Observations
	obs.Record("Duke", "Duke")
	if obs.Canonicals() != nil {
		t.Error("nil Observations should report no canonicals")
	}
	if obs.Count("Duke", "Duke") != 0 {
		t.Error("nil Observations should count zero")
	}
}
