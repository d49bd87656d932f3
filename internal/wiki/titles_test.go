package wiki

import (
	"testing"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

func TestPotentialTitles(t *testing.T) {
	no := false
	tests := []struct {
		name     string
		desc     tourney.Description
		year     int
		useRange bool
		want     []string
	}{
		{
			name: "suffixed with lowercase variant",
			desc: tourney.Description{
				Group: "bbm", Tourney: "D1",
				Title:  "NCAA Division I",
				Suffix: "Men's Basketball Tournament",
			},
			year: 2012,
			want: []string{
				"2012 NCAA Division I Men's Basketball Tournament",
				"2012 NCAA Division I men's basketball tournament",
			},
		},
		{
			name: "tourney name fallback",
			desc: tourney.Description{Group: "bbm", Tourney: "acc", Suffix: "Tournament"},
			want: []string{"ACC Tournament", "ACC tournament"},
		},
		{
			name: "suffix disabled",
			desc: tourney.Description{
				Group: "football", Tourney: "FCS",
				Title:     "NCAA Division I Football Championship",
				UseSuffix: &no,
			},
			year: 2010,
			want: []string{"2010 NCAA Division I Football Championship"},
		},
		{
			name: "other group skips suffix",
			desc: tourney.Description{Group: "other", Tourney: "Lacrosse", Title: "Lacrosse"},
			year: 2010,
			want: []string{"2010 Lacrosse"},
		},
		{
			name: "template page first",
			desc: tourney.Description{
				Group: "other", Tourney: "Tennis",
				Title:       "Wimbledon Championships – Men's Singles",
				UseTemplate: true,
			},
			year: 2010,
			want: []string{
				"Template:2010 Wimbledon Championships – Men's Singles",
				"2010 Wimbledon Championships – Men's Singles",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PotentialTitles(tt.desc, tt.year, tt.useRange)
			if len(got) != len(tt.want) {
				t.Fatalf("PotentialTitles = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("title %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPotentialTitlesYearRange(t *testing.T) {
	desc := tourney.Description{Group: "professional", Tourney: "NFL_", Title: "NFL", Suffix: "playoffs"}
	got := PotentialTitles(desc, 1970, true)
	if len(got) == 0 || got[0] != "1970–71 NFL playoffs" {
		t.Errorf("first title = %q, want 1970–71 NFL playoffs", got)
	}
}

func TestYearRange(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1970, "1970–71"},
		{1998, "1998–99"},
		{1999, "1999–2000"},
		{2005, "2005–06"},
		{2009, "2009–10"},
	}
	for _, tt := range tests {
		if got := yearRange(tt.year); got != tt.want {
			t.Errorf("yearRange(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}
