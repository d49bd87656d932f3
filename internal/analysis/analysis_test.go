package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tmadsen/bracketstats/internal/report"
	"github.com/tmadsen/bracketstats/internal/tourney"
	"github.com/tmadsen/bracketstats/internal/wiki"
)

const bracketPage = `The 2012 tournament.
{{4TeamBracket
| RD1-seed1=1 | RD1-team1=Duke | RD1-score1=70
| RD1-seed2=4 | RD1-team2=Lehigh | RD1-score2=75
| RD1-seed3=2 | RD1-team3=Kansas | RD1-score3=81
| RD1-seed4=3 | RD1-team4=Purdue | RD1-score4=68
| RD2-seed1=4 | RD2-team1=Lehigh | RD2-score1=60
| RD2-seed2=2 | RD2-team2=Kansas | RD2-score2=59
}}`

const testCatalogJSON = `{
	"bbm": {
		"suffix": "Invitational",
		"nonconference": ["D1"],
		"D1": {"title": "Test", "years": [2012, 2012]}
	}
}`

// newTestAnalyzer serves pages by title from a local server and writes
// reports under a fresh directory.
func newTestAnalyzer(t *testing.T, pages map[string]string) *Analyzer {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := pages[r.URL.Query().Get("title")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, content)
	}))
	t.Cleanup(srv.Close)

	var catalog tourney.Catalog
	if err := json.Unmarshal([]byte(testCatalogJSON), &catalog); err != nil {
		t.Fatalf("parsing test catalog: %v", err)
	}
	provider := wiki.NewProvider(wiki.NewCache(t.TempDir()),
		wiki.NewClientWithBase(srv.URL, zerolog.Nop()), zerolog.Nop())
	return New(catalog, provider, t.TempDir(), zerolog.Nop())
}

func TestAnalyzeTourney(t *testing.T) {
	analyzer := newTestAnalyzer(t, map[string]string{
		"2012 Test Invitational": bracketPage,
	})
	result, err := analyzer.AnalyzeTourney(context.Background(), "bbm", "D1")
	if err != nil {
		t.Fatalf("AnalyzeTourney: %v", err)
	}

	// Lehigh over Duke, Kansas over Purdue, Lehigh over Kansas
	if result.winLoss[4][1] != 1 || result.winLoss[2][3] != 1 || result.winLoss[4][2] != 1 {
		t.Errorf("win/loss matrix = %v", result.winLoss)
	}
	if got := result.winLoss.Total(); got != 3 {
		t.Errorf("Total = %d, want 3", got)
	}

	if len(result.reseed) != 4 {
		t.Fatalf("reseed rows = %+v", result.reseed)
	}
	duke, lehigh := result.reseed[0], result.reseed[2]
	if duke.Team != "Duke" || duke.Games != 1 || duke.Reseed != 16 {
		t.Errorf("Duke row = %+v", duke)
	}
	if lehigh.Team != "Lehigh" || lehigh.Games != 2 || lehigh.Reseed != -16 {
		t.Errorf("Lehigh row = %+v", lehigh)
	}

	if len(result.states) != 4 {
		t.Fatalf("state rows = %+v", result.states)
	}
	for _, row := range result.states {
		if row.BothSeeded != row.Total || row.Seeded != 0 || row.NotSeeded != 0 {
			t.Errorf("every game was fully seeded: %+v", row)
		}
	}

	for _, name := range []string{
		"winloss.csv", "winlossplot.tex",
		"reseed.csv", "state_reseed.csv", "tz_reseed.csv", "state.csv",
	} {
		path := filepath.Join(analyzer.OutDir, "bbm", "D1", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing report %s: %v", name, err)
		}
	}

	if got := analyzer.Observations.Count("Duke", "Duke"); got == 0 {
		t.Error("no spellings observed for Duke")
	}
}

func TestAnalyzeTourneyUnknown(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)
	if _, err := analyzer.AnalyzeTourney(context.Background(), "bbm", "D9"); err == nil {
		t.Error("unknown tournament should fail")
	}
	if _, err := analyzer.AnalyzeTourney(context.Background(), "chess", "D1"); err == nil {
		t.Error("unknown group should fail")
	}
}

func TestAnalyzeGroup(t *testing.T) {
	analyzer := newTestAnalyzer(t, map[string]string{
		"2012 Test Invitational": bracketPage,
	})
	result, err := analyzer.AnalyzeGroup(context.Background(), "bbm")
	if err != nil {
		t.Fatalf("AnalyzeGroup: %v", err)
	}
	if got := result.winLoss.Total(); got != 3 {
		t.Errorf("group Total = %d, want 3", got)
	}
	if len(result.reseedApprox) != 4 {
		t.Errorf("reseed approx rows = %+v", result.reseedApprox)
	}

	for _, name := range []string{
		"winloss.csv", "winlossplot.tex", "reseed_approx.csv", "state.csv",
		"group_betas.csv", "reseed.csv", "reseed_filtered.csv",
		"state_reseed.csv", "tz_reseed.csv", "conf_reseed.csv",
	} {
		path := filepath.Join(analyzer.OutDir, "bbm", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing report %s: %v", name, err)
		}
	}
}

func TestAggregateReseed(t *testing.T) {
	tables := [][]report.ReseedRow{
		{
			{Team: "Duke", Games: 2, Rate: 0.5, Reseed: 1},
			{Team: "Lehigh", Games: 1, Rate: 0.2, Reseed: 2},
		},
		{
			{Team: "Duke", Games: 2, Rate: 0.25, Reseed: 3},
			{Team: "NA", Games: 0},
		},
	}
	rows := aggregateReseed(tables)
	if len(rows) != 3 {
		t.Fatalf("rows = %+v", rows)
	}
	duke := rows[0]
	if duke.Team != "Duke" || duke.Games != 4 {
		t.Fatalf("Duke row = %+v", duke)
	}
	if duke.Rate != 0.375 || duke.Reseed != 2 {
		t.Errorf("Duke weighted means = %+v", duke)
	}
	// a zero-game placeholder keeps a games count of one
	if na := rows[2]; na.Team != "NA" || na.Games != 1 {
		t.Errorf("NA row = %+v", na)
	}
}

func TestAggregateStates(t *testing.T) {
	rows := aggregateStates([]report.StateRow{
		{Team: "Duke", State: "North Carolina", Total: 2, BothSeeded: 2},
		{Team: "Duke", State: "North Carolina", Total: 1, Seeded: 1},
		{Team: "Lehigh", State: "Pennsylvania", Total: 1, BothSeeded: 1},
	})
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Team != "Duke" || rows[0].Total != 3 || rows[0].BothSeeded != 2 || rows[0].Seeded != 1 {
		t.Errorf("Duke row = %+v", rows[0])
	}
}
