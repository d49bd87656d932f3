package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmadsen/bracketstats/internal/bracket"
)

func TestCalcLogRegDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		games   int
		reseed  float64
	}{
		{"no games", Outcome{}, 0, 0},
		{"only wins", Outcome{Wins: []int{1, 2, 3}}, 3, -16},
		{"only losses", Outcome{Losses: []int{1, 2}}, 2, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := CalcLogReg(&tt.outcome)
			assert.Equal(t, tt.games, fit.Games)
			assert.Zero(t, fit.Rate)
			assert.Equal(t, tt.reseed, fit.Reseed)
		})
	}
}

func TestCalcLogRegSymmetric(t *testing.T) {
	// wins and losses at the same differences say nothing; everything fits
	// to zero
	outcome := &Outcome{Wins: []int{-1, 1}, Losses: []int{-1, 1}}
	fit := CalcLogReg(outcome)
	assert.Equal(t, 4, fit.Games)
	assert.InDelta(t, 0, fit.Rate, 1e-9)
	assert.InDelta(t, 0, fit.Reseed, 1e-9)
}

func TestCalcLogRegCrossover(t *testing.T) {
	// wins at +3 and losses at +1 cross over at +2; the fitted reseed is
	// minus the crossover, matching the intercept-over-rate convention
	outcome := &Outcome{Wins: []int{3, 3}, Losses: []int{1, 1}}
	fit := CalcLogReg(outcome)
	assert.Equal(t, 4, fit.Games)
	assert.Greater(t, fit.Rate, 0.0)
	assert.InDelta(t, -2, fit.Reseed, 1e-6)
}

func TestAnalyzeWinLoss(t *testing.T) {
	var m WinLoss
	m[1][2] = 9
	m[2][1] = 1

	fit := AnalyzeWinLoss(&m)
	assert.Equal(t, 10, fit.Games)
	// the favorite won 90%, so winning probability falls as the winner's
	// seed number rises
	assert.Less(t, fit.Rate, 0.0)
	assert.Greater(t, fit.LossPerGame, 0.0)
}

func TestAnalyzeWinLossEmpty(t *testing.T) {
	var m WinLoss
	assert.Equal(t, MatrixRegression{}, AnalyzeWinLoss(&m))
}

func TestWilsonInterval(t *testing.T) {
	center, halfWidth := WilsonInterval(8, 10)
	assert.InDelta(t, 0.7167, center, 1e-3)
	assert.InDelta(t, 0.2266, halfWidth, 1e-3)

	center, halfWidth = WilsonInterval(5, 10)
	assert.InDelta(t, 0.5, center, 1e-9)
	assert.Greater(t, halfWidth, 0.0)
}

func TestOutcomesGet(t *testing.T) {
	outcomes := make(Outcomes)
	outcomes.Get("Duke").Wins = append(outcomes.Get("Duke").Wins, 3)
	outcomes.Get("Duke").Losses = append(outcomes.Get("Duke").Losses, -1)
	assert.Len(t, outcomes, 1)
	assert.Equal(t, &Outcome{Wins: []int{3}, Losses: []int{-1}}, outcomes["Duke"])
}

func TestWinLossCounts(t *testing.T) {
	var m WinLoss
	m.Add(bracket.Game{
		bracket.TeamResult{Seed: 2, Team: "Lehigh", Score: 75},
		bracket.TeamResult{Seed: 15, Team: "Duke", Score: 70},
	})
	m.Add(bracket.Game{
		bracket.TeamResult{Seed: 0, Team: "Walk-on", Score: 80},
		bracket.TeamResult{Seed: 1, Team: "Duke", Score: 70},
	})
	assert.Equal(t, 1, m[2][15])
	assert.Equal(t, 2, m.Total())
	assert.Equal(t, 1, m.RankedTotal())

	var other WinLoss
	other[2][15] = 3
	m.Merge(&other)
	assert.Equal(t, 4, m[2][15])

	wins := m.WinsByDiff()
	assert.Len(t, wins, 39)
	assert.Equal(t, 4, wins[diffIndex(-13)])
}
