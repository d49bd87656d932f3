// Package stats computes seed-performance statistics from game results:
// win/loss matrices by seed pair, Wilson confidence intervals, and logistic
// regressions of win probability against seed difference.
package stats

import (
	"github.com/tmadsen/bracketstats/internal/bracket"
	"github.com/tmadsen/bracketstats/internal/tourney"
)

// WinLoss counts, at [w][l], how often seed w beat seed l. Row and column 0
// hold unseeded teams.
type WinLoss [tourney.MaxSeed + 1][tourney.MaxSeed + 1]int

// Add records one game; the winner is the first entry.
func (m *WinLoss) Add(game bracket.Game) {
	m[game[0].Seed][game[1].Seed]++
}

// Merge adds another matrix into this one.
func (m *WinLoss) Merge(other *WinLoss) {
	for w := range m {
		for l := range m[w] {
			m[w][l] += other[w][l]
		}
	}
}

// Total is the number of games recorded.
func (m *WinLoss) Total() int {
	total := 0
	for w := range m {
		for l := range m[w] {
			total += m[w][l]
		}
	}
	return total
}

// RankedTotal is the number of games between two seeded teams.
func (m *WinLoss) RankedTotal() int {
	total := 0
	for w := 1; w < len(m); w++ {
		for l := 1; l < len(m[w]); l++ {
			total += m[w][l]
		}
	}
	return total
}

// WinsByDiff collapses the seeded block into counts per seed difference:
// the returned value at diffIndex(d) is how many games were won at
// winner-minus-loser seed difference d, for d in [1-MaxSeed, MaxSeed-1].
func (m *WinLoss) WinsByDiff() []int {
	wins := make([]int, 2*tourney.MaxSeed-1)
	for w := 1; w < len(m); w++ {
		for l := 1; l < len(m[w]); l++ {
			wins[diffIndex(w-l)] += m[w][l]
		}
	}
	return wins
}

func diffIndex(diff int) int {
	return diff + tourney.MaxSeed - 1
}
