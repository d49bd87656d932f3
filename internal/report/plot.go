package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmadsen/bracketstats/internal/stats"
)

// minPlotGames is the smallest sample worth a confidence interval.
const minPlotGames = 10

// WritePlot writes TikZ draw commands plotting, per seed pairing, the 95%
// interval of the favorite's win probability against the seed difference.
// Intervals at the same difference are nudged apart so they stay visible.
func WritePlot(path string, m *stats.WinLoss) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	var out strings.Builder
	nudges := make(map[int]int)
	for row := 1; row < 16; row++ {
		for col := row + 1; col < 17; col++ {
			total := m[row][col] + m[col][row]
			if total < minPlotGames {
				continue
			}
			center, halfWidth := stats.WilsonInterval(m[row][col], total)
			diff := col - row
			nudges[diff]++
			x := float64(diff) + float64(nudges[diff]-1)/32
			fmt.Fprintf(&out, "\\draw(%g,%g)--++(0,%g);\n", x, center+halfWidth, -2*halfWidth)
		}
	}
	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
