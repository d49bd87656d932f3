// Package report writes the analysis outputs: per-team reseed tables,
// team/state listings, win/loss matrices, and confidence-interval plot
// fragments.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/tmadsen/bracketstats/internal/stats"
)

// ReseedRow is one team's fitted performance in a reseed table.
type ReseedRow struct {
	Team   string  `csv:"Team"`
	Games  int     `csv:"Games"`
	Rate   float64 `csv:"Rate"`
	Reseed float64 `csv:"Reseed"`
}

// StateRow lists a team, its state, and how often it appeared seeded.
type StateRow struct {
	Team       string `csv:"Team"`
	State      string `csv:"State"`
	Total      int    `csv:"Total"`
	BothSeeded int    `csv:"Both seeded"`
	Seeded     int    `csv:"Seeded"`
	OppSeeded  int    `csv:"Opp seeded"`
	NotSeeded  int    `csv:"Not seeded"`
}

// ConferenceRow is a conference's fitted performance in inter-conference
// games.
type ConferenceRow struct {
	Conference string  `csv:"Conference"`
	Games      int     `csv:"Games"`
	Rate       float64 `csv:"Rate"`
	Reseed     float64 `csv:"Reseed"`
	IsKnown    int     `csv:"ConferenceIsKnown"`
}

// GroupBetaRow is the upset rate within one conference's own tournament.
type GroupBetaRow struct {
	Conference string  `csv:"Conference"`
	Games      int     `csv:"Games"`
	Rate       float64 `csv:"Rate"`
	IsNational int     `csv:"IsNational"`
}

// NameRow is one observed raw spelling of a canonical team name.
type NameRow struct {
	Team  string `csv:"Team"`
	Raw   string `csv:"Raw"`
	Count int    `csv:"Count"`
}

// WriteCSV writes rows to a headed CSV file, creating directories as needed.
func WriteCSV[T any](path string, rows []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	if err := gocsv.Marshal(&rows, file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteWinLoss writes a win/loss matrix as a headerless CSV grid.
func WriteWinLoss(path string, m *stats.WinLoss) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	row := make([]string, len(m[0]))
	for w := range m {
		for l, count := range m[w] {
			row[l] = strconv.Itoa(count)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadWinLoss reads a matrix written by WriteWinLoss.
func ReadWinLoss(path string) (*stats.WinLoss, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m stats.WinLoss
	if len(records) != len(m) {
		return nil, fmt.Errorf("reading %s: want %d rows, got %d", path, len(m), len(records))
	}
	for w, record := range records {
		if len(record) != len(m[w]) {
			return nil, fmt.Errorf("reading %s: row %d has %d columns", path, w, len(record))
		}
		for l, field := range record {
			count, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			m[w][l] = count
		}
	}
	return &m, nil
}
