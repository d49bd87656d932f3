package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmadsen/bracketstats/internal/stats"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "reseed.csv")
	rows := []ReseedRow{
		{Team: "Duke", Games: 40, Rate: 0.25, Reseed: -2.5},
		{Team: "Lehigh", Games: 12, Rate: 0.5, Reseed: 1.5},
	}
	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("wrote %d lines, want 3: %q", len(lines), lines)
	}
	if lines[0] != "Team,Games,Rate,Reseed" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Duke,40,0.25,-2.5" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWinLossRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winloss.csv")
	var m stats.WinLoss
	m[1][16] = 140
	m[16][1] = 1
	m[0][3] = 7

	if err := WriteWinLoss(path, &m); err != nil {
		t.Fatalf("WriteWinLoss: %v", err)
	}
	back, err := ReadWinLoss(path)
	if err != nil {
		t.Fatalf("ReadWinLoss: %v", err)
	}
	if *back != m {
		t.Error("matrix did not round trip")
	}
}

func TestReadWinLossBadShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	if err := os.WriteFile(path, []byte("1,2,3\n4,5,6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadWinLoss(path); err == nil {
		t.Error("ReadWinLoss accepted a truncated matrix")
	}
}

func TestWritePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winlossplot.tex")
	var m stats.WinLoss
	m[1][2] = 8
	m[2][1] = 4
	m[3][4] = 2 // below the sample cutoff

	if err := WritePlot(path, &m); err != nil {
		t.Fatalf("WritePlot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("wrote %d draw commands, want 1: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], `\draw(1,`) {
		t.Errorf("draw command = %q", lines[0])
	}
}

func TestWritePlotNudgesOverlaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winlossplot.tex")
	var m stats.WinLoss
	m[1][2] = 10
	m[2][3] = 10

	if err := WritePlot(path, &m); err != nil {
		t.Fatalf("WritePlot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d draw commands, want 2: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], `\draw(1,`) || !strings.HasPrefix(lines[1], `\draw(1.03125,`) {
		t.Errorf("nudged commands = %q", lines)
	}
}
