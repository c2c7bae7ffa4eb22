package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Amelia10007/minimax-strategy/searcher"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewWriterCreatesTimestampedDir(t *testing.T) {
	root := t.TempDir()

	writer, err := NewWriter(root)

	require.NoError(t, err)
	require.Equal(t, root, filepath.Dir(writer.Dir()))
	require.DirExists(t, writer.Dir())
}

func TestWriteMatches(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []MatchRecord{
		{ID: "m1", First: "alphabeta", Second: "random", Outcome: "first win", Turns: 7, Duration: 1500 * time.Millisecond},
		{ID: "m2", First: "alphabeta", Second: "negamax", Outcome: "draw", Turns: 9, Duration: 2 * time.Second},
	}
	require.NoError(t, writer.WriteMatches(records))

	rows := readCSV(t, filepath.Join(writer.Dir(), "matches.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"id", "first", "second", "outcome", "turns", "duration_ms"}, rows[0])
	require.Equal(t, []string{"m1", "alphabeta", "random", "first win", "7", "1500"}, rows[1])
	require.Equal(t, []string{"m2", "alphabeta", "negamax", "draw", "9", "2000"}, rows[2])
}

func TestWriteMoves(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []MoveRecord{
		{
			Match: "m1",
			Turn:  1,
			Mover: "First",
			Metric: searcher.Metric{
				Depth:       9,
				Duration:    3 * time.Millisecond,
				Nodes:       550,
				Leaves:      120,
				Cutoffs:     42,
				NoDecisions: 0,
			},
		},
	}
	require.NoError(t, writer.WriteMoves(records))

	rows := readCSV(t, filepath.Join(writer.Dir(), "moves.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"match", "turn", "mover", "depth", "duration_us", "nodes", "leaves", "cutoffs", "no_decisions"}, rows[0])
	require.Equal(t, []string{"m1", "1", "First", "9", "3000", "550", "120", "42", "0"}, rows[1])
}

func TestWriteEmptyRecordLists(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, writer.WriteMatches(nil))
	require.NoError(t, writer.WriteMoves(nil))

	require.Len(t, readCSV(t, filepath.Join(writer.Dir(), "matches.csv")), 1, "header only")
	require.Len(t, readCSV(t, filepath.Join(writer.Dir(), "moves.csv")), 1, "header only")
}
