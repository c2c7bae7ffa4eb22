package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp and
// returns a writer targeting it.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteMatches writes one row per match to matches.csv.
func (w *Writer) WriteMatches(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "first", "second", "outcome", "turns", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write matches header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.ID,
			record.First,
			record.Second,
			record.Outcome,
			strconv.Itoa(record.Turns),
			strconv.FormatInt(record.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write match record: %w", err)
		}
	}
	return nil
}

// WriteMoves writes one row per move to moves.csv.
func (w *Writer) WriteMoves(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "turn", "mover", "depth", "duration_us", "nodes", "leaves", "cutoffs", "no_decisions"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.Match,
			strconv.Itoa(record.Turn),
			record.Mover,
			strconv.Itoa(record.Depth),
			strconv.FormatInt(record.Duration.Microseconds(), 10),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.NoDecisions),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record: %w", err)
		}
	}
	return nil
}
