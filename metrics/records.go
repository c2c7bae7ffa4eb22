// Package metrics holds experiment records and their CSV output.
package metrics

import (
	"time"

	"github.com/Amelia10007/minimax-strategy/searcher"
)

// MatchRecord summarizes one finished match.
type MatchRecord struct {
	ID       string
	First    string // label of the strategy playing First
	Second   string // label of the strategy playing Second
	Outcome  string
	Turns    int
	Duration time.Duration
}

// MoveRecord captures the search work behind one move.
type MoveRecord struct {
	Match string
	Turn  int
	Mover string
	searcher.Metric
}
