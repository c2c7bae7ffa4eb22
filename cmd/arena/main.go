// Self-play arena: pits the alpha-beta variant against the negamax
// variant on the 3x3 board and records match and per-move search metrics
// as CSV. With the zero-sum evaluator both variants play identically, so
// every full-depth game ends in a draw; anything else points at a search
// regression.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Amelia10007/minimax-strategy/engine"
	"github.com/Amelia10007/minimax-strategy/game"
	"github.com/Amelia10007/minimax-strategy/meta"
	"github.com/Amelia10007/minimax-strategy/metrics"
	"github.com/Amelia10007/minimax-strategy/searcher"
	"github.com/Amelia10007/minimax-strategy/tictactoe"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// instrumented wraps a strategy and snapshots its collector after every
// call, in call order.
type instrumented struct {
	inner     game.Strategy[tictactoe.Board, tictactoe.Placement]
	collector searcher.Collector
	snapshots []searcher.Metric
}

func (s *instrumented) SelectAction(ctx context.Context, state tictactoe.Board, actor game.Actor) (tictactoe.Placement, bool, error) {
	action, ok, err := s.inner.SelectAction(ctx, state, actor)
	s.snapshots = append(s.snapshots, s.collector.Complete())
	return action, ok, err
}

func main() {
	games := flag.Int("games", 10, "Number of matches to play")
	depthFirst := flag.Int("depth-first", meta.SEARCH_DEPTH, "Search depth for the alpha-beta side")
	depthSecond := flag.Int("depth-second", meta.SEARCH_DEPTH, "Search depth for the negamax side")
	outDir := flag.String("out-dir", "experiments", "Directory for CSV output")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	writer, err := metrics.NewWriter(*outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create metrics writer")
	}

	rule := tictactoe.Rule{}
	evaluator := tictactoe.Evaluator{}
	ctx := context.Background()

	var matchRecords []metrics.MatchRecord
	var moveRecords []metrics.MoveRecord

	for i := 0; i < *games; i++ {
		first := &instrumented{
			collector: searcher.NewCollector(),
		}
		first.inner = searcher.NewAlphaBeta[tictactoe.Board, tictactoe.Placement, tictactoe.Verdict](
			rule, evaluator, *depthFirst, searcher.WithCollector(first.collector))

		second := &instrumented{
			collector: searcher.NewCollector(),
		}
		second.inner = searcher.NewNegamax[tictactoe.Board, tictactoe.Placement, tictactoe.Verdict](
			rule, evaluator, *depthSecond, searcher.WithCollector(second.collector))

		match := engine.NewMatch[tictactoe.Board, tictactoe.Placement](rule, first, second)

		start := time.Now()
		result, err := match.Run(ctx, tictactoe.Board{})
		if err != nil {
			log.Fatal().Err(err).Str("match", match.ID()).Msg("match failed")
		}

		outcome := result.Reason.String()
		if o, over := result.Final.Result(); over {
			outcome = o.String()
		}
		log.Info().Str("match", result.MatchID).Msgf("game %d/%d: %s in %d turns", i+1, *games, outcome, len(result.Turns))

		matchRecords = append(matchRecords, metrics.MatchRecord{
			ID:       result.MatchID,
			First:    "alphabeta",
			Second:   "negamax",
			Outcome:  outcome,
			Turns:    len(result.Turns),
			Duration: time.Since(start),
		})

		sides := map[game.Actor]*instrumented{game.First: first, game.Second: second}
		taken := map[game.Actor]int{}
		for _, turn := range result.Turns {
			side := sides[turn.Mover]
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Match:  result.MatchID,
				Turn:   turn.Number,
				Mover:  turn.Mover.String(),
				Metric: side.snapshots[taken[turn.Mover]],
			})
			taken[turn.Mover]++
		}
	}

	if err := writer.WriteMatches(matchRecords); err != nil {
		log.Fatal().Err(err).Msg("could not write match records")
	}
	if err := writer.WriteMoves(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("could not write move records")
	}
	log.Info().Msgf("wrote %d match records and %d move records to %s", len(matchRecords), len(moveRecords), writer.Dir())
}
