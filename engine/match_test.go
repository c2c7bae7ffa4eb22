package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Amelia10007/minimax-strategy/game"
	"github.com/Amelia10007/minimax-strategy/searcher"
	"github.com/Amelia10007/minimax-strategy/tictactoe"
	"github.com/stretchr/testify/require"
)

type stubAction struct {
	to string
	by game.Actor
}

func (a stubAction) Actor() game.Actor { return a.by }

// loopRule never finishes and always offers exactly one action, so it
// exercises the turn cap and the fallback paths.
type loopRule struct{}

func (loopRule) IsTerminal(string) bool { return false }

func (loopRule) LegalActions(state string, actor game.Actor) []stubAction {
	return []stubAction{{to: "tick", by: actor}}
}

func (loopRule) Apply(state string, a stubAction) string { return state + "." }

// barrenRule never finishes and never offers a move.
type barrenRule struct{}

func (barrenRule) IsTerminal(string) bool { return false }

func (barrenRule) LegalActions(string, game.Actor) []stubAction { return nil }

func (barrenRule) Apply(state string, a stubAction) string { return state }

type stubStrategy func(actor game.Actor) (stubAction, bool, error)

func (s stubStrategy) SelectAction(ctx context.Context, state string, actor game.Actor) (stubAction, bool, error) {
	return s(actor)
}

func obedient(actor game.Actor) (stubAction, bool, error) {
	return stubAction{to: "tick", by: actor}, true, nil
}

func TestMatchRunPlaysToTerminal(t *testing.T) {
	rule := tictactoe.Rule{}
	first := searcher.NewAlphaBeta[tictactoe.Board, tictactoe.Placement, tictactoe.Verdict](rule, tictactoe.Evaluator{}, 4)
	second := NewRandom[tictactoe.Board, tictactoe.Placement](rule, 42)
	match := NewMatch[tictactoe.Board, tictactoe.Placement](rule, first, second)

	result, err := match.Run(context.Background(), tictactoe.Board{})

	require.NoError(t, err)
	require.Equal(t, ReasonTerminal, result.Reason)
	require.Equal(t, match.ID(), result.MatchID)
	require.True(t, rule.IsTerminal(result.Final))
	require.NotEmpty(t, result.Turns)
	for i, turn := range result.Turns {
		require.Equal(t, i+1, turn.Number)
		if i%2 == 0 {
			require.Equal(t, game.First, turn.Mover)
		} else {
			require.Equal(t, game.Second, turn.Mover)
		}
	}
	require.Equal(t, result.Final, result.Turns[len(result.Turns)-1].State)
}

func TestSearcherNeverLosesToRandom(t *testing.T) {
	rule := tictactoe.Rule{}
	for seed := uint64(0); seed < 20; seed++ {
		engine := searcher.NewAlphaBeta[tictactoe.Board, tictactoe.Placement, tictactoe.Verdict](rule, tictactoe.Evaluator{}, 9)
		match := NewMatch[tictactoe.Board, tictactoe.Placement](rule, engine, NewRandom[tictactoe.Board, tictactoe.Placement](rule, seed))

		result, err := match.Run(context.Background(), tictactoe.Board{})
		require.NoError(t, err)

		outcome, over := result.Final.Result()
		require.True(t, over)
		require.NotEqual(t, tictactoe.SecondWin, outcome, "seed %d beat a full-depth search", seed)
	}
}

func TestMatchRunStopsAtTurnLimit(t *testing.T) {
	match := NewMatch[string, stubAction](loopRule{}, stubStrategy(obedient), stubStrategy(obedient), WithMaxTurns(3))

	result, err := match.Run(context.Background(), "")

	require.NoError(t, err)
	require.Equal(t, ReasonTurnLimit, result.Reason)
	require.Len(t, result.Turns, 3)
	require.Equal(t, "...", result.Final)
}

func TestMatchRunOverridesIllegalAction(t *testing.T) {
	rogue := stubStrategy(func(actor game.Actor) (stubAction, bool, error) {
		return stubAction{to: "bogus", by: actor}, true, nil
	})
	match := NewMatch[string, stubAction](loopRule{}, rogue, stubStrategy(obedient), WithMaxTurns(2))

	result, err := match.Run(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, result.Turns, 2)
	require.Equal(t, "tick", result.Turns[0].Action.to, "the illegal answer must be replaced by a legal one")
}

func TestMatchRunStalemates(t *testing.T) {
	t.Run("when the mover resigns", func(t *testing.T) {
		resigned := stubStrategy(func(actor game.Actor) (stubAction, bool, error) {
			return stubAction{}, false, nil
		})
		match := NewMatch[string, stubAction](loopRule{}, resigned, stubStrategy(obedient))

		result, err := match.Run(context.Background(), "start")

		require.NoError(t, err)
		require.Equal(t, ReasonStalemate, result.Reason)
		require.Empty(t, result.Turns)
		require.Equal(t, "start", result.Final)
	})

	t.Run("when a strategy claims a move on a barren state", func(t *testing.T) {
		match := NewMatch[string, stubAction](barrenRule{}, stubStrategy(obedient), stubStrategy(obedient))

		result, err := match.Run(context.Background(), "start")

		require.NoError(t, err)
		require.Equal(t, ReasonStalemate, result.Reason)
		require.Empty(t, result.Turns)
	})
}

func TestMatchRunPropagatesStrategyError(t *testing.T) {
	boom := errors.New("boom")
	broken := stubStrategy(func(actor game.Actor) (stubAction, bool, error) {
		return stubAction{}, false, boom
	})
	match := NewMatch[string, stubAction](loopRule{}, broken, stubStrategy(obedient))

	_, err := match.Run(context.Background(), "")

	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), match.ID())
}

func TestNewMatchAssignsDistinctIDs(t *testing.T) {
	a := NewMatch[string, stubAction](loopRule{}, stubStrategy(obedient), stubStrategy(obedient))
	b := NewMatch[string, stubAction](loopRule{}, stubStrategy(obedient), stubStrategy(obedient))

	require.NotEmpty(t, a.ID())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestRandomSelectAction(t *testing.T) {
	rule := tictactoe.Rule{}

	t.Run("answers with a legal action", func(t *testing.T) {
		random := NewRandom[tictactoe.Board, tictactoe.Placement](rule, 1)
		b := tictactoe.Board{}

		action, ok, err := random.SelectAction(context.Background(), b, game.First)

		require.NoError(t, err)
		require.True(t, ok)
		require.Contains(t, rule.LegalActions(b, game.First), action)
	})

	t.Run("resigns on a finished game", func(t *testing.T) {
		random := NewRandom[tictactoe.Board, tictactoe.Placement](rule, 1)
		full := tictactoe.Board{}
		mover := game.First
		for {
			actions := rule.LegalActions(full, mover)
			if len(actions) == 0 {
				break
			}
			full = rule.Apply(full, actions[0])
			mover = mover.Opponent()
		}

		_, ok, err := random.SelectAction(context.Background(), full, mover)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("aborts on a canceled context", func(t *testing.T) {
		random := NewRandom[tictactoe.Board, tictactoe.Placement](rule, 1)
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := random.SelectAction(canceled, tictactoe.Board{}, game.First)

		require.ErrorIs(t, err, context.Canceled)
	})
}
