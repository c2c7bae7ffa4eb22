package tictactoe

import "github.com/Amelia10007/minimax-strategy/game"

// Verdict is an ordinal payoff scale for a board, from the point of view
// of one actor. It is qualitative rather than numeric, so its negation is
// an explicit order-reversing map instead of arithmetic.
type Verdict int

const (
	Lost Verdict = iota
	CenterLost      // the opponent holds the center square
	Even
	CenterHeld // we hold the center square
	Won
)

// Compare orders verdicts from Lost up to Won.
func (v Verdict) Compare(other Verdict) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// Negate maps each verdict to its mirror for the opponent. It is an
// involution and reverses the Compare order, as the negamax variant
// requires.
func (v Verdict) Negate() Verdict {
	switch v {
	case Lost:
		return Won
	case CenterLost:
		return CenterHeld
	case CenterHeld:
		return CenterLost
	case Won:
		return Lost
	default:
		return Even
	}
}

func (v Verdict) String() string {
	switch v {
	case Lost:
		return "lost"
	case CenterLost:
		return "center lost"
	case CenterHeld:
		return "center held"
	case Won:
		return "won"
	default:
		return "even"
	}
}

// Evaluator scores a board for an actor: a decided game dominates
// everything, otherwise holding the center square counts as an edge.
// ScoreFor mirrors exactly between the two actors, so the zero-sum law
// holds and the evaluator works with both search variants.
type Evaluator struct{}

// ScoreFor evaluates the board from actor's perspective.
func (Evaluator) ScoreFor(actor game.Actor, b Board) Verdict {
	if outcome, over := b.Result(); over {
		switch {
		case outcome == Draw:
			return Even
		case outcome == FirstWin && actor == game.First,
			outcome == SecondWin && actor == game.Second:
			return Won
		default:
			return Lost
		}
	}
	switch b.At(Size/2, Size/2) {
	case Mark(actor):
		return CenterHeld
	case Empty:
		return Even
	default:
		return CenterLost
	}
}

// Bounds returns the extremal verdicts.
func (Evaluator) Bounds() (min, max Verdict) {
	return Lost, Won
}
