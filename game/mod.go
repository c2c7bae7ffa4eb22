package game

import "context"

// Action is a single move in a game. Every action carries the actor that
// takes it, so a search can work out whose turn follows it.
type Action interface {
	Actor() Actor
}

// Payoff is a totally ordered value expressing how desirable a position is
// for a given actor. Compare returns a negative number if p is worse than
// other, zero if they are equal and a positive number if p is better.
//
// The constraint is self-referential: a payoff type P implements Payoff[P].
type Payoff[P any] interface {
	Compare(other P) int
}

// NegatablePayoff is a payoff with an additive inverse, required by the
// negamax search variant. Negate must be an involution
// (p.Negate().Negate() == p) and must reverse the order: if a.Compare(b) > 0
// then a.Negate().Compare(b.Negate()) < 0.
type NegatablePayoff[P any] interface {
	Payoff[P]
	Negate() P
}

// Rule describes the transition structure of a game over states of type S
// and actions of type A. States should be treated as immutable values:
// Apply returns a fresh state and never mutates its argument.
type Rule[S any, A Action] interface {
	// IsTerminal reports whether the game is over in the given state.
	IsTerminal(state S) bool

	// LegalActions enumerates the actions available to actor in the given
	// state. The enumeration order is significant: searches break payoff
	// ties in favor of the action listed first. The result may be empty.
	LegalActions(state S, actor Actor) []A

	// Apply plays action on state and returns the successor state.
	// The behavior is undefined if action is not one of
	// LegalActions(state, action.Actor()); callers must validate first.
	Apply(state S, action A) S
}

// Evaluator scores a position from the point of view of an actor. Searches
// call ScoreFor only on terminal positions or at depth exhaustion.
//
// The negamax variant additionally requires the zero-sum law
//
//	ScoreFor(a.Opponent(), s) == ScoreFor(a, s).Negate()
//
// for every reachable state s. An evaluator that breaks the law makes
// negamax choose silently wrong moves; it does not fail.
type Evaluator[S any, P Payoff[P]] interface {
	// ScoreFor evaluates state from actor's perspective.
	ScoreFor(actor Actor, state S) P

	// Bounds returns the extremal payoff sentinels: min is at most and max
	// is at least every value ScoreFor can produce.
	Bounds() (min, max P)
}

// Strategy picks the next action for an actor. SelectAction returns
// ok == false if and only if the actor has no legal action in state; that
// is a valid outcome (a stalemate), not an error. The context is checked
// cooperatively during the search, so a canceled context aborts with its
// error and no action.
//
// Implementations must be safe to call repeatedly with unrelated states:
// no state is retained across calls.
type Strategy[S any, A Action] interface {
	SelectAction(ctx context.Context, state S, actor Actor) (action A, ok bool, err error)
}
