package searcher

import (
	"context"

	"github.com/Amelia10007/minimax-strategy/game"
)

// AlphaBeta is a depth-bounded minimax engine with alpha-beta pruning.
// It explores the game tree depth-first for a fixed searching actor,
// maximizing on that actor's turns and minimizing on the opponent's, and
// retains only the best line found so far.
//
// The engine is immutable after construction and safe to reuse across
// unrelated positions.
type AlphaBeta[S any, A game.Action, P game.Payoff[P]] struct {
	rule      game.Rule[S, A]
	evaluator game.Evaluator[S, P]
	depth     int
	collector Collector
}

// NewAlphaBeta builds an engine that searches depth plies ahead.
// A depth of zero ranks the immediate successors by their static score.
func NewAlphaBeta[S any, A game.Action, P game.Payoff[P]](
	rule game.Rule[S, A],
	evaluator game.Evaluator[S, P],
	depth int,
	options ...Option,
) *AlphaBeta[S, A, P] {
	if rule == nil {
		panic("searcher: rule must not be nil")
	}
	if evaluator == nil {
		panic("searcher: evaluator must not be nil")
	}
	if depth < 0 {
		panic("searcher: search depth must not be negative")
	}
	cfg := newConfig(options...)
	return &AlphaBeta[S, A, P]{
		rule:      rule,
		evaluator: evaluator,
		depth:     depth,
		collector: cfg.collector,
	}
}

// SelectAction searches from state on behalf of actor and returns the best
// action found. ok == false means actor has no legal action in state.
func (s *AlphaBeta[S, A, P]) SelectAction(ctx context.Context, state S, actor game.Actor) (A, bool, error) {
	var none A

	s.collector.Start(s.depth)

	lo, hi := s.evaluator.Bounds()
	w, ok := tryWindow(lo, hi)
	if !ok {
		panic("searcher: evaluator bounds are inverted")
	}

	root := &node[S, A, P]{state: state}
	// The root is never evaluated statically: a zero depth still expands
	// the root's children so their one-ply scores can be ranked.
	depth := s.depth
	if depth == 0 {
		depth = 1
	}

	if _, _, err := s.search(ctx, depth, actor, root, w); err != nil {
		return none, false, err
	}

	if root.best == nil {
		return none, false, nil
	}
	return *root.best.cause, true, nil
}

// search scores n and returns its payoff, always from the searching
// actor's perspective. ok == false means n is non-terminal yet offers no
// legal continuation; the caller must skip n rather than compare it.
func (s *AlphaBeta[S, A, P]) search(ctx context.Context, depth int, searching game.Actor, n *node[S, A, P], w window[P]) (P, bool, error) {
	var none P

	if err := ctx.Err(); err != nil {
		return none, false, err
	}
	s.collector.AddNode()

	if depth == 0 || s.rule.IsTerminal(n.state) {
		payoff := s.evaluator.ScoreFor(searching, n.state)
		n.payoff = &payoff
		s.collector.AddLeaf()
		return payoff, true, nil
	}

	// Whose turn is it in this state? The root belongs to the searching
	// actor; below it, turns alternate with each causing action.
	mover := searching
	if n.cause != nil {
		mover = (*n.cause).Actor().Opponent()
	}

	actions := s.rule.LegalActions(n.state, mover)
	if len(actions) == 0 {
		s.collector.AddNoDecision()
		return none, false, nil
	}

	for _, action := range actions {
		action := action
		child := &node[S, A, P]{
			state: s.rule.Apply(n.state, action),
			cause: &action,
		}

		payoff, scored, err := s.search(ctx, depth-1, searching, child, w)
		if err != nil {
			return none, false, err
		}
		if !scored {
			continue
		}

		if n.payoff != nil {
			if mover == searching {
				// Our turn: keep only strictly better children, so the
				// first-found child wins exact ties.
				if (*n.payoff).Compare(payoff) >= 0 {
					continue
				}
			} else {
				// Opponent's turn: they pick what is worst for us.
				if (*n.payoff).Compare(payoff) <= 0 {
					continue
				}
			}
		}
		n.retain(child, payoff)

		narrowed, valid := w, true
		if mover == searching {
			narrowed, valid = w.raiseLo(payoff)
		} else {
			narrowed, valid = w.lowerHi(payoff)
		}
		if !valid {
			// Empty window: the remaining siblings are provably
			// irrelevant to the decision above us.
			s.collector.AddCutoff()
			break
		}
		w = narrowed
	}

	if n.payoff == nil {
		// Every child turned out to be a dead end.
		return none, false, nil
	}
	return *n.payoff, true, nil
}
