package searcher

import (
	"context"

	"github.com/Amelia10007/minimax-strategy/game"
)

// Negamax is the negamax reformulation of AlphaBeta. Each recursive call
// scores the position for the actor to move; the caller negates the result
// and narrows a negated, swapped window, which collapses the maximizing
// and minimizing branches into a single code path.
//
// Correctness depends on the evaluator's zero-sum law (see
// game.Evaluator); an evaluator that violates it makes Negamax pick
// silently wrong moves while AlphaBeta still answers correctly.
//
// Negamax retains every explored child, so Search exposes the full tree
// for runner-up inspection. Use AlphaBeta when only the answer matters and
// memory should stay proportional to depth.
type Negamax[S any, A game.Action, P game.NegatablePayoff[P]] struct {
	rule      game.Rule[S, A]
	evaluator game.Evaluator[S, P]
	depth     int
	collector Collector
}

// NewNegamax builds a negamax engine that searches depth plies ahead.
func NewNegamax[S any, A game.Action, P game.NegatablePayoff[P]](
	rule game.Rule[S, A],
	evaluator game.Evaluator[S, P],
	depth int,
	options ...Option,
) *Negamax[S, A, P] {
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
	return &Negamax[S, A, P]{
		rule:      rule,
		evaluator: evaluator,
		depth:     depth,
		collector: cfg.collector,
	}
}

// SelectAction searches from state on behalf of actor and returns the best
// action found. ok == false means actor has no legal action in state.
func (s *Negamax[S, A, P]) SelectAction(ctx context.Context, state S, actor game.Actor) (A, bool, error) {
	var none A

	root, err := s.Search(ctx, state, actor)
	if err != nil {
		return none, false, err
	}
	best := root.Best()
	if best == nil {
		return none, false, nil
	}
	return *best.cause, true, nil
}

// Search runs the negamax search and returns the explored tree rooted at
// state. The root's Best child carries the selected action; siblings are
// the runners-up in enumeration order. The tree is not retained by the
// engine, so repeated calls are independent.
func (s *Negamax[S, A, P]) Search(ctx context.Context, state S, actor game.Actor) (*TreeNode[S, A, P], error) {
	s.collector.Start(s.depth)

	lo, hi := s.evaluator.Bounds()
	w, ok := tryWindow(lo, hi)
	if !ok {
		panic("searcher: evaluator bounds are inverted")
	}

	root := newTreeNode[S, A, P](state, nil)
	depth := s.depth
	if depth == 0 {
		depth = 1
	}

	if _, _, err := s.search(ctx, depth, actor, root, w); err != nil {
		return nil, err
	}
	return root, nil
}

// search scores n from mover's perspective. ok == false means n is
// non-terminal yet offers no legal continuation.
func (s *Negamax[S, A, P]) search(ctx context.Context, depth int, mover game.Actor, n *TreeNode[S, A, P], w window[P]) (P, bool, error) {
	var none P

	if err := ctx.Err(); err != nil {
		return none, false, err
	}
	s.collector.AddNode()

	if depth == 0 || s.rule.IsTerminal(n.state) {
		payoff := s.evaluator.ScoreFor(mover, n.state)
		n.payoff = &payoff
		s.collector.AddLeaf()
		return payoff, true, nil
	}

	actions := s.rule.LegalActions(n.state, mover)
	if len(actions) == 0 {
		s.collector.AddNoDecision()
		return none, false, nil
	}

	for _, action := range actions {
		action := action
		child := newTreeNode[S, A, P](s.rule.Apply(n.state, action), &action)
		n.children = append(n.children, child)

		// The child sees the window through the opponent's eyes: negated
		// and swapped.
		childWindow := window[P]{lo: w.hi.Negate(), hi: w.lo.Negate()}
		payoff, scored, err := s.search(ctx, depth-1, mover.Opponent(), child, childWindow)
		if err != nil {
			return none, false, err
		}
		if !scored {
			continue
		}
		payoff = payoff.Negate()

		// Single maximize path; strictly better, so ties keep the
		// first-found child.
		if n.payoff == nil || (*n.payoff).Compare(payoff) < 0 {
			p := payoff
			n.payoff = &p
			n.best = len(n.children) - 1
		}

		narrowed, valid := w.raiseLo(payoff)
		if !valid {
			s.collector.AddCutoff()
			break
		}
		w = narrowed
	}

	if n.payoff == nil {
		return none, false, nil
	}
	return *n.payoff, true, nil
}
