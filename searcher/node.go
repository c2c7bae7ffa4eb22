package searcher

import "github.com/Amelia10007/minimax-strategy/game"

// node is a tree node of the alpha-beta variant. It owns its state (the
// root state is the caller's value, passed in and never mutated; every
// descendant state is a fresh value produced by Rule.Apply), records the
// action that produced it, and retains at most one child: the best
// continuation found so far. Memory therefore stays proportional to the
// search depth.
//
// A node whose payoff is still unset when its enumeration completes had no
// legal continuation anywhere below it. That is a valid outcome, not a
// defect; parents skip such nodes.
type node[S any, A game.Action, P game.Payoff[P]] struct {
	state  S
	cause  *A // nil at the root
	payoff *P
	best   *node[S, A, P]
}

// retain replaces the retained child with a strictly preferred one and
// adopts its payoff. The previously retained subtree is dropped whole; no
// node is shared between subtrees.
func (n *node[S, A, P]) retain(child *node[S, A, P], payoff P) {
	n.best = child
	n.payoff = &payoff
}

// TreeNode is a tree node of the negamax variant. Unlike the alpha-beta
// node it retains every explored child, so after a search the caller can
// walk the tree and inspect runner-up moves. Memory grows with
// branching^depth; choose this shape only when that introspection is
// worth it.
//
// Payoffs are stored from the perspective of the actor to move at each
// node, as is usual for negamax.
type TreeNode[S any, A game.Action, P game.NegatablePayoff[P]] struct {
	state    S
	cause    *A
	payoff   *P
	children []*TreeNode[S, A, P]
	best     int // index into children, -1 while unset
}

func newTreeNode[S any, A game.Action, P game.NegatablePayoff[P]](state S, cause *A) *TreeNode[S, A, P] {
	return &TreeNode[S, A, P]{state: state, cause: cause, best: -1}
}

// State returns the position this node holds.
func (n *TreeNode[S, A, P]) State() S {
	return n.state
}

// Cause returns the action that produced this node. ok == false at the root.
func (n *TreeNode[S, A, P]) Cause() (A, bool) {
	if n.cause == nil {
		var none A
		return none, false
	}
	return *n.cause, true
}

// Payoff returns this node's payoff from the mover's perspective.
// ok == false if the node was never scored (no legal continuation, or it
// was cut off before scoring).
func (n *TreeNode[S, A, P]) Payoff() (P, bool) {
	if n.payoff == nil {
		var none P
		return none, false
	}
	return *n.payoff, true
}

// Children returns the explored children in enumeration order.
func (n *TreeNode[S, A, P]) Children() []*TreeNode[S, A, P] {
	return n.children
}

// Best returns the preferred child, or nil if no child could be scored.
func (n *TreeNode[S, A, P]) Best() *TreeNode[S, A, P] {
	if n.best < 0 {
		return nil
	}
	return n.children[n.best]
}

// PrincipalVariation returns the retained best line from this node down,
// as the sequence of actions along it.
func (n *TreeNode[S, A, P]) PrincipalVariation() []A {
	var line []A
	for cur := n.Best(); cur != nil; cur = cur.Best() {
		line = append(line, *cur.cause)
	}
	return line
}
