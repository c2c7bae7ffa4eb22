package engine

import (
	"context"

	"github.com/Amelia10007/minimax-strategy/game"
	"golang.org/x/exp/rand"
)

// Random picks a uniformly random legal action. It is the baseline
// opponent for experiments and a quick sanity check for rules.
type Random[S any, A game.Action] struct {
	rule game.Rule[S, A]
	rng  *rand.Rand
}

// NewRandom builds a random strategy seeded deterministically.
func NewRandom[S any, A game.Action](rule game.Rule[S, A], seed uint64) *Random[S, A] {
	if rule == nil {
		panic("engine: rule must not be nil")
	}
	return &Random[S, A]{
		rule: rule,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// SelectAction returns a random legal action, or ok == false if there is
// none.
func (r *Random[S, A]) SelectAction(ctx context.Context, state S, actor game.Actor) (A, bool, error) {
	var none A
	if err := ctx.Err(); err != nil {
		return none, false, err
	}
	actions := r.rule.LegalActions(state, actor)
	if len(actions) == 0 {
		return none, false, nil
	}
	return actions[r.rng.Intn(len(actions))], true, nil
}
