package searcher

import "github.com/Amelia10007/minimax-strategy/game"

// The searcher tests run on small explicit game trees: states are string
// labels, moves jump to a named successor, and leaf scores are tabulated
// from First's perspective (Second sees their negation, so the zero-sum
// law holds by construction).

type mockAction struct {
	to string
	by game.Actor
}

func (a mockAction) Actor() game.Actor {
	return a.by
}

type mockRule struct {
	children map[string][]string
	terminal map[string]bool
}

func (r mockRule) IsTerminal(s string) bool {
	return r.terminal[s]
}

func (r mockRule) LegalActions(s string, actor game.Actor) []mockAction {
	var actions []mockAction
	for _, to := range r.children[s] {
		actions = append(actions, mockAction{to: to, by: actor})
	}
	return actions
}

func (r mockRule) Apply(s string, a mockAction) string {
	return a.to
}

type mockEvaluator struct {
	scores map[string]game.Score
}

func (e mockEvaluator) ScoreFor(actor game.Actor, s string) game.Score {
	score := e.scores[s]
	if actor == game.Second {
		return score.Negate()
	}
	return score
}

func (e mockEvaluator) Bounds() (game.Score, game.Score) {
	return game.ScoreMin, game.ScoreMax
}

// trapGame punishes the greedy choice: "a" looks better than "b" after
// one ply, but the opponent's reply from "a" is ruinous.
//
//	r ── a (+3) ── a1 (+1)
//	│             a2 (-5)
//	└── b (+1) ── b1 (+2)
//	              b2 ( 0)
func trapGame() (mockRule, mockEvaluator) {
	rule := mockRule{
		children: map[string][]string{
			"r": {"a", "b"},
			"a": {"a1", "a2"},
			"b": {"b1", "b2"},
		},
		terminal: map[string]bool{"a1": true, "a2": true, "b1": true, "b2": true},
	}
	evaluator := mockEvaluator{scores: map[string]game.Score{
		"a": 3, "b": 1,
		"a1": 1, "a2": -5,
		"b1": 2, "b2": 0,
	}}
	return rule, evaluator
}

// prunableGame triggers exactly one cutoff at full depth: after "a"
// settles at 4, the first leaf under "b" (value 1) empties the window, so
// "b2" is never visited.
func prunableGame() (mockRule, mockEvaluator) {
	rule := mockRule{
		children: map[string][]string{
			"r": {"a", "b"},
			"a": {"a1", "a2"},
			"b": {"b1", "b2"},
		},
		terminal: map[string]bool{"a1": true, "a2": true, "b1": true, "b2": true},
	}
	evaluator := mockEvaluator{scores: map[string]game.Score{
		"a1": 5, "a2": 4,
		"b1": 1, "b2": 9,
	}}
	return rule, evaluator
}
