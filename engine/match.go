// Package engine runs local matches between two strategies.
package engine

import (
	"context"
	"fmt"
	"slices"

	"github.com/Amelia10007/minimax-strategy/game"
	"github.com/Amelia10007/minimax-strategy/meta"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// action constrains match actions to comparable types so that a
// strategy's answer can be validated against the legal action list.
type action interface {
	game.Action
	comparable
}

// StopReason says why a match ended.
type StopReason int

const (
	ReasonTerminal  StopReason = iota // the rule reported a finished game
	ReasonStalemate                   // the mover had no legal action
	ReasonTurnLimit                   // the turn cap was reached
)

func (r StopReason) String() string {
	switch r {
	case ReasonTerminal:
		return "terminal"
	case ReasonStalemate:
		return "stalemate"
	default:
		return "turn limit"
	}
}

// Turn records one played action and the state it produced.
type Turn[S any, A action] struct {
	Number int
	Mover  game.Actor
	Action A
	State  S
}

// Result is the outcome of a match.
type Result[S any, A action] struct {
	MatchID string
	Final   S
	Turns   []Turn[S, A]
	Reason  StopReason
}

// Match pits two strategies against each other. First moves first.
type Match[S any, A action] struct {
	id         string
	rule       game.Rule[S, A]
	strategies [2]game.Strategy[S, A]
	maxTurns   int
}

// Option configures a match.
type Option func(*matchConfig)

type matchConfig struct {
	maxTurns int
}

// WithMaxTurns caps the number of turns before the match is called off.
func WithMaxTurns(turns int) Option {
	return func(cfg *matchConfig) {
		if turns > 0 {
			cfg.maxTurns = turns
		}
	}
}

// NewMatch builds a match between first and second under rule.
func NewMatch[S any, A action](rule game.Rule[S, A], first, second game.Strategy[S, A], options ...Option) *Match[S, A] {
	if rule == nil {
		panic("engine: rule must not be nil")
	}
	if first == nil || second == nil {
		panic("engine: a match needs two strategies")
	}
	cfg := matchConfig{maxTurns: meta.MAX_TURNS}
	for _, option := range options {
		option(&cfg)
	}
	return &Match[S, A]{
		id:         uuid.NewString(),
		rule:       rule,
		strategies: [2]game.Strategy[S, A]{first, second},
		maxTurns:   cfg.maxTurns,
	}
}

// ID returns the match identifier.
func (m *Match[S, A]) ID() string {
	return m.id
}

// Run plays the match from start until the game ends, a mover is
// stalemated, or the turn cap is hit. A strategy that answers with an
// illegal action is overridden by the first legal one.
func (m *Match[S, A]) Run(ctx context.Context, start S) (Result[S, A], error) {
	result := Result[S, A]{MatchID: m.id}
	state := start
	mover := game.First

	log.Info().Str("match", m.id).Msgf("%v starts", mover)

	for turn := 1; ; turn++ {
		if m.rule.IsTerminal(state) {
			result.Reason = ReasonTerminal
			break
		}
		if turn > m.maxTurns {
			result.Reason = ReasonTurnLimit
			break
		}

		chosen, ok, err := m.strategies[mover].SelectAction(ctx, state, mover)
		if err != nil {
			result.Final = state
			return result, fmt.Errorf("match %s: turn %d: %w", m.id, turn, err)
		}
		if !ok {
			result.Reason = ReasonStalemate
			break
		}

		legal := m.rule.LegalActions(state, mover)
		if len(legal) == 0 {
			log.Warn().Str("match", m.id).Msgf("strategy for %v chose %v but no action is legal", mover, chosen)
			result.Reason = ReasonStalemate
			break
		}
		if !slices.Contains(legal, chosen) {
			log.Warn().Str("match", m.id).Msgf("strategy for %v chose illegal action %v, falling back to %v", mover, chosen, legal[0])
			chosen = legal[0]
		}

		state = m.rule.Apply(state, chosen)
		result.Turns = append(result.Turns, Turn[S, A]{
			Number: turn,
			Mover:  mover,
			Action: chosen,
			State:  state,
		})
		mover = mover.Opponent()
	}

	result.Final = state
	log.Info().Str("match", m.id).Msgf("finished after %d turns (%v)", len(result.Turns), result.Reason)
	return result, nil
}
