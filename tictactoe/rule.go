package tictactoe

import (
	"fmt"

	"github.com/Amelia10007/minimax-strategy/game"
)

// Placement puts the acting player's mark on an empty square.
type Placement struct {
	X, Y int
	By   game.Actor
}

// Actor returns the player making the placement.
func (p Placement) Actor() game.Actor {
	return p.By
}

func (p Placement) String() string {
	return fmt.Sprintf("%v places at (%d, %d)", p.By, p.X, p.Y)
}

// Rule implements game.Rule for the 3x3 board.
type Rule struct{}

// IsTerminal reports whether the game is decided or the board is full.
func (Rule) IsTerminal(b Board) bool {
	_, over := b.Result()
	return over
}

// LegalActions enumerates placements on empty squares in row-major order.
// Ties between equally good moves therefore resolve to the upper-left-most
// square. A finished game has no legal actions.
func (Rule) LegalActions(b Board, actor game.Actor) []Placement {
	if _, over := b.Result(); over {
		return nil
	}
	var actions []Placement
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.At(x, y) == Empty {
				actions = append(actions, Placement{X: x, Y: y, By: actor})
			}
		}
	}
	return actions
}

// Apply plays the placement and returns the successor board. Placing on an
// occupied square is a contract violation and panics.
func (Rule) Apply(b Board, p Placement) Board {
	if b.At(p.X, p.Y) != Empty {
		panic(fmt.Sprintf("tictactoe: square (%d, %d) is already occupied", p.X, p.Y))
	}
	return b.place(p.X, p.Y, Mark(p.By))
}
